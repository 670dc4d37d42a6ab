package tlv

// Optional holds a value that may be absent. Absence is distinct from the
// zero value, which is what optional TLV fields need.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// GetOr returns the value, or def when absent.
func (o Optional[T]) GetOr(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Set stores v and marks the value present.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Unset clears the value.
func (o *Optional[T]) Unset() {
	var zero T
	o.value = zero
	o.set = false
}
