package tlv

import (
	"errors"
	"fmt"
)

var (
	// ErrNilIO indicates that ReadFrom/WriteTo was called with a nil io.Reader/io.Writer.
	ErrNilIO = errors.New("tlv: called with a nil io.Reader/io.Writer")

	// ErrBounds is the root of every bounds error: a read or a declared
	// length went past the end of the available data.
	ErrBounds = errors.New("tlv: out of bounds")

	// ErrTruncated indicates that a TLV-TYPE, TLV-LENGTH or TLV-VALUE claims
	// more bytes than remain in the buffer.
	ErrTruncated = fmt.Errorf("%w: truncated data", ErrBounds)

	// ErrNatLength indicates a NonNegativeInteger whose length is not 1, 2, 4 or 8.
	ErrNatLength = fmt.Errorf("%w: invalid non-negative integer length", ErrBounds)

	// ErrTypeMismatch indicates that the outer TLV-TYPE is not the one expected
	// for the record being decoded.
	ErrTypeMismatch = errors.New("tlv: type mismatch")

	// ErrEnumValue indicates an enumeration code outside the known variants.
	ErrEnumValue = fmt.Errorf("%w: unknown enumeration value", ErrTypeMismatch)

	// ErrMissingField indicates that a mandatory field was not present on the wire.
	ErrMissingField = errors.New("tlv: missing mandatory field")

	// ErrFieldOrder indicates a known field that appeared after a field declared
	// later in the record, or a non-repeated field that appeared twice.
	ErrFieldOrder = errors.New("tlv: field out of order")

	// ErrFieldNotSet is returned at encode time when a mandatory field was never set.
	ErrFieldNotSet = errors.New("tlv: mandatory field not set")

	// ErrTrailingData is returned by UnmarshalBinary when bytes follow the record's element.
	ErrTrailingData = errors.New("tlv: trailing data after element")

	// ErrElementTooLarge indicates a streamed element whose TLV-LENGTH exceeds MaxElementLength.
	ErrElementTooLarge = errors.New("tlv: element too large")

	// ErrInvalidName indicates a name URI that cannot be parsed.
	ErrInvalidName = errors.New("tlv: invalid name")
)

// FieldError carries the record, field and byte offset of a codec failure.
// It unwraps to one of the package sentinels.
type FieldError struct {
	Record string // record kind, e.g. "FaceStatus"
	Field  string // empty when the failure is not tied to a field
	Type   uint64 // TLV-TYPE of the field or of the record
	Offset int    // offset into the decoded value, -1 when not tied to a position
	Err    error
}

func (e *FieldError) Error() string {
	var where string
	if e.Offset >= 0 {
		where = fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Field == "" {
		return fmt.Sprintf("%s%s: %v", e.Record, where, e.Err)
	}
	return fmt.Sprintf("%s.%s (0x%x)%s: %v", e.Record, e.Field, e.Type, where, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
