package tlv

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every multi-byte number on the wire.
var Order = binary.BigEndian

// VAR-NUMBER markers. A first octet below varNum16 is the number itself.
const (
	varNum16 = 253
	varNum32 = 254
	varNum64 = 255
)

// VarNumSize returns the encoded size of v as a VAR-NUMBER.
func VarNumSize[T constraints.Unsigned](v T) int {
	switch n := uint64(v); {
	case n < varNum16:
		return 1
	case n <= 0xFFFF:
		return 3
	case n <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// AppendVarNum appends v to b using the shortest VAR-NUMBER form.
func AppendVarNum[T constraints.Unsigned](b []byte, v T) []byte {
	switch n := uint64(v); {
	case n < varNum16:
		return append(b, byte(n))
	case n <= 0xFFFF:
		return Order.AppendUint16(append(b, varNum16), uint16(n))
	case n <= 0xFFFFFFFF:
		return Order.AppendUint32(append(b, varNum32), uint32(n))
	default:
		return Order.AppendUint64(append(b, varNum64), n)
	}
}

// ParseVarNum decodes a VAR-NUMBER at the start of b and returns it with the
// number of bytes consumed. Non-minimal encodings are accepted.
func ParseVarNum(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncated
	}
	var size int
	switch b[0] {
	case varNum16:
		size = 3
	case varNum32:
		size = 5
	case varNum64:
		size = 9
	default:
		return uint64(b[0]), 1, nil
	}
	if len(b) < size {
		return 0, 0, fmt.Errorf("%w: VAR-NUMBER needs %d bytes, have %d", ErrTruncated, size, len(b))
	}
	switch size {
	case 3:
		return uint64(Order.Uint16(b[1:3])), size, nil
	case 5:
		return uint64(Order.Uint32(b[1:5])), size, nil
	default:
		return Order.Uint64(b[1:9]), size, nil
	}
}

// NatSize returns the encoded size of v as a NonNegativeInteger.
func NatSize[T constraints.Unsigned](v T) int {
	switch n := uint64(v); {
	case n <= 0xFF:
		return 1
	case n <= 0xFFFF:
		return 2
	case n <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

// AppendNat appends v to b as a NonNegativeInteger of the smallest permitted width.
func AppendNat[T constraints.Unsigned](b []byte, v T) []byte {
	switch n := uint64(v); NatSize(n) {
	case 1:
		return append(b, byte(n))
	case 2:
		return Order.AppendUint16(b, uint16(n))
	case 4:
		return Order.AppendUint32(b, uint32(n))
	default:
		return Order.AppendUint64(b, n)
	}
}

// DecodeNat decodes a NonNegativeInteger TLV-VALUE. Only 1, 2, 4 and 8 byte
// values are accepted.
func DecodeNat(value []byte) (uint64, error) {
	switch len(value) {
	case 1:
		return uint64(value[0]), nil
	case 2:
		return uint64(Order.Uint16(value)), nil
	case 4:
		return uint64(Order.Uint32(value)), nil
	case 8:
		return Order.Uint64(value), nil
	default:
		return 0, fmt.Errorf("%w: got %d bytes", ErrNatLength, len(value))
	}
}

// DecodeString copies a UTF-8 TLV-VALUE out of the input buffer.
func DecodeString(value []byte) string {
	return string(value)
}

// DecodeBytes copies a binary TLV-VALUE out of the input buffer.
func DecodeBytes(value []byte) []byte {
	if len(value) == 0 {
		return nil
	}
	return append([]byte(nil), value...)
}

// DecodeEnum decodes a NonNegativeInteger and maps it through parse, which
// must reject unknown codes with ErrEnumValue.
func DecodeEnum[E any](value []byte, parse func(uint64) (E, error)) (E, error) {
	n, err := DecodeNat(value)
	if err != nil {
		var zero E
		return zero, err
	}
	return parse(n)
}
