package mgmt

import (
	"fmt"

	"github.com/oy3o/tlv"
)

func mandatory(name string, typ uint64) *tlv.Field {
	return &tlv.Field{Name: name, Type: typ, Mandatory: true}
}

func optional(name string, typ uint64) *tlv.Field {
	return &tlv.Field{Name: name, Type: typ}
}

func repeated(name string, typ uint64) *tlv.Field {
	return &tlv.Field{Name: name, Type: typ, Repeated: true}
}

func decodeNat[T ~uint64](dst *tlv.Optional[T], value []byte) error {
	n, err := tlv.DecodeNat(value)
	if err != nil {
		return err
	}
	dst.Set(T(n))
	return nil
}

func decodeEnum[E any](dst *tlv.Optional[E], value []byte, parse func(uint64) (E, error)) error {
	e, err := tlv.DecodeEnum(value, parse)
	if err != nil {
		return err
	}
	dst.Set(e)
	return nil
}

func decodeString(dst *tlv.Optional[string], value []byte) error {
	dst.Set(tlv.DecodeString(value))
	return nil
}

func decodeName(dst *tlv.Optional[tlv.Name], value []byte) error {
	n, err := tlv.DecodeName(value)
	if err != nil {
		return err
	}
	dst.Set(n)
	return nil
}

// unexpectedField guards visitors against a schema/visitor mismatch.
func unexpectedField(f *tlv.Field) error {
	return fmt.Errorf("mgmt: no decoder for field %s", f.Name)
}
