package db

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	tUUID    = reflect.TypeOf(uuid.UUID{})
	tDecimal = reflect.TypeOf(decimal.Decimal{})
)

// Registry returns a BSON registry that persists uuid.UUID as binData
// subtype 4 and decimal.Decimal as Decimal128. Every client this package
// opens uses it, so model structs can carry the Go types directly.
func Registry() *bson.Registry {
	r := bson.NewRegistry()
	r.RegisterTypeEncoder(tUUID, uuidCodec{})
	r.RegisterTypeDecoder(tUUID, uuidCodec{})
	r.RegisterTypeEncoder(tDecimal, decimalCodec{})
	r.RegisterTypeDecoder(tDecimal, decimalCodec{})
	return r
}

type uuidCodec struct{}

func (uuidCodec) EncodeValue(_ bson.EncodeContext, vw bson.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tUUID {
		return bson.ValueEncoderError{Name: "uuidCodec", Types: []reflect.Type{tUUID}, Received: val}
	}
	u := val.Interface().(uuid.UUID)
	return vw.WriteBinaryWithSubtype(u[:], bson.TypeBinaryUUID)
}

func (uuidCodec) DecodeValue(_ bson.DecodeContext, vr bson.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tUUID {
		return bson.ValueDecoderError{Name: "uuidCodec", Types: []reflect.Type{tUUID}, Received: val}
	}
	switch vr.Type() {
	case bson.TypeBinary:
		data, subtype, err := vr.ReadBinary()
		if err != nil {
			return err
		}
		if subtype != bson.TypeBinaryUUID || len(data) != 16 {
			return fmt.Errorf("binData is not a subtype-4 UUID (subtype %d, %d bytes)", subtype, len(data))
		}
		u, err := uuid.FromBytes(data)
		if err != nil {
			return err
		}
		val.Set(reflect.ValueOf(u))
		return nil
	case bson.TypeNull:
		if err := vr.ReadNull(); err != nil {
			return err
		}
		val.Set(reflect.ValueOf(uuid.Nil))
		return nil
	default:
		return fmt.Errorf("cannot decode %v into uuid.UUID", vr.Type())
	}
}

type decimalCodec struct{}

func (decimalCodec) EncodeValue(_ bson.EncodeContext, vw bson.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tDecimal {
		return bson.ValueEncoderError{Name: "decimalCodec", Types: []reflect.Type{tDecimal}, Received: val}
	}
	d128, err := Decimal128(val.Interface().(decimal.Decimal))
	if err != nil {
		return err
	}
	return vw.WriteDecimal128(d128)
}

func (decimalCodec) DecodeValue(_ bson.DecodeContext, vr bson.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tDecimal {
		return bson.ValueDecoderError{Name: "decimalCodec", Types: []reflect.Type{tDecimal}, Received: val}
	}
	switch vr.Type() {
	case bson.TypeDecimal128:
		d128, err := vr.ReadDecimal128()
		if err != nil {
			return err
		}
		d, err := decimal.NewFromString(d128.String())
		if err != nil {
			return fmt.Errorf("decode decimal128 %s: %w", d128, err)
		}
		val.Set(reflect.ValueOf(d))
		return nil
	case bson.TypeNull:
		if err := vr.ReadNull(); err != nil {
			return err
		}
		val.Set(reflect.ValueOf(decimal.Zero))
		return nil
	default:
		return fmt.Errorf("cannot decode %v into decimal.Decimal", vr.Type())
	}
}
