package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()
	bin := UUIDBinary(id)
	if bin.Subtype != bson.TypeBinaryUUID || len(bin.Data) != 16 {
		t.Fatalf("bad binary form: subtype %d, %d bytes", bin.Subtype, len(bin.Data))
	}
	back, err := UUIDFromBSON(bin)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back != id {
		t.Fatalf("round trip changed value: %s != %s", back, id)
	}
}

func TestUUIDFromBSONAcceptsGoForm(t *testing.T) {
	id := uuid.New()
	back, err := UUIDFromBSON(id)
	if err != nil || back != id {
		t.Fatalf("go form rejected: %v %v", back, err)
	}
}

func TestUUIDFromBSONRejectsWrongSubtype(t *testing.T) {
	id := uuid.New()
	if _, err := UUIDFromBSON(bson.Binary{Subtype: 0, Data: id[:]}); err == nil {
		t.Fatal("generic binData accepted as UUID")
	}
	if _, err := UUIDFromBSON("hello"); err == nil {
		t.Fatal("string accepted as UUID")
	}
	if _, err := UUIDFromBSON(nil); err == nil {
		t.Fatal("nil accepted as UUID")
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1250.00", "-3.50", "0.001", "99999999.99"} {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		enc, err := Decimal128(d)
		if err != nil {
			t.Fatalf("encode %q: %v", s, err)
		}
		// The stored form must keep the declared scale: a plan limit of
		// 1250.00 is not the same monetary fact as 1250.
		if enc.String() != s {
			t.Errorf("stored form lost scale: %q stored as %q", s, enc.String())
		}
		back, err := DecimalFromBSON(enc)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if !back.Equal(d) {
			t.Errorf("round trip changed value: %s != %s", back, d)
		}
		if back.Exponent() != d.Exponent() {
			t.Errorf("round trip changed scale: exponent %d != %d for %q",
				back.Exponent(), d.Exponent(), s)
		}
	}
}

func TestDecimalFromBSONRejectsFloat(t *testing.T) {
	if _, err := DecimalFromBSON(12.5); err == nil {
		t.Fatal("float64 accepted as decimal")
	}
}
