package db

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Decimal128 encodes a monetary amount for storage. Amounts are computed
// with shopspring/decimal and persisted as BSON Decimal128 so the database
// side stays exact too. Encoding goes through coefficient and exponent
// rather than the string form: String trims trailing zeros, which would
// collapse 1250.00 to exponent 0 and lose the declared scale.
func Decimal128(d decimal.Decimal) (bson.Decimal128, error) {
	out, ok := bson.ParseDecimal128FromBigInt(d.Coefficient(), int(d.Exponent()))
	if !ok {
		return bson.Decimal128{}, fmt.Errorf("decimal %s does not fit in Decimal128", d)
	}
	return out, nil
}

// DecimalFromBSON decodes a stored amount. Like UUIDFromBSON it also accepts
// the Go form for in-memory stores.
func DecimalFromBSON(val interface{}) (decimal.Decimal, error) {
	switch v := val.(type) {
	case decimal.Decimal:
		return v, nil
	case bson.Decimal128:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("decode decimal128 %s: %w", v, err)
		}
		return d, nil
	case nil:
		return decimal.Zero, fmt.Errorf("nil decimal value")
	default:
		return decimal.Zero, fmt.Errorf("unexpected decimal value type %T", val)
	}
}
