package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Amount is a money value written as a BSON double.
// Documents written by other clients may hold Int32, Int64 or Decimal128 sums;
// they decode into the same plain number.
type Amount float64

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*a = Amount(raw.Double())
	case bsontype.Int32:
		*a = Amount(raw.Int32())
	case bsontype.Int64:
		*a = Amount(raw.Int64())
	case bsontype.Decimal128:
		d, err := decimal.NewFromString(raw.Decimal128().String())
		if err != nil {
			return fmt.Errorf("amount: couldn't parse decimal128 %s: %w", raw.Decimal128(), err)
		}
		*a = Amount(d.InexactFloat64())
	default:
		return fmt.Errorf("amount: cannot decode bson type %s", t)
	}
	return nil
}

// SumAmounts adds amounts in decimal arithmetic, so 0.1 + 0.2 is 0.3
func SumAmounts(amounts ...Amount) Amount {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(float64(a)))
	}
	return Amount(total.InexactFloat64())
}
