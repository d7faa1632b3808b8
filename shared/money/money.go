// Package money holds amounts in the smallest currency unit.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cast"
)

// Money is an amount in đồng. The remote service sends prices as numbers, numeric strings or
// null depending on the endpoint, all of which decode here.
type Money int64

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("money: %w", err)
	}

	if raw == nil {
		*m = 0

		return nil
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return fmt.Errorf("money: cannot decode %s: %w", string(data), err)
	}

	*m = Money(math.Round(value))

	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(m), 10)), nil
}

// Times multiplies the amount by a quantity.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// Sum adds amounts.
func Sum(amounts ...Money) Money {
	var total Money

	for _, amount := range amounts {
		total += amount
	}

	return total
}

// Int64 returns the amount as an integer, for payloads sent back to the remote service.
func (m Money) Int64() int64 {
	return int64(m)
}

// FromAny converts a loosely typed amount.
func FromAny(value any) (Money, error) {
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, fmt.Errorf("money: %w", err)
	}

	return Money(math.Round(f)), nil
}
