// Package currency holds ledger amounts. Amounts travel on the wire as integers
// in the smallest unit (octas); the display unit is 10^8 octas.
package currency

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// Decimals is the fixed display scale, not configurable
	Decimals = 8
	// Symbol is appended by Format
	Symbol = "APT"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("negative amount")

	scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

	// MinBidIncrement is 0.1 display units
	MinBidIncrement = FromRaw(big.NewInt(10_000_000))
	Zero            = FromRaw(big.NewInt(0))
)

// Amount is an immutable raw integer amount
type Amount struct {
	raw *big.Int
}

func FromRaw(raw *big.Int) Amount {
	if raw == nil {
		return Amount{raw: new(big.Int)}
	}
	return Amount{raw: new(big.Int).Set(raw)}
}

func FromUint64(raw uint64) Amount {
	return Amount{raw: new(big.Int).SetUint64(raw)}
}

// ParseRaw parses a base-10 integer in octas
func ParseRaw(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if v.Sign() < 0 {
		return Zero, ErrNegativeAmount
	}
	return Amount{raw: v}, nil
}

// FromDisplay converts a display value to octas, truncating anything below
// one octa.
func FromDisplay(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Zero, ErrNegativeAmount
	}
	return Amount{raw: d.Shift(Decimals).Truncate(0).BigInt()}, nil
}

// ParseDisplay parses a display string such as "150.1"
func ParseDisplay(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDisplay(d)
}

func (a Amount) Raw() *big.Int {
	if a.raw == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.raw)
}

// RawString is the form used for transaction arguments
func (a Amount) RawString() string {
	return a.Raw().String()
}

func (a Amount) Display() decimal.Decimal {
	return decimal.NewFromBigInt(a.Raw(), -Decimals)
}

func (a Amount) Float() float64 {
	return a.Display().InexactFloat64()
}

func (a Amount) Sign() int {
	return a.Raw().Sign()
}

func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

func (a Amount) Cmp(b Amount) int {
	return a.Raw().Cmp(b.Raw())
}

func (a Amount) Equal(b Amount) bool {
	return a.Cmp(b) == 0
}

func (a Amount) Add(b Amount) Amount {
	return Amount{raw: new(big.Int).Add(a.Raw(), b.Raw())}
}

// Div returns a / n in display units, zero when n is zero
func (a Amount) Div(n uint64) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return a.Display().Div(decimal.NewFromInt(int64(n)))
}

func Max(a, b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func (a Amount) String() string {
	return a.Display().String()
}

// Format renders the display value with the currency symbol
func (a Amount) Format() string {
	return a.Display().String() + " " + Symbol
}

type amountJSON struct {
	Raw     string `json:"raw"`
	Display string `json:"display"`
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(amountJSON{Raw: a.RawString(), Display: a.Display().String()})
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	j := amountJSON{}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	v, err := ParseRaw(j.Raw)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Scale returns 10^Decimals
func Scale() *big.Int {
	return new(big.Int).Set(scale)
}
