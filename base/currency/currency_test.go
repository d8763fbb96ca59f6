package currency

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	req := require.New(t)

	a := FromUint64(150_000_000)
	req.Equal("1.5", a.String())
	req.Equal("1.5 APT", a.Format())
	req.Equal(1.5, a.Float())
	req.Equal("150000000", a.RawString())
}

func TestParseDisplayTruncates(t *testing.T) {
	req := require.New(t)

	a, err := ParseDisplay("150.1")
	req.NoError(err)
	req.Equal("15010000000", a.RawString())

	a, err = ParseDisplay("0.000000019")
	req.NoError(err)
	req.Equal("1", a.RawString())

	_, err = ParseDisplay("-1")
	req.ErrorIs(err, ErrNegativeAmount)

	_, err = ParseDisplay("abc")
	req.ErrorIs(err, ErrInvalidAmount)
}

func TestParseRaw(t *testing.T) {
	req := require.New(t)

	a, err := ParseRaw("18446744073709551615")
	req.NoError(err)
	req.Equal("18446744073709551615", a.RawString())

	_, err = ParseRaw("1.5")
	req.ErrorIs(err, ErrInvalidAmount)
}

func TestArithmetic(t *testing.T) {
	req := require.New(t)

	highest := FromUint64(15_000_000_000)
	min := highest.Add(MinBidIncrement)
	req.Equal("150.1", min.String())
	req.Equal(1, min.Cmp(highest))
	req.True(Max(FromUint64(1), FromUint64(2)).Equal(FromUint64(2)))
	req.True(FromUint64(300_000_000).Div(2).Equal(decimal.NewFromFloat(1.5)))
	req.True(FromUint64(300_000_000).Div(0).IsZero())
}

func TestRawIsCopied(t *testing.T) {
	req := require.New(t)

	raw := big.NewInt(10)
	a := FromRaw(raw)
	raw.SetInt64(99)
	req.Equal("10", a.RawString())

	out := a.Raw()
	out.SetInt64(7)
	req.Equal("10", a.RawString())

	var empty Amount
	req.True(empty.IsZero())
}

func TestJSON(t *testing.T) {
	req := require.New(t)

	b, err := json.Marshal(FromUint64(250_000_000))
	req.NoError(err)
	req.JSONEq(`{"raw":"250000000","display":"2.5"}`, string(b))

	var a Amount
	req.NoError(json.Unmarshal(b, &a))
	req.Equal("250000000", a.RawString())
}
