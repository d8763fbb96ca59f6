// Package movecodec decodes the JSON values the ledger REST API returns for
// Move types: u64 as decimal strings, vector<u8> as 0x hex, bool, address.
// Every failure is a *domain.DecodeError naming the field.
package movecodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/base/validator"
	"github.com/x-xyz/marketclient/domain"
)

var (
	ErrInvalidUTF8    = errors.New("invalid utf-8")
	ErrShortRecord    = errors.New("record has too few fields")
	ErrNotString      = errors.New("value is not a string")
	ErrInvalidAddress = errors.New("invalid address")
	ErrOutOfRange     = errors.New("value out of int64 range")
)

func fail(field string, err error) error {
	return &domain.DecodeError{Field: field, Err: err}
}

// Record checks a positional view result has at least n fields
func Record(field string, vals []json.RawMessage, n int) error {
	if len(vals) < n {
		return fail(field, ErrShortRecord)
	}
	return nil
}

// String decodes a JSON string
func String(field string, raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fail(field, ErrNotString)
	}
	return s, nil
}

// HexText decodes a hex byte string (with or without 0x) as UTF-8 text
func HexText(field, s string) (string, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return "", fail(field, err)
	}
	if !utf8.Valid(b) {
		return "", fail(field, ErrInvalidUTF8)
	}
	return string(b), nil
}

// Text decodes a JSON vector<u8> hex string as UTF-8 text
func Text(field string, raw json.RawMessage) (string, error) {
	s, err := String(field, raw)
	if err != nil {
		return "", err
	}
	return HexText(field, s)
}

// EncodeText is the inverse of Text, used for vector<u8> arguments
func EncodeText(s string) string {
	return hexutil.Encode([]byte(s))
}

// U64 accepts both the string form the API uses and bare JSON numbers
func U64(field string, raw json.RawMessage) (uint64, error) {
	raw = bytes.TrimSpace(raw)
	s := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var err error
		if s, err = String(field, raw); err != nil {
			return 0, err
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fail(field, err)
	}
	return v, nil
}

func Int64(field string, raw json.RawMessage) (int64, error) {
	v, err := U64(field, raw)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64 {
		return 0, fail(field, ErrOutOfRange)
	}
	return int64(v), nil
}

// Amount keeps the raw integer and never goes through a float
func Amount(field string, raw json.RawMessage) (currency.Amount, error) {
	raw = bytes.TrimSpace(raw)
	s := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var err error
		if s, err = String(field, raw); err != nil {
			return currency.Zero, err
		}
	}
	a, err := currency.ParseRaw(s)
	if err != nil {
		return currency.Zero, fail(field, err)
	}
	return a, nil
}

func Bool(field string, raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, fail(field, err)
	}
	return b, nil
}

func Address(field string, raw json.RawMessage) (domain.Address, error) {
	s, err := String(field, raw)
	if err != nil {
		return "", err
	}
	if !validator.IsValidAddress(s) {
		return "", fail(field, ErrInvalidAddress)
	}
	return domain.Address(s).ToLower(), nil
}

func Vector(field string, raw json.RawMessage) ([]json.RawMessage, error) {
	vals := []json.RawMessage{}
	if err := json.Unmarshal(raw, &vals); err != nil {
		return nil, fail(field, err)
	}
	return vals, nil
}

func U64Vector(field string, raw json.RawMessage) ([]uint64, error) {
	vals, err := Vector(field, raw)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, 0, len(vals))
	for i, v := range vals {
		n, err := U64(field+"["+strconv.Itoa(i)+"]", v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func AddressVector(field string, raw json.RawMessage) ([]domain.Address, error) {
	vals, err := Vector(field, raw)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Address, 0, len(vals))
	for i, v := range vals {
		a, err := Address(field+"["+strconv.Itoa(i)+"]", v)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
