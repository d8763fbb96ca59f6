package domain

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Address is a ledger account address. Comparisons use the canonical long
// form, so "0x1" equals "0x0000...0001".
type Address string

const EmptyAddress = Address("")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// Canonical returns the lowercased, 0x-prefixed, 64 hex digit form
func (a Address) Canonical() Address {
	s := strings.TrimPrefix(a.ToLowerStr(), "0x")
	if len(s) < 64 {
		s = strings.Repeat("0", 64-len(s)) + s
	}
	return Address("0x" + s)
}

func (a Address) Equals(b Address) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	return a.Canonical() == b.Canonical()
}

func (a Address) String() string {
	return string(a)
}

// AssetId is assigned by the ledger, monotonic but not contiguous
type AssetId uint64

func (i AssetId) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

func ParseAssetId(s string) (AssetId, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, xerrors.Errorf("invalid asset id %s: %w", s, err)
	}
	return AssetId(v), nil
}

type OfferId uint64

func (i OfferId) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

func ParseOfferId(s string) (OfferId, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, xerrors.Errorf("invalid offer id %s: %w", s, err)
	}
	return OfferId(v), nil
}

type TxHash string

// Clock reports the current time. The ledger clock corrects local time by the
// observed ledger offset.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is the local wall clock
var SystemClock Clock = ClockFunc(time.Now)
