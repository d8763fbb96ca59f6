package offer

import (
	"errors"
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/domain"
)

var ErrUnknownStatus = errors.New("unknown offer status")

// Status codes are the ledger's u8 values
type Status uint8

const (
	StatusPending Status = iota
	StatusAccepted
	StatusRejected
	StatusCountered
	StatusCounter
)

var statusLabels = map[Status]string{
	StatusPending:   "PENDING",
	StatusAccepted:  "ACCEPTED",
	StatusRejected:  "REJECTED",
	StatusCountered: "COUNTERED",
	StatusCounter:   "COUNTER",
}

func (s Status) String() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "UNKNOWN"
}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsTerminal reports statuses no action can move out of
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// DerivedStatus is what the client displays: the ledger status, plus expired
// for pending-ish offers past their expiration. Expiry is never written.
type DerivedStatus string

const (
	DerivedPending   DerivedStatus = "pending"
	DerivedAccepted  DerivedStatus = "accepted"
	DerivedRejected  DerivedStatus = "rejected"
	DerivedCountered DerivedStatus = "countered"
	DerivedCounter   DerivedStatus = "counter"
	DerivedExpired   DerivedStatus = "expired"
)

type Offer struct {
	Id     domain.OfferId  `json:"id"`
	NftId  domain.AssetId  `json:"nftId"`
	Buyer  domain.Address  `json:"buyer"`
	Amount currency.Amount `json:"amount"`
	// Expiration is ledger time, epoch seconds
	Expiration int64  `json:"expiration"`
	Status     Status `json:"status"`
}

func (o *Offer) IsExpired(now time.Time) bool {
	return now.Unix() >= o.Expiration
}

func (o *Offer) Derive(now time.Time) DerivedStatus {
	switch o.Status {
	case StatusAccepted:
		return DerivedAccepted
	case StatusRejected:
		return DerivedRejected
	}
	if o.IsExpired(now) {
		return DerivedExpired
	}
	switch o.Status {
	case StatusCountered:
		return DerivedCountered
	case StatusCounter:
		return DerivedCounter
	}
	return DerivedPending
}

// IsActionable is the local best-effort gate for accept, counter, decline
// and cancel
func (o *Offer) IsActionable(now time.Time) bool {
	return !o.Status.IsTerminal() && !o.IsExpired(now)
}

// CounterOffer is a seller's revision addressed back to the original buyer.
// The ledger keys it by the parent offer id and reports it through the same
// offer record, so Amount is the countered amount.
type CounterOffer struct {
	Offer
	NftName string `json:"nftName"`
}

// IsMeaningful is false once the parent offer is terminal or expired
func (c *CounterOffer) IsMeaningful(now time.Time) bool {
	return c.Offer.IsActionable(now)
}

type Repo interface {
	ListIdsForAsset(c ctx.Ctx, id domain.AssetId) ([]domain.OfferId, error)
	Get(c ctx.Ctx, id domain.OfferId) (*Offer, error)
	// ListForAssets fetches every offer on the given assets, dropping records
	// that fail to decode
	ListForAssets(c ctx.Ctx, ids []domain.AssetId) ([]Offer, int, error)
	ListCounterOffers(c ctx.Ctx, buyer domain.Address) ([]CounterOffer, int, error)
}
