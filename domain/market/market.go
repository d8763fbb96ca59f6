package market

import (
	"strings"
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/offer"
)

type ScopeKind string

const (
	ScopeMarket ScopeKind = "market"
	ScopeOwned  ScopeKind = "owned"
	ScopeOffers ScopeKind = "offers"
)

// Scope is the subset of entities one cache slot mirrors
type Scope struct {
	Kind  ScopeKind      `json:"kind"`
	Owner domain.Address `json:"owner,omitempty"`
}

func Market() Scope {
	return Scope{Kind: ScopeMarket}
}

func Owned(owner domain.Address) Scope {
	return Scope{Kind: ScopeOwned, Owner: owner.Canonical()}
}

func Offers(owner domain.Address) Scope {
	return Scope{Kind: ScopeOffers, Owner: owner.Canonical()}
}

func (s Scope) Key() string {
	if s.Kind == ScopeMarket {
		return string(ScopeMarket)
	}
	return string(s.Kind) + ":" + s.Owner.String()
}

func (s Scope) String() string {
	return s.Key()
}

// HoldsAssets is true for scopes whose snapshot carries assets
func (s Scope) HoldsAssets() bool {
	return s.Kind == ScopeMarket || s.Kind == ScopeOwned
}

// ParseKey is the inverse of Key
func ParseKey(key string) (Scope, error) {
	if key == string(ScopeMarket) {
		return Market(), nil
	}
	parts := strings.SplitN(key, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Scope{}, domain.ErrBadParamInput
	}
	switch ScopeKind(parts[0]) {
	case ScopeOwned:
		return Owned(domain.Address(parts[1])), nil
	case ScopeOffers:
		return Offers(domain.Address(parts[1])), nil
	}
	return Scope{}, domain.ErrBadParamInput
}

// Snapshot is replaced wholesale on every successful refresh
type Snapshot struct {
	Scope         Scope                `json:"scope"`
	Generation    uint64               `json:"generation"`
	FetchedAt     time.Time            `json:"fetchedAt"`
	Assets        []asset.Asset        `json:"assets"`
	Offers        []offer.Offer        `json:"offers"`
	CounterOffers []offer.CounterOffer `json:"counterOffers"`
	// Dropped counts records that failed to decode
	Dropped int `json:"dropped"`
}

func (s *Snapshot) FindAsset(id domain.AssetId) (*asset.Asset, bool) {
	for i := range s.Assets {
		if s.Assets[i].Id == id {
			return &s.Assets[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) FindOffer(id domain.OfferId) (*offer.Offer, bool) {
	for i := range s.Offers {
		if s.Offers[i].Id == id {
			return &s.Offers[i], true
		}
	}
	for i := range s.CounterOffers {
		if s.CounterOffers[i].Id == id {
			return &s.CounterOffers[i].Offer, true
		}
	}
	return nil, false
}

// Ticket is issued when a refresh starts and presented when it completes
type Ticket struct {
	Scope      Scope
	Generation uint64
	Epoch      uint64
}

// Store holds one snapshot per mounted scope. A commit is applied only if the
// scope is still mounted under the same epoch and the ticket's generation is
// newer than the held snapshot's.
type Store interface {
	Mount(c ctx.Ctx, scope Scope)
	Unmount(c ctx.Ctx, scope Scope)
	IsMounted(scope Scope) bool
	Mounted() []Scope
	Begin(scope Scope) (Ticket, error)
	Commit(c ctx.Ctx, ticket Ticket, snapshot *Snapshot) error
	Get(c ctx.Ctx, scope Scope) (*Snapshot, error)
}

type OfferEntry struct {
	offer.Offer
	Derived offer.DerivedStatus `json:"derived"`
}

type CounterOfferEntry struct {
	offer.CounterOffer
	Derived offer.DerivedStatus `json:"derived"`
}

type OffersView struct {
	Owner         domain.Address      `json:"owner"`
	Received      []OfferEntry        `json:"received"`
	CounterOffers []CounterOfferEntry `json:"counterOffers"`
	FetchedAt     time.Time           `json:"fetchedAt"`
}

type Usecase interface {
	Mount(c ctx.Ctx, scope Scope)
	Unmount(c ctx.Ctx, scope Scope)
	IsMounted(scope Scope) bool
	// Refresh fetches, decodes and commits. Failures are *domain.SyncError and
	// leave the previous snapshot in place.
	Refresh(c ctx.Ctx, scope Scope) (*Snapshot, error)
	Snapshot(c ctx.Ctx, scope Scope) (*Snapshot, error)
	MarketView(c ctx.Ctx, opts ...asset.ViewOptionsFunc) (*asset.Page, error)
	OwnedView(c ctx.Ctx, owner domain.Address, opts ...asset.ViewOptionsFunc) (*asset.Page, error)
	OffersView(c ctx.Ctx, owner domain.Address) (*OffersView, error)
	// FindAsset and FindOffer search every mounted snapshot
	FindAsset(c ctx.Ctx, id domain.AssetId) (*asset.Asset, error)
	FindOffer(c ctx.Ctx, id domain.OfferId) (*offer.Offer, error)
	// ExpiredAuctions lists cached auctions whose end is strictly before now
	ExpiredAuctions(c ctx.Ctx) ([]asset.Asset, error)
}

// Syncer owns the sync loops of mounted scopes
type Syncer interface {
	Mount(c ctx.Ctx, scope Scope)
	// Read mounts the scope if needed and records the read. A filter that
	// differs from the previous read triggers a refresh.
	Read(c ctx.Ctx, scope Scope, filter string)
	Unmount(c ctx.Ctx, scope Scope)
	Trigger(scope Scope) bool
}
