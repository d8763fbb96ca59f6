package repository

import (
	"sort"
	"sync"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/market"
	"github.com/x-xyz/marketclient/domain/offer"
)

type slot struct {
	scope market.Scope
	epoch uint64
	// issued is the last generation handed out by Begin
	issued uint64
	// held is the generation of snapshot, 0 before the first commit
	held     uint64
	snapshot *market.Snapshot
}

type store struct {
	mu    sync.Mutex
	epoch uint64
	slots map[string]*slot
}

// NewStore holds committed snapshots in memory, one per mounted scope.
// Snapshots are never evicted while the scope is mounted.
func NewStore() market.Store {
	return &store{
		slots: make(map[string]*slot),
	}
}

func (s *store) Mount(c ctx.Ctx, scope market.Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[scope.Key()]; ok {
		return
	}
	s.epoch++
	s.slots[scope.Key()] = &slot{scope: scope, epoch: s.epoch}
	c.WithFields(log.Fields{"scope": scope.Key(), "epoch": s.epoch}).Info("scope mounted")
}

func (s *store) Unmount(c ctx.Ctx, scope market.Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[scope.Key()]; !ok {
		return
	}
	delete(s.slots, scope.Key())
	c.WithField("scope", scope.Key()).Info("scope unmounted")
}

func (s *store) IsMounted(scope market.Scope) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.slots[scope.Key()]
	return ok
}

func (s *store) Mounted() []market.Scope {
	s.mu.Lock()
	defer s.mu.Unlock()
	scopes := make([]market.Scope, 0, len(s.slots))
	for _, sl := range s.slots {
		scopes = append(scopes, sl.scope)
	}
	sort.Slice(scopes, func(i, j int) bool { return scopes[i].Key() < scopes[j].Key() })
	return scopes
}

func (s *store) Begin(scope market.Scope) (market.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[scope.Key()]
	if !ok {
		return market.Ticket{}, domain.ErrNotMounted
	}
	sl.issued++
	return market.Ticket{Scope: scope, Generation: sl.issued, Epoch: sl.epoch}, nil
}

func (s *store) Commit(c ctx.Ctx, ticket market.Ticket, snapshot *market.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[ticket.Scope.Key()]
	if !ok || sl.epoch != ticket.Epoch {
		return domain.ErrNotMounted
	}
	if ticket.Generation <= sl.held {
		return domain.ErrStaleGeneration
	}
	snapshot.Scope = ticket.Scope
	snapshot.Generation = ticket.Generation
	sl.held = ticket.Generation
	sl.snapshot = clone(snapshot)
	c.WithFields(log.Fields{"scope": ticket.Scope.Key(), "generation": ticket.Generation, "assets": len(snapshot.Assets)}).Debug("snapshot committed")
	return nil
}

func (s *store) Get(c ctx.Ctx, scope market.Scope) (*market.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[scope.Key()]
	if !ok {
		return nil, domain.ErrNotMounted
	}
	if sl.snapshot == nil {
		return nil, domain.ErrNotFound
	}
	return clone(sl.snapshot), nil
}

// clone copies the top level slices so callers can reorder them freely
func clone(snapshot *market.Snapshot) *market.Snapshot {
	res := *snapshot
	res.Assets = append([]asset.Asset(nil), snapshot.Assets...)
	res.Offers = append([]offer.Offer(nil), snapshot.Offers...)
	res.CounterOffers = append([]offer.CounterOffer(nil), snapshot.CounterOffers...)
	return &res
}
