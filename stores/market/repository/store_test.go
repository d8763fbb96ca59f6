package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/market"
)

var mockCtx = ctx.Background()

type storeSuite struct {
	suite.Suite
	store market.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(storeSuite))
}

func (s *storeSuite) SetupTest() {
	s.store = NewStore()
}

func snapshotOf(ids ...domain.AssetId) *market.Snapshot {
	snap := &market.Snapshot{FetchedAt: time.Unix(1_700_000_000, 0).UTC()}
	for _, id := range ids {
		snap.Assets = append(snap.Assets, asset.Asset{Id: id, Price: currency.FromUint64(uint64(id) * 100), ForSale: true})
	}
	return snap
}

func (s *storeSuite) TestCommitAndGet() {
	scope := market.Market()
	s.store.Mount(mockCtx, scope)
	s.True(s.store.IsMounted(scope))

	_, err := s.store.Get(mockCtx, scope)
	s.ErrorIs(err, domain.ErrNotFound, "mounted but never committed")

	t, err := s.store.Begin(scope)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Commit(mockCtx, t, snapshotOf(1, 2)))

	snap, err := s.store.Get(mockCtx, scope)
	s.Require().NoError(err)
	s.Equal(t.Generation, snap.Generation)
	s.Equal(scope, snap.Scope)
	s.Len(snap.Assets, 2)
	s.Equal("200", snap.Assets[1].Price.RawString())
}

func (s *storeSuite) TestOutOfOrderCommitIsStale() {
	scope := market.Owned("0xb0b")
	s.store.Mount(mockCtx, scope)

	first, err := s.store.Begin(scope)
	s.Require().NoError(err)
	second, err := s.store.Begin(scope)
	s.Require().NoError(err)
	s.Greater(second.Generation, first.Generation)

	// the later refresh lands first
	s.Require().NoError(s.store.Commit(mockCtx, second, snapshotOf(2)))
	s.ErrorIs(s.store.Commit(mockCtx, first, snapshotOf(1)), domain.ErrStaleGeneration)

	snap, err := s.store.Get(mockCtx, scope)
	s.Require().NoError(err)
	s.Require().Len(snap.Assets, 1)
	s.Equal(domain.AssetId(2), snap.Assets[0].Id)
}

func (s *storeSuite) TestCommitAfterUnmountIsDiscarded() {
	scope := market.Offers("0xb0b")
	s.store.Mount(mockCtx, scope)
	t, err := s.store.Begin(scope)
	s.Require().NoError(err)

	s.store.Unmount(mockCtx, scope)
	s.ErrorIs(s.store.Commit(mockCtx, t, snapshotOf()), domain.ErrNotMounted)

	// remount starts a new epoch, the old ticket stays dead
	s.store.Mount(mockCtx, scope)
	s.ErrorIs(s.store.Commit(mockCtx, t, snapshotOf()), domain.ErrNotMounted)
	_, err = s.store.Get(mockCtx, scope)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *storeSuite) TestUnmountedScope() {
	scope := market.Owned("0xca7")
	_, err := s.store.Begin(scope)
	s.ErrorIs(err, domain.ErrNotMounted)
	_, err = s.store.Get(mockCtx, scope)
	s.ErrorIs(err, domain.ErrNotMounted)
	s.False(s.store.IsMounted(scope))
}

func (s *storeSuite) TestMounted() {
	s.store.Mount(mockCtx, market.Owned("0xb0b"))
	s.store.Mount(mockCtx, market.Market())
	s.store.Mount(mockCtx, market.Market())
	s.Equal([]market.Scope{market.Market(), market.Owned("0xb0b")}, s.store.Mounted())
}

func (s *storeSuite) TestLargeSnapshot() {
	scope := market.Market()
	s.store.Mount(mockCtx, scope)

	ids := make([]domain.AssetId, 0, 5000)
	for i := 1; i <= 5000; i++ {
		ids = append(ids, domain.AssetId(i))
	}
	t, err := s.store.Begin(scope)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Commit(mockCtx, t, snapshotOf(ids...)))

	snap, err := s.store.Get(mockCtx, scope)
	s.Require().NoError(err)
	s.Len(snap.Assets, 5000)
	s.Equal("500000", snap.Assets[4999].Price.RawString())
}

func (s *storeSuite) TestGetReturnsCopy() {
	scope := market.Market()
	s.store.Mount(mockCtx, scope)
	t, err := s.store.Begin(scope)
	s.Require().NoError(err)
	committed := snapshotOf(1, 2)
	s.Require().NoError(s.store.Commit(mockCtx, t, committed))

	committed.Assets[0].Id = 99
	snap, err := s.store.Get(mockCtx, scope)
	s.Require().NoError(err)
	snap.Assets[0], snap.Assets[1] = snap.Assets[1], snap.Assets[0]

	again, err := s.store.Get(mockCtx, scope)
	s.Require().NoError(err)
	s.Equal(domain.AssetId(1), again.Assets[0].Id)
	s.Equal(domain.AssetId(2), again.Assets[1].Id)
}
