package usecase

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/x-xyz/marketclient/base/countdown"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/market"
	"github.com/x-xyz/marketclient/domain/offer"
)

type MarketUseCaseCfg struct {
	Store  market.Store
	Assets asset.Repo
	Offers offer.Repo
	Clock  domain.Clock
	// Watcher receives the deadlines of every committed snapshot, optional
	Watcher *countdown.Watcher
	Metrics metrics.Service
}

type impl struct {
	store   market.Store
	assets  asset.Repo
	offers  offer.Repo
	clock   domain.Clock
	watcher *countdown.Watcher
	metrics metrics.Service
}

func NewMarketUseCase(cfg *MarketUseCaseCfg) market.Usecase {
	im := &impl{
		store:   cfg.Store,
		assets:  cfg.Assets,
		offers:  cfg.Offers,
		clock:   cfg.Clock,
		watcher: cfg.Watcher,
		metrics: cfg.Metrics,
	}
	if im.clock == nil {
		im.clock = domain.SystemClock
	}
	if im.metrics == nil {
		im.metrics = metrics.New("market")
	}
	return im
}

func (im *impl) Mount(c ctx.Ctx, scope market.Scope) {
	im.store.Mount(c, scope)
}

func (im *impl) Unmount(c ctx.Ctx, scope market.Scope) {
	im.store.Unmount(c, scope)
	if im.watcher != nil {
		im.watcher.SyncPrefix(countdownPrefix(scope), nil)
	}
}

func (im *impl) IsMounted(scope market.Scope) bool {
	return im.store.IsMounted(scope)
}

func (im *impl) Refresh(c ctx.Ctx, scope market.Scope) (*market.Snapshot, error) {
	defer im.metrics.BumpTime("refresh.time", "scope:"+string(scope.Kind)).End()
	c = ctx.WithFields(c, log.Fields{"scope": scope.Key()})

	ticket, err := im.store.Begin(scope)
	if err != nil {
		return nil, err
	}

	snapshot, err := im.fetch(c, scope)
	if err != nil {
		c.WithField("err", err).Error("fetch failed")
		im.metrics.BumpSum("refresh.err", 1, "scope:"+string(scope.Kind))
		return nil, &domain.SyncError{Scope: scope.Key(), Err: err}
	}
	snapshot.FetchedAt = im.clock.Now()

	switch err := im.store.Commit(c, ticket, snapshot); {
	case err == nil:
	case errors.Is(err, domain.ErrStaleGeneration):
		// a newer refresh already landed
		c.WithField("generation", ticket.Generation).Debug("stale refresh dropped")
		im.metrics.BumpSum("sync.refresh.stale", 1, "scope:"+string(scope.Kind))
		return im.store.Get(c, scope)
	case errors.Is(err, domain.ErrNotMounted):
		c.WithField("generation", ticket.Generation).Debug("refresh for unmounted scope dropped")
		im.metrics.BumpSum("sync.refresh.stale", 1, "scope:"+string(scope.Kind))
		return nil, err
	default:
		c.WithField("err", err).Error("store.Commit failed")
		return nil, &domain.SyncError{Scope: scope.Key(), Err: err}
	}

	if snapshot.Dropped > 0 {
		c.WithField("dropped", snapshot.Dropped).Warn("records dropped")
	}
	im.syncCountdowns(scope, snapshot)
	return snapshot, nil
}

func (im *impl) fetch(c ctx.Ctx, scope market.Scope) (*market.Snapshot, error) {
	switch scope.Kind {
	case market.ScopeMarket:
		assets, dropped, err := im.assets.ListMarket(c)
		if err != nil {
			return nil, err
		}
		return &market.Snapshot{Assets: assets, Dropped: dropped}, nil

	case market.ScopeOwned:
		assets, dropped, err := im.assets.ListOwned(c, scope.Owner)
		if err != nil {
			return nil, err
		}
		return &market.Snapshot{Assets: assets, Dropped: dropped}, nil

	case market.ScopeOffers:
		ids, err := im.assets.ListOwnedIds(c, scope.Owner)
		if err != nil {
			return nil, err
		}
		offers, dropped, err := im.offers.ListForAssets(c, ids)
		if err != nil {
			return nil, err
		}
		counters, n, err := im.offers.ListCounterOffers(c, scope.Owner)
		if err != nil {
			return nil, err
		}
		return &market.Snapshot{Offers: offers, CounterOffers: counters, Dropped: dropped + n}, nil
	}
	return nil, domain.ErrBadParamInput
}

func (im *impl) Snapshot(c ctx.Ctx, scope market.Scope) (*market.Snapshot, error) {
	snapshot, err := im.store.Get(c, scope)
	if errors.Is(err, domain.ErrNotFound) {
		// mounted but never loaded, load it now
		return im.Refresh(c, scope)
	}
	return snapshot, err
}

func (im *impl) MarketView(c ctx.Ctx, opts ...asset.ViewOptionsFunc) (*asset.Page, error) {
	o, err := asset.GetViewOptions(opts...)
	if err != nil {
		return nil, err
	}
	snapshot, err := im.Snapshot(c, market.Market())
	if err != nil {
		return nil, err
	}
	page := asset.MarketView(snapshot.Assets, im.clock.Now(), o)
	return &page, nil
}

func (im *impl) OwnedView(c ctx.Ctx, owner domain.Address, opts ...asset.ViewOptionsFunc) (*asset.Page, error) {
	o, err := asset.GetViewOptions(opts...)
	if err != nil {
		return nil, err
	}
	snapshot, err := im.Snapshot(c, market.Owned(owner))
	if err != nil {
		return nil, err
	}
	page := asset.OwnedView(snapshot.Assets, im.clock.Now(), o)
	return &page, nil
}

func (im *impl) OffersView(c ctx.Ctx, owner domain.Address) (*market.OffersView, error) {
	scope := market.Offers(owner)
	snapshot, err := im.Snapshot(c, scope)
	if err != nil {
		return nil, err
	}
	now := im.clock.Now()
	view := &market.OffersView{
		Owner:         scope.Owner,
		Received:      make([]market.OfferEntry, 0, len(snapshot.Offers)),
		CounterOffers: make([]market.CounterOfferEntry, 0, len(snapshot.CounterOffers)),
		FetchedAt:     snapshot.FetchedAt,
	}
	for _, o := range snapshot.Offers {
		view.Received = append(view.Received, market.OfferEntry{Offer: o, Derived: o.Derive(now)})
	}
	// grouped by asset, oldest offer first
	sort.SliceStable(view.Received, func(i, j int) bool {
		if view.Received[i].NftId != view.Received[j].NftId {
			return view.Received[i].NftId < view.Received[j].NftId
		}
		return view.Received[i].Id < view.Received[j].Id
	})
	for _, co := range snapshot.CounterOffers {
		view.CounterOffers = append(view.CounterOffers, market.CounterOfferEntry{CounterOffer: co, Derived: co.Derive(now)})
	}
	return view, nil
}

// searchOrder puts the global market first, then the rest by key
func (im *impl) searchOrder() []market.Scope {
	scopes := im.store.Mounted()
	sort.SliceStable(scopes, func(i, j int) bool {
		return scopes[i].Kind == market.ScopeMarket && scopes[j].Kind != market.ScopeMarket
	})
	return scopes
}

func (im *impl) FindAsset(c ctx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	for _, scope := range im.searchOrder() {
		if !scope.HoldsAssets() {
			continue
		}
		snapshot, err := im.store.Get(c, scope)
		if err != nil {
			continue
		}
		if a, ok := snapshot.FindAsset(id); ok {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (im *impl) FindOffer(c ctx.Ctx, id domain.OfferId) (*offer.Offer, error) {
	for _, scope := range im.searchOrder() {
		if scope.Kind != market.ScopeOffers {
			continue
		}
		snapshot, err := im.store.Get(c, scope)
		if err != nil {
			continue
		}
		if o, ok := snapshot.FindOffer(id); ok {
			return o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (im *impl) ExpiredAuctions(c ctx.Ctx) ([]asset.Asset, error) {
	now := im.clock.Now()
	seen := map[domain.AssetId]bool{}
	res := []asset.Asset{}
	for _, scope := range im.searchOrder() {
		if !scope.HoldsAssets() {
			continue
		}
		snapshot, err := im.store.Get(c, scope)
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNotMounted) {
			continue
		} else if err != nil {
			c.WithFields(log.Fields{"scope": scope.Key(), "err": err}).Error("store.Get failed")
			return nil, err
		}
		for _, a := range snapshot.Assets {
			if a.IsAuction() && a.Auction.IsExpired(now) && !seen[a.Id] {
				seen[a.Id] = true
				res = append(res, a)
			}
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })
	return res, nil
}

func (im *impl) syncCountdowns(scope market.Scope, snapshot *market.Snapshot) {
	if im.watcher == nil {
		return
	}
	entries := []countdown.Entry{}
	for _, a := range snapshot.Assets {
		if a.IsAuction() {
			entries = append(entries, countdown.Entry{
				Key:      CountdownKey(scope, countdown.KindAuction, uint64(a.Id)),
				Deadline: a.Auction.EndTime,
				Kind:     countdown.KindAuction,
			})
		}
	}
	offers := append([]offer.Offer{}, snapshot.Offers...)
	for _, co := range snapshot.CounterOffers {
		offers = append(offers, co.Offer)
	}
	for _, o := range offers {
		if !o.Status.IsTerminal() {
			entries = append(entries, countdown.Entry{
				Key:      CountdownKey(scope, countdown.KindOffer, uint64(o.Id)),
				Deadline: o.Expiration,
				Kind:     countdown.KindOffer,
			})
		}
	}
	im.watcher.SyncPrefix(countdownPrefix(scope), entries)
}

func countdownPrefix(scope market.Scope) string {
	return scope.Key() + "/"
}

// CountdownKey names a watched deadline, e.g. "market/auction:3"
func CountdownKey(scope market.Scope, kind countdown.Kind, id uint64) string {
	return countdownPrefix(scope) + string(kind) + ":" + strconv.FormatUint(id, 10)
}

// ScopeOfCountdownKey is the scope a CountdownKey belongs to
func ScopeOfCountdownKey(key string) (market.Scope, error) {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return market.Scope{}, domain.ErrBadParamInput
	}
	return market.ParseKey(key[:i])
}
