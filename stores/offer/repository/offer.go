package repository

import (
	"encoding/json"
	"sort"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	"github.com/x-xyz/marketclient/base/movecodec"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/offer"
)

const defaultConcurrency = 8

type RepoCfg struct {
	Ledger      domain.Ledger
	Market      domain.Address
	Concurrency int
	Metrics     metrics.Service
}

type impl struct {
	ledger      domain.Ledger
	market      domain.Address
	concurrency int
	metrics     metrics.Service
}

func NewRepo(cfg *RepoCfg) offer.Repo {
	im := &impl{
		ledger:      cfg.Ledger,
		market:      cfg.Market,
		concurrency: cfg.Concurrency,
		metrics:     cfg.Metrics,
	}
	if im.concurrency <= 0 {
		im.concurrency = defaultConcurrency
	}
	if im.metrics == nil {
		im.metrics = metrics.New("offer")
	}
	return im
}

func (im *impl) view(c ctx.Ctx, name string, args ...interface{}) ([]json.RawMessage, error) {
	return im.ledger.View(c, domain.ViewRequest{
		Function:      domain.MarketFunction(im.market, name),
		TypeArguments: []string{},
		Arguments:     append([]interface{}{im.market.String()}, args...),
	})
}

func (im *impl) ids(c ctx.Ctx, name string, arg string) ([]domain.OfferId, error) {
	res, err := im.view(c, name, arg)
	if err != nil {
		c.WithFields(log.Fields{"function": name, "arg": arg, "err": err}).Error("ledger.View failed")
		return nil, err
	}
	if err := movecodec.Record(name, res, 1); err != nil {
		return nil, err
	}
	raw, err := movecodec.U64Vector("offer_ids", res[0])
	if err != nil {
		return nil, err
	}
	ids := make([]domain.OfferId, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, domain.OfferId(id))
	}
	return ids, nil
}

func (im *impl) ListIdsForAsset(c ctx.Ctx, id domain.AssetId) ([]domain.OfferId, error) {
	return im.ids(c, "get_offers_for_nft", id.String())
}

// Get reads get_offer_details: [nft_id, buyer, amount, expiration, status]
func (im *impl) Get(c ctx.Ctx, id domain.OfferId) (*offer.Offer, error) {
	vals, err := im.view(c, "get_offer_details", id.String())
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("get_offer_details failed")
		return nil, err
	}
	if err := movecodec.Record("get_offer_details", vals, 5); err != nil {
		return nil, err
	}
	o := &offer.Offer{Id: id}
	nftId, err := movecodec.U64("nft_id", vals[0])
	if err != nil {
		return nil, err
	}
	o.NftId = domain.AssetId(nftId)
	if o.Buyer, err = movecodec.Address("buyer", vals[1]); err != nil {
		return nil, err
	}
	if o.Amount, err = movecodec.Amount("amount", vals[2]); err != nil {
		return nil, err
	}
	if o.Expiration, err = movecodec.Int64("expiration", vals[3]); err != nil {
		return nil, err
	}
	status, err := movecodec.U64("status", vals[4])
	if err != nil {
		return nil, err
	}
	o.Status = offer.Status(status)
	if !o.Status.IsValid() {
		return nil, &domain.DecodeError{Field: "status", Err: offer.ErrUnknownStatus}
	}
	return o, nil
}

func (im *impl) ListForAssets(c ctx.Ctx, assetIds []domain.AssetId) ([]offer.Offer, int, error) {
	defer im.metrics.BumpTime("list_for_assets.time").End()

	if len(assetIds) == 0 {
		return []offer.Offer{}, 0, nil
	}

	idBatch := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(assetIds)))
	defer idBatch.Close()
	for _, id := range assetIds {
		id := id
		idBatch.Queue(func() (interface{}, error) {
			return im.ListIdsForAsset(c, id)
		})
	}
	idBatch.QueueComplete()

	offerIds := []domain.OfferId{}
	dropped := 0
	var fetchErr error
	for ret := range idBatch.Results() {
		if err := ret.Error(); err != nil {
			if domain.IsDecodeError(err) {
				c.WithField("err", err).Warn("offer ids decode failed, dropping")
				im.metrics.BumpSum("decode.err", 1, "source:offer_ids")
				dropped++
			} else if fetchErr == nil {
				fetchErr = err
			}
			continue
		}
		offerIds = append(offerIds, ret.Value().([]domain.OfferId)...)
	}
	if fetchErr != nil {
		c.WithField("err", fetchErr).Error("get_offers_for_nft failed")
		return nil, 0, fetchErr
	}

	offers, n, err := im.getAll(c, offerIds)
	if err != nil {
		return nil, 0, err
	}
	return offers, dropped + n, nil
}

func (im *impl) getAll(c ctx.Ctx, ids []domain.OfferId) ([]offer.Offer, int, error) {
	if len(ids) == 0 {
		return []offer.Offer{}, 0, nil
	}
	b := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(ids)))
	defer b.Close()
	for _, id := range ids {
		id := id
		b.Queue(func() (interface{}, error) {
			return im.Get(c, id)
		})
	}
	b.QueueComplete()

	offers := make([]offer.Offer, 0, len(ids))
	dropped := 0
	var fetchErr error
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			if domain.IsDecodeError(err) {
				c.WithField("err", err).Warn("offer decode failed, dropping")
				im.metrics.BumpSum("decode.err", 1, "source:offer")
				dropped++
			} else if fetchErr == nil {
				fetchErr = err
			}
			continue
		}
		offers = append(offers, *ret.Value().(*offer.Offer))
	}
	if fetchErr != nil {
		c.WithField("err", fetchErr).Error("get_offer_details failed")
		return nil, 0, fetchErr
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].Id < offers[j].Id })
	return offers, dropped, nil
}

// ListCounterOffers resolves counter-offers addressed to buyer together with
// the asset name
func (im *impl) ListCounterOffers(c ctx.Ctx, buyer domain.Address) ([]offer.CounterOffer, int, error) {
	defer im.metrics.BumpTime("list_counter_offers.time").End()

	ids, err := im.ids(c, "get_counter_offers_for_buyer", buyer.String())
	if err != nil {
		c.WithFields(log.Fields{"buyer": buyer, "err": err}).Error("get_counter_offers_for_buyer failed")
		return nil, 0, err
	}
	offers, dropped, err := im.getAll(c, ids)
	if err != nil {
		return nil, 0, err
	}

	counters := make([]offer.CounterOffer, 0, len(offers))
	for _, o := range offers {
		name, err := im.assetName(c, o.NftId)
		if domain.IsDecodeError(err) {
			c.WithFields(log.Fields{"nftId": o.NftId, "err": err}).Warn("asset name decode failed, dropping")
			im.metrics.BumpSum("decode.err", 1, "source:counter_offer")
			dropped++
			continue
		} else if err != nil {
			return nil, 0, err
		}
		counters = append(counters, offer.CounterOffer{Offer: o, NftName: name})
	}
	return counters, dropped, nil
}

func (im *impl) assetName(c ctx.Ctx, id domain.AssetId) (string, error) {
	vals, err := im.view(c, "get_nft_details", id.String())
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("get_nft_details failed")
		return "", err
	}
	if err := movecodec.Record("get_nft_details", vals, 3); err != nil {
		return "", err
	}
	return movecodec.Text("name", vals[2])
}
