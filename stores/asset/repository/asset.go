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
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/service/cache"
)

const (
	// owned listing page, the ledger caps it
	ownedLimit  = "100"
	ownedOffset = "0"

	defaultConcurrency = 8
)

type RepoCfg struct {
	Ledger domain.Ledger
	Market domain.Address
	// Concurrency bounds per-asset detail reads
	Concurrency int
	// Gifts caches gift details, optional
	Gifts   cache.Service
	Metrics metrics.Service
}

type impl struct {
	ledger      domain.Ledger
	market      domain.Address
	concurrency int
	gifts       cache.Service
	metrics     metrics.Service
}

func NewRepo(cfg *RepoCfg) asset.Repo {
	im := &impl{
		ledger:      cfg.Ledger,
		market:      cfg.Market,
		concurrency: cfg.Concurrency,
		gifts:       cfg.Gifts,
		metrics:     cfg.Metrics,
	}
	if im.concurrency <= 0 {
		im.concurrency = defaultConcurrency
	}
	if im.metrics == nil {
		im.metrics = metrics.New("asset")
	}
	return im
}

// nftRecord mirrors one element of Marketplace.nfts
type nftRecord struct {
	Id            json.RawMessage `json:"id"`
	Owner         json.RawMessage `json:"owner"`
	Name          json.RawMessage `json:"name"`
	Description   json.RawMessage `json:"description"`
	Uri           json.RawMessage `json:"uri"`
	Price         json.RawMessage `json:"price"`
	ForSale       json.RawMessage `json:"for_sale"`
	Rarity        json.RawMessage `json:"rarity"`
	IsAuction     json.RawMessage `json:"is_auction"`
	AuctionEnd    json.RawMessage `json:"auction_end"`
	HighestBid    json.RawMessage `json:"highest_bid"`
	HighestBidder json.RawMessage `json:"highest_bidder"`
	StartingBid   json.RawMessage `json:"starting_bid"`
}

type marketResource struct {
	Nfts []json.RawMessage `json:"nfts"`
}

func (im *impl) view(c ctx.Ctx, name string, args ...interface{}) ([]json.RawMessage, error) {
	return im.ledger.View(c, domain.ViewRequest{
		Function:      domain.MarketFunction(im.market, name),
		TypeArguments: []string{},
		Arguments:     append([]interface{}{im.market.String()}, args...),
	})
}

func (im *impl) ListMarket(c ctx.Ctx) ([]asset.Asset, int, error) {
	defer im.metrics.BumpTime("list_market.time").End()

	res := marketResource{}
	if err := im.ledger.AccountResource(c, im.market, domain.MarketResource(im.market), &res); err != nil {
		c.WithField("err", err).Error("ledger.AccountResource failed")
		return nil, 0, err
	}

	assets := make([]asset.Asset, 0, len(res.Nfts))
	dropped := 0
	for i, raw := range res.Nfts {
		a, err := decodeRecord(raw)
		if err != nil {
			c.WithFields(log.Fields{"index": i, "err": err}).Warn("decodeRecord failed, dropping")
			im.metrics.BumpSum("decode.err", 1, "source:market")
			dropped++
			continue
		}
		assets = append(assets, *a)
	}
	return assets, dropped, nil
}

func decodeRecord(raw json.RawMessage) (*asset.Asset, error) {
	r := nftRecord{}
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, &domain.DecodeError{Field: "nft", Err: err}
	}
	id, err := movecodec.U64("id", r.Id)
	if err != nil {
		return nil, err
	}
	a := &asset.Asset{Id: domain.AssetId(id)}
	if a.Owner, err = movecodec.Address("owner", r.Owner); err != nil {
		return nil, err
	}
	if a.Name, err = movecodec.Text("name", r.Name); err != nil {
		return nil, err
	}
	if a.Description, err = movecodec.Text("description", r.Description); err != nil {
		return nil, err
	}
	if a.Uri, err = movecodec.Text("uri", r.Uri); err != nil {
		return nil, err
	}
	if a.Price, err = movecodec.Amount("price", r.Price); err != nil {
		return nil, err
	}
	if a.ForSale, err = movecodec.Bool("for_sale", r.ForSale); err != nil {
		return nil, err
	}
	rarity, err := movecodec.U64("rarity", r.Rarity)
	if err != nil {
		return nil, err
	}
	a.Rarity = asset.Rarity(rarity)

	isAuction, err := movecodec.Bool("is_auction", r.IsAuction)
	if err != nil {
		return nil, err
	}
	if !isAuction {
		return a, nil
	}
	auction := &asset.Auction{}
	if auction.EndTime, err = movecodec.Int64("auction_end", r.AuctionEnd); err != nil {
		return nil, err
	}
	if auction.StartingBid, err = movecodec.Amount("starting_bid", r.StartingBid); err != nil {
		return nil, err
	}
	if auction.HighestBid, err = movecodec.Amount("highest_bid", r.HighestBid); err != nil {
		return nil, err
	}
	if auction.HighestBidder, err = movecodec.Address("highest_bidder", r.HighestBidder); err != nil {
		return nil, err
	}
	a.Auction = auction
	return a, nil
}

func (im *impl) ListOwnedIds(c ctx.Ctx, owner domain.Address) ([]domain.AssetId, error) {
	res, err := im.view(c, "get_all_nfts_for_owner", owner.String(), ownedLimit, ownedOffset)
	if err != nil {
		c.WithFields(log.Fields{"owner": owner, "err": err}).Error("get_all_nfts_for_owner failed")
		return nil, err
	}
	if err := movecodec.Record("get_all_nfts_for_owner", res, 1); err != nil {
		return nil, err
	}
	raw, err := movecodec.U64Vector("ids", res[0])
	if err != nil {
		return nil, err
	}
	ids := make([]domain.AssetId, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, domain.AssetId(id))
	}
	return ids, nil
}

func (im *impl) ListOwned(c ctx.Ctx, owner domain.Address) ([]asset.Asset, int, error) {
	defer im.metrics.BumpTime("list_owned.time").End()

	ids, err := im.ListOwnedIds(c, owner)
	if err != nil {
		c.WithField("err", err).Error("ListOwnedIds failed")
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []asset.Asset{}, 0, nil
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

	assets := make([]asset.Asset, 0, len(ids))
	dropped := 0
	var fetchErr error
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			if domain.IsDecodeError(err) {
				c.WithField("err", err).Warn("asset decode failed, dropping")
				im.metrics.BumpSum("decode.err", 1, "source:owned")
				dropped++
			} else if fetchErr == nil {
				fetchErr = err
			}
			continue
		}
		assets = append(assets, *ret.Value().(*asset.Asset))
	}
	if fetchErr != nil {
		c.WithFields(log.Fields{"owner": owner, "err": fetchErr}).Error("asset details failed")
		return nil, 0, fetchErr
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].Id < assets[j].Id })
	return assets, dropped, nil
}

// Get reads get_nft_details and get_auction_info
func (im *impl) Get(c ctx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	details, err := im.view(c, "get_nft_details", id.String())
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("get_nft_details failed")
		return nil, err
	}
	a, err := decodeDetails(details)
	if err != nil {
		return nil, err
	}

	info, err := im.view(c, "get_auction_info", id.String())
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("get_auction_info failed")
		return nil, err
	}
	if a.Auction, err = decodeAuctionInfo(info); err != nil {
		return nil, err
	}
	return a, nil
}

// [id, owner, name, description, uri, price, for_sale, rarity]
func decodeDetails(vals []json.RawMessage) (*asset.Asset, error) {
	if err := movecodec.Record("get_nft_details", vals, 8); err != nil {
		return nil, err
	}
	id, err := movecodec.U64("id", vals[0])
	if err != nil {
		return nil, err
	}
	a := &asset.Asset{Id: domain.AssetId(id)}
	if a.Owner, err = movecodec.Address("owner", vals[1]); err != nil {
		return nil, err
	}
	if a.Name, err = movecodec.Text("name", vals[2]); err != nil {
		return nil, err
	}
	if a.Description, err = movecodec.Text("description", vals[3]); err != nil {
		return nil, err
	}
	if a.Uri, err = movecodec.Text("uri", vals[4]); err != nil {
		return nil, err
	}
	if a.Price, err = movecodec.Amount("price", vals[5]); err != nil {
		return nil, err
	}
	if a.ForSale, err = movecodec.Bool("for_sale", vals[6]); err != nil {
		return nil, err
	}
	rarity, err := movecodec.U64("rarity", vals[7])
	if err != nil {
		return nil, err
	}
	a.Rarity = asset.Rarity(rarity)
	return a, nil
}

// [is_auction, end_time, starting_bid, highest_bid, highest_bidder]
func decodeAuctionInfo(vals []json.RawMessage) (*asset.Auction, error) {
	if err := movecodec.Record("get_auction_info", vals, 5); err != nil {
		return nil, err
	}
	isAuction, err := movecodec.Bool("is_auction", vals[0])
	if err != nil || !isAuction {
		return nil, err
	}
	auction := &asset.Auction{}
	if auction.EndTime, err = movecodec.Int64("auction_end", vals[1]); err != nil {
		return nil, err
	}
	if auction.StartingBid, err = movecodec.Amount("starting_bid", vals[2]); err != nil {
		return nil, err
	}
	if auction.HighestBid, err = movecodec.Amount("highest_bid", vals[3]); err != nil {
		return nil, err
	}
	if auction.HighestBidder, err = movecodec.Address("highest_bidder", vals[4]); err != nil {
		return nil, err
	}
	return auction, nil
}

func (im *impl) GetGift(c ctx.Ctx, id domain.AssetId) (*asset.Gift, error) {
	if im.gifts == nil {
		return im.getGift(c, id)
	}
	gift := asset.Gift{}
	if err := im.gifts.GetByFunc(c, id.String(), &gift, func() (interface{}, error) {
		return im.getGift(c, id)
	}); err != nil {
		return nil, err
	}
	return &gift, nil
}

// [is_gift, message, from, timestamp]
func (im *impl) getGift(c ctx.Ctx, id domain.AssetId) (*asset.Gift, error) {
	vals, err := im.view(c, "get_nft_gift_details", id.String())
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("get_nft_gift_details failed")
		return nil, err
	}
	if err := movecodec.Record("get_nft_gift_details", vals, 4); err != nil {
		return nil, err
	}
	gift := &asset.Gift{}
	if gift.IsGift, err = movecodec.Bool("is_gift", vals[0]); err != nil {
		return nil, err
	}
	if !gift.IsGift {
		return gift, nil
	}
	if gift.Message, err = movecodec.Text("message", vals[1]); err != nil {
		return nil, err
	}
	if gift.From, err = movecodec.Address("from", vals[2]); err != nil {
		return nil, err
	}
	if gift.Timestamp, err = movecodec.Int64("timestamp", vals[3]); err != nil {
		return nil, err
	}
	return gift, nil
}
