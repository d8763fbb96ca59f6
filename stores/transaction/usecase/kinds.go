package usecase

import (
	"strconv"
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/movecodec"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/market"
	"github.com/x-xyz/marketclient/domain/tx"
)

// auctionMinIncrement is passed to create_auction as the ledger-side minimum
// raise, 0.1 in raw units
const auctionMinIncrement = "10000000"

const secondsPerDay = 86400

type refreshSet uint8

const (
	refreshMarket refreshSet = 1 << iota
	refreshOwned
	refreshOffers
)

type validateFunc func(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error

type kindDef struct {
	function string
	args     func(a tx.Action, now time.Time) []interface{}
	validate []validateFunc
	refresh  refreshSet
	// watchAsset and watchOffer name the cached entity whose change shows the
	// transaction was observed by the refreshed views
	watchAsset bool
	watchOffer bool
}

func u64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func offerExpiration(a tx.Action, now time.Time) string {
	return strconv.FormatInt(now.Unix()+int64(a.Days)*secondsPerDay, 10)
}

var kinds = map[tx.Kind]kindDef{
	tx.KindPurchase: {
		function: "purchase_nft",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.AssetId.String(), a.Amount.RawString()}
		},
		validate:   []validateFunc{validatePurchase},
		refresh:    refreshMarket | refreshOwned,
		watchAsset: true,
	},
	tx.KindBid: {
		function: "place_bid",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.AssetId.String(), a.Amount.RawString()}
		},
		validate:   []validateFunc{validateBid},
		refresh:    refreshMarket,
		watchAsset: true,
	},
	tx.KindEndAuction: {
		function: "end_auction",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.AssetId.String()}
		},
		refresh:    refreshMarket | refreshOwned,
		watchAsset: true,
	},
	tx.KindMakeOffer: {
		function: "make_offer",
		args: func(a tx.Action, now time.Time) []interface{} {
			return []interface{}{a.AssetId.String(), a.Amount.RawString(), offerExpiration(a, now)}
		},
		validate: []validateFunc{validateMakeOffer},
		refresh:  refreshOffers,
	},
	tx.KindAcceptOffer: {
		function: "accept_offer",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.AssetId.String(), a.OfferId.String()}
		},
		validate:   []validateFunc{validateOfferActionable},
		refresh:    refreshOffers | refreshOwned | refreshMarket,
		watchOffer: true,
	},
	tx.KindCounterOffer: {
		function: "counter_offer",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.AssetId.String(), a.OfferId.String(), a.Amount.RawString()}
		},
		validate:   []validateFunc{validatePositiveAmount, validateOfferActionable},
		refresh:    refreshOffers,
		watchOffer: true,
	},
	tx.KindAcceptCounterOffer: {
		function: "accept_counter_offer",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.OfferId.String()}
		},
		validate:   []validateFunc{validateOfferActionable},
		refresh:    refreshOffers | refreshOwned | refreshMarket,
		watchOffer: true,
	},
	tx.KindDeclineOffer: {
		function: "decline_offer",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.OfferId.String()}
		},
		validate:   []validateFunc{validateOfferActionable},
		refresh:    refreshOffers,
		watchOffer: true,
	},
	tx.KindCancelOffer: {
		function: "cancel_offer",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.OfferId.String()}
		},
		validate:   []validateFunc{validateOfferActionable},
		refresh:    refreshOffers,
		watchOffer: true,
	},
	tx.KindListForSale: {
		function: "list_for_sale",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.AssetId.String(), a.Amount.RawString()}
		},
		validate:   []validateFunc{validatePositiveAmount, validateOwnsAsset},
		refresh:    refreshOwned | refreshMarket,
		watchAsset: true,
	},
	tx.KindCreateAuction: {
		function: "create_auction",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{
				a.AssetId.String(),
				a.Amount.RawString(),
				u64(uint64(a.Duration / time.Second)),
				auctionMinIncrement,
			}
		},
		validate:   []validateFunc{validatePositiveAmount, validateDuration, validateOwnsAsset},
		refresh:    refreshOwned | refreshMarket,
		watchAsset: true,
	},
	tx.KindTransfer: {
		function: "transfer_nft_with_message",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.AssetId.String(), a.To.String(), movecodec.EncodeText(a.Message), a.IsGift}
		},
		validate:   []validateFunc{validateTransfer},
		refresh:    refreshOwned | refreshMarket,
		watchAsset: true,
	},
	tx.KindMint: {
		function: "mint_nft_with_fee",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{
				movecodec.EncodeText(a.Name),
				movecodec.EncodeText(a.Description),
				movecodec.EncodeText(a.Uri),
				uint8(a.Rarity),
			}
		},
		validate: []validateFunc{validateMint},
		refresh:  refreshOwned,
	},
	tx.KindUpdateMintingFee: {
		function: "update_minting_fee",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.Amount.RawString()}
		},
		validate: []validateFunc{validateAdmin},
	},
	tx.KindAddToWhitelist: {
		function: "add_to_whitelist",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.Target.String()}
		},
		validate: []validateFunc{validateAdmin, validateTarget},
	},
	tx.KindRemoveFromWhitelist: {
		function: "remove_from_whitelist",
		args: func(a tx.Action, _ time.Time) []interface{} {
			return []interface{}{a.Target.String()}
		},
		validate: []validateFunc{validateAdmin, validateTarget},
	},
}

func (r refreshSet) scopes(actor domain.Address) []market.Scope {
	res := []market.Scope{}
	if r&refreshMarket != 0 {
		res = append(res, market.Market())
	}
	if r&refreshOwned != 0 {
		res = append(res, market.Owned(actor))
	}
	if r&refreshOffers != 0 {
		res = append(res, market.Offers(actor))
	}
	return res
}
