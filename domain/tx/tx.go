package tx

import (
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
)

type Kind string

const (
	KindPurchase            Kind = "purchase"
	KindBid                 Kind = "bid"
	KindEndAuction          Kind = "end_auction"
	KindMakeOffer           Kind = "make_offer"
	KindAcceptOffer         Kind = "accept_offer"
	KindCounterOffer        Kind = "counter_offer"
	KindAcceptCounterOffer  Kind = "accept_counter_offer"
	KindDeclineOffer        Kind = "decline_offer"
	KindCancelOffer         Kind = "cancel_offer"
	KindListForSale         Kind = "list_for_sale"
	KindCreateAuction       Kind = "create_auction"
	KindTransfer            Kind = "transfer"
	KindMint                Kind = "mint"
	KindUpdateMintingFee    Kind = "update_minting_fee"
	KindAddToWhitelist      Kind = "add_to_whitelist"
	KindRemoveFromWhitelist Kind = "remove_from_whitelist"
)

var AllKinds = []Kind{
	KindPurchase, KindBid, KindEndAuction,
	KindMakeOffer, KindAcceptOffer, KindCounterOffer, KindAcceptCounterOffer, KindDeclineOffer, KindCancelOffer,
	KindListForSale, KindCreateAuction, KindTransfer, KindMint,
	KindUpdateMintingFee, KindAddToWhitelist, KindRemoveFromWhitelist,
}

// Action is one mutating user intent. Only the fields the kind uses are read.
type Action struct {
	Kind    Kind           `json:"kind"`
	AssetId domain.AssetId `json:"assetId,omitempty"`
	OfferId domain.OfferId `json:"offerId,omitempty"`
	// Amount is the price, bid, offer, counter amount, starting bid or fee
	Amount currency.Amount `json:"amount"`
	// Days is the offer lifetime
	Days int `json:"days,omitempty"`
	// Duration is the auction length
	Duration time.Duration `json:"duration,omitempty"`

	To      domain.Address `json:"to,omitempty"`
	Message string         `json:"message,omitempty"`
	IsGift  bool           `json:"isGift,omitempty"`

	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Uri         string       `json:"uri,omitempty"`
	Rarity      asset.Rarity `json:"rarity,omitempty"`

	// Target is the whitelist address
	Target domain.Address `json:"target,omitempty"`
}

type Receipt struct {
	SubmissionId string             `json:"submissionId"`
	Kind         Kind               `json:"kind"`
	Hash         domain.TxHash      `json:"hash"`
	Transaction  domain.Transaction `json:"transaction"`
	// Synced is false when refreshed views still showed pre-transaction state
	// after every refetch attempt
	Synced bool `json:"synced"`
	// Fee is the minting fee charged, mint only
	Fee *currency.Amount `json:"fee,omitempty"`
}

type Usecase interface {
	// Submit validates, signs, submits and waits for confirmation, then
	// refreshes the affected views. It never retries.
	Submit(c ctx.Ctx, action Action) (*Receipt, error)
	// Payload builds the ledger call without submitting it
	Payload(c ctx.Ctx, action Action) (*domain.Payload, error)
}
