package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/validator"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/tx"
)

const (
	RuleAssetCached   = "asset_cached"
	RuleNotForSale    = "not_for_sale"
	RulePriceMismatch = "price_mismatch"
	RuleOwnAsset      = "own_asset"
	RuleNotOwner      = "not_owner"
	RuleAuctionEnded  = "auction_ended"
	RuleBidTooLow     = "bid_too_low"
	RuleAmount        = "amount"
	RuleDays          = "days"
	RuleDuration      = "duration"
	RuleOfferClosed   = "offer_closed"
	RuleRecipient     = "recipient"
	RuleRequired      = "required"
	RuleRarity        = "rarity"
	RuleMarketOwner   = "marketplace_owner"
	RuleTargetAddress = "target_address"
)

func (im *impl) cachedAsset(c ctx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	a, err := im.market.FindAsset(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError(RuleAssetCached, "nft %s is not loaded", id)
	} else if err != nil {
		return nil, err
	}
	return a, nil
}

func validatePurchase(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	cached, err := im.cachedAsset(c, a.AssetId)
	if err != nil {
		return err
	}
	if !cached.ForSale {
		return domain.NewValidationError(RuleNotForSale, "nft %s is not for sale", a.AssetId)
	}
	if !cached.Price.Equal(a.Amount) {
		return domain.NewValidationError(RulePriceMismatch, "price must be %s", cached.Price.Format())
	}
	if cached.Owner.Equals(actor) {
		return domain.NewValidationError(RuleOwnAsset, "cannot buy your own nft")
	}
	return nil
}

func validateBid(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	cached, err := im.cachedAsset(c, a.AssetId)
	if err != nil {
		return err
	}
	if !cached.IsAuction() || !cached.Auction.IsActive(now) {
		return domain.NewValidationError(RuleAuctionEnded, "auction has ended")
	}
	if cached.Owner.Equals(actor) {
		return domain.NewValidationError(RuleOwnAsset, "cannot bid on your own nft")
	}
	if min := cached.Auction.MinimumBid(); a.Amount.Cmp(min) < 0 {
		return domain.NewValidationError(RuleBidTooLow, "bid must be at least %s", min.Format())
	}
	return nil
}

func validateMakeOffer(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	if err := validatePositiveAmount(im, c, actor, a, now); err != nil {
		return err
	}
	if a.Days < 1 {
		return domain.NewValidationError(RuleDays, "offer must last at least 1 day")
	}
	cached, err := im.market.FindAsset(c, a.AssetId)
	if err == nil && cached.Owner.Equals(actor) {
		return domain.NewValidationError(RuleOwnAsset, "cannot make an offer on your own nft")
	}
	return nil
}

// validateOfferActionable only checks offers present in the cache
func validateOfferActionable(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	o, err := im.market.FindOffer(c, a.OfferId)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	if !o.IsActionable(now) {
		return domain.NewValidationError(RuleOfferClosed, "offer %s is %s", a.OfferId, o.Derive(now))
	}
	return nil
}

func validatePositiveAmount(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	if a.Amount.Sign() <= 0 {
		return domain.NewValidationError(RuleAmount, "amount must be greater than 0")
	}
	return nil
}

func validateDuration(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	if a.Duration < time.Second {
		return domain.NewValidationError(RuleDuration, "auction duration must be greater than 0")
	}
	return nil
}

func validateOwnsAsset(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	cached, err := im.cachedAsset(c, a.AssetId)
	if err != nil {
		return err
	}
	// without a connected account ownership is left to the wallet check
	if !actor.IsEmpty() && !cached.Owner.Equals(actor) {
		return domain.NewValidationError(RuleNotOwner, "nft %s is not yours", a.AssetId)
	}
	return nil
}

func validateTransfer(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	if err := im.validate.Var(a.To.String(), "required,"+validator.TagAddress); err != nil {
		return domain.NewValidationError(RuleRecipient, "invalid recipient address %q", a.To)
	}
	if a.To.Equals(actor) {
		return domain.NewValidationError(RuleRecipient, "cannot transfer to yourself")
	}
	return validateOwnsAsset(im, c, actor, a, now)
}

func validateMint(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	fields := []struct{ name, value string }{
		{"name", a.Name}, {"description", a.Description}, {"uri", a.Uri},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domain.NewValidationError(RuleRequired, "%s is required", f.name)
		}
	}
	if !a.Rarity.IsValid() {
		return domain.NewValidationError(RuleRarity, "rarity must be between %d and %d", asset.RarityCommon, asset.RaritySuperRare)
	}
	return nil
}

func validateAdmin(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	if !actor.IsEmpty() && !im.marketplace.Owner().Equals(actor) {
		return domain.NewValidationError(RuleMarketOwner, "only the marketplace owner can perform this action")
	}
	if a.Kind == tx.KindUpdateMintingFee && a.Amount.Sign() < 0 {
		return domain.NewValidationError(RuleAmount, "fee cannot be negative")
	}
	return nil
}

func validateTarget(im *impl, c ctx.Ctx, actor domain.Address, a tx.Action, now time.Time) error {
	if err := im.validate.Var(a.Target.String(), "required,"+validator.TagAddress); err != nil {
		return domain.NewValidationError(RuleTargetAddress, "invalid address %q", a.Target)
	}
	return nil
}
