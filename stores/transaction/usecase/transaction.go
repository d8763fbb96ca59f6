package usecase

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/x-xyz/marketclient/base/backoff"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	bValidator "github.com/x-xyz/marketclient/base/validator"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/market"
	"github.com/x-xyz/marketclient/domain/marketplace"
	"github.com/x-xyz/marketclient/domain/tx"
)

const (
	defaultConfirmTimeout  = 60 * time.Second
	defaultRefetchAttempts = 3
	defaultRefetchBackoff  = time.Second
)

type TxUseCaseCfg struct {
	Market      market.Usecase
	Marketplace marketplace.Usecase
	Ledger      domain.Ledger
	Wallet      domain.Wallet
	Clock       domain.Clock
	Metrics     metrics.Service

	ConfirmTimeout  time.Duration
	RefetchAttempts int
	RefetchBackoff  time.Duration
}

type impl struct {
	market      market.Usecase
	marketplace marketplace.Usecase
	ledger      domain.Ledger
	wallet      domain.Wallet
	clock       domain.Clock
	metrics     metrics.Service
	validate    *validator.Validate

	confirmTimeout  time.Duration
	refetchAttempts int
	refetchBackoff  time.Duration
}

func NewTxUseCase(cfg *TxUseCaseCfg) tx.Usecase {
	im := &impl{
		market:          cfg.Market,
		marketplace:     cfg.Marketplace,
		ledger:          cfg.Ledger,
		wallet:          cfg.Wallet,
		clock:           cfg.Clock,
		metrics:         cfg.Metrics,
		validate:        bValidator.New(),
		confirmTimeout:  cfg.ConfirmTimeout,
		refetchAttempts: cfg.RefetchAttempts,
		refetchBackoff:  cfg.RefetchBackoff,
	}
	if im.clock == nil {
		im.clock = domain.SystemClock
	}
	if im.metrics == nil {
		im.metrics = metrics.New("tx")
	}
	if im.confirmTimeout <= 0 {
		im.confirmTimeout = defaultConfirmTimeout
	}
	if im.refetchAttempts <= 0 {
		im.refetchAttempts = defaultRefetchAttempts
	}
	if im.refetchBackoff <= 0 {
		im.refetchBackoff = defaultRefetchBackoff
	}
	return im
}

func (im *impl) Payload(c ctx.Ctx, action tx.Action) (*domain.Payload, error) {
	ks, ok := kinds[action.Kind]
	if !ok {
		return nil, domain.ErrUnsupportedAction
	}
	p := im.build(ks, action, im.clock.Now())
	return &p, nil
}

func (im *impl) build(ks kindDef, action tx.Action, now time.Time) domain.Payload {
	addr := im.marketplace.Owner()
	args := append([]interface{}{addr.String()}, ks.args(action, now)...)
	return domain.NewPayload(domain.MarketFunction(addr, ks.function), args...)
}

func (im *impl) Submit(c ctx.Ctx, action tx.Action) (*tx.Receipt, error) {
	ks, ok := kinds[action.Kind]
	if !ok {
		return nil, domain.ErrUnsupportedAction
	}
	receipt := &tx.Receipt{
		SubmissionId: uuid.NewString(),
		Kind:         action.Kind,
	}
	c = ctx.WithFields(c, log.Fields{"submissionId": receipt.SubmissionId, "kind": action.Kind})

	// actor stays empty when no wallet is connected, the validators then
	// check the input alone
	var actor domain.Address
	account := im.wallet.Account()
	if account != nil {
		actor = *account
	}

	now := im.clock.Now()
	for _, validate := range ks.validate {
		if err := validate(im, c, actor, action, now); err != nil {
			if !domain.IsValidationError(err) {
				c.WithField("err", err).Error("validate failed")
			}
			return nil, err
		}
	}
	if account == nil {
		return nil, &domain.SignatureError{Err: domain.ErrWalletDisconnected}
	}
	if action.Kind == tx.KindMint {
		fee, err := im.marketplace.EffectiveMintingFee(c, actor)
		if err != nil {
			c.WithField("err", err).Warn("marketplace.EffectiveMintingFee failed")
		} else {
			receipt.Fee = &fee
		}
	}

	before := im.observe(c, ks, action)
	payload := im.build(ks, action, now)

	txn, err := im.send(c, payload)
	if err != nil {
		im.metrics.BumpSum("submit.err", 1, "kind:"+string(action.Kind))
		return nil, err
	}
	receipt.Hash = txn.Hash
	receipt.Transaction = *txn
	receipt.Synced = im.resync(c, ks, action, actor, before)
	return receipt, nil
}

// send signs, submits and waits for the ledger verdict. It never retries.
func (im *impl) send(c ctx.Ctx, payload domain.Payload) (*domain.Transaction, error) {
	defer im.metrics.BumpTime("submit.time").End()

	handle, err := im.wallet.SignAndSubmit(c, payload)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "function": payload.Function}).Error("wallet.SignAndSubmit failed")
		if domain.IsSubmissionError(err) || domain.IsSignatureError(err) {
			return nil, err
		}
		return nil, &domain.SignatureError{Err: err}
	}

	waitCtx, cancel := ctx.WithTimeout(c, im.confirmTimeout)
	defer cancel()
	txn, err := im.ledger.WaitForTransaction(waitCtx, handle.Hash)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "hash": handle.Hash}).Warn("ledger.WaitForTransaction failed")
		return nil, &domain.StatusUnknownError{Hash: handle.Hash}
	}
	if !txn.Success {
		c.WithFields(log.Fields{"hash": txn.Hash, "vmStatus": txn.VmStatus}).Info("transaction rejected")
		return nil, &domain.SubmissionError{Hash: txn.Hash, Reason: txn.VmStatus}
	}
	return txn, nil
}

// observe fingerprints the cached entity the action targets. Empty means
// there is nothing cached to compare against.
func (im *impl) observe(c ctx.Ctx, ks kindDef, action tx.Action) string {
	var state struct {
		Asset interface{} `json:"asset,omitempty"`
		Offer interface{} `json:"offer,omitempty"`
	}
	if ks.watchAsset {
		if a, err := im.market.FindAsset(c, action.AssetId); err == nil {
			state.Asset = a
		}
	}
	if ks.watchOffer {
		if o, err := im.market.FindOffer(c, action.OfferId); err == nil {
			state.Offer = o
		}
	}
	if state.Asset == nil && state.Offer == nil {
		return ""
	}
	b, err := json.Marshal(state)
	if err != nil {
		return ""
	}
	return string(b)
}

// resync refreshes the mounted scopes the action affects until the cached
// entity no longer shows its pre-transaction state. It reports whether it did.
func (im *impl) resync(c ctx.Ctx, ks kindDef, action tx.Action, actor domain.Address, before string) bool {
	scopes := ks.refresh.scopes(actor)
	if action.Kind == tx.KindTransfer {
		scopes = append(scopes, market.Owned(action.To))
	}
	mounted := []market.Scope{}
	for _, s := range scopes {
		if im.market.IsMounted(s) {
			mounted = append(mounted, s)
		}
	}
	if len(mounted) == 0 {
		return true
	}

	b := backoff.NewExponential(im.refetchBackoff, 8*im.refetchBackoff)
	err := backoff.Retry(c, b, im.refetchAttempts, func(attempt int) (bool, error) {
		for _, s := range mounted {
			if _, err := im.market.Refresh(c, s); err != nil {
				c.WithFields(log.Fields{"err": err, "scope": s.Key(), "attempt": attempt}).Warn("market.Refresh failed")
			}
		}
		return before == "" || im.observe(c, ks, action) != before, nil
	})
	if errors.Is(err, backoff.ErrAttemptsExhausted) {
		c.WithField("attempts", im.refetchAttempts).Warn("views still show pre-transaction state")
		return false
	} else if err != nil {
		c.WithField("err", err).Warn("backoff.Retry failed")
		return false
	}
	return true
}
