package tracker

import (
	"errors"
	"strings"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/market"
	"github.com/x-xyz/marketclient/domain/tx"
)

// ledger abort reasons meaning the auction was already finalized
var finalizedReasons = []string{
	"E_AUCTION_NOT_ACTIVE",
	"EAUCTION_ENDED",
	"not an auction",
	"already",
}

type SweeperCfg struct {
	Market   market.Usecase
	Tx       tx.Usecase
	Wallet   domain.Wallet
	Interval time.Duration
	Metrics  metrics.Service
}

// Sweeper submits end_auction for every cached auction past its end
type Sweeper struct {
	market    market.Usecase
	tx        tx.Usecase
	wallet    domain.Wallet
	interval  time.Duration
	metrics   metrics.Service
	stoppedCh chan interface{}
}

func NewSweeper(cfg *SweeperCfg) *Sweeper {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	m := cfg.Metrics
	if m == nil {
		m = metrics.New("tracker")
	}
	return &Sweeper{
		market:    cfg.Market,
		tx:        cfg.Tx,
		wallet:    cfg.Wallet,
		interval:  interval,
		metrics:   m,
		stoppedCh: make(chan interface{}),
	}
}

func (s *Sweeper) Start(ctx bCtx.Ctx) {
	go s.loop(ctx)
}

func (s *Sweeper) Wait() {
	<-s.stoppedCh
}

func (s *Sweeper) loop(ctx bCtx.Ctx) {
	for {
		select {
		case <-ctx.Done():
			close(s.stoppedCh)
			return
		case <-time.After(s.interval):
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one tick and returns how many auctions were finalized
func (s *Sweeper) Sweep(ctx bCtx.Ctx) int {
	if s.wallet.Account() == nil {
		ctx.Debug("no wallet account, skip sweep")
		return 0
	}
	expired, err := s.market.ExpiredAuctions(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("market.ExpiredAuctions failed")
		return 0
	}

	done := make(map[domain.AssetId]bool, len(expired))
	finalized := 0
	for _, a := range expired {
		if ctx.Err() != nil {
			break
		}
		if done[a.Id] {
			continue
		}
		done[a.Id] = true

		fields := log.Fields{"assetId": a.Id, "auctionEnd": a.Auction.EndTime}
		_, err := s.tx.Submit(ctx, tx.Action{Kind: tx.KindEndAuction, AssetId: a.Id})
		switch {
		case err == nil:
			finalized++
			s.metrics.BumpSum("sweeper.finalize", 1)
			ctx.WithFields(fields).Info("auction finalized")
		case isAlreadyFinalized(err):
			s.metrics.BumpSum("sweeper.finalize.noop", 1)
			ctx.WithFields(fields).WithField("err", err).Info("auction already finalized")
		default:
			s.metrics.BumpSum("sweeper.finalize.err", 1)
			ctx.WithFields(fields).WithField("err", err).Error("tx.Submit failed")
		}
	}
	return finalized
}

func isAlreadyFinalized(err error) bool {
	var subErr *domain.SubmissionError
	if !errors.As(err, &subErr) {
		return false
	}
	for _, r := range finalizedReasons {
		if strings.Contains(subErr.Reason, r) {
			return true
		}
	}
	return false
}
