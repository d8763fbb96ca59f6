package tracker

import (
	"sync"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

type LedgerClockCfg struct {
	Ledger   domain.Ledger
	Interval time.Duration
	// Local defaults to the system clock
	Local domain.Clock
}

// LedgerClock is local time corrected by the last observed ledger offset
type LedgerClock struct {
	ledger   domain.Ledger
	interval time.Duration
	local    domain.Clock

	mutex     sync.RWMutex
	offset    time.Duration
	synced    bool
	stoppedCh chan interface{}
}

func NewLedgerClock(cfg *LedgerClockCfg) *LedgerClock {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	local := cfg.Local
	if local == nil {
		local = domain.SystemClock
	}
	return &LedgerClock{
		ledger:    cfg.Ledger,
		interval:  interval,
		local:     local,
		stoppedCh: make(chan interface{}),
	}
}

func (c *LedgerClock) Now() time.Time {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.local.Now().Add(c.offset)
}

func (c *LedgerClock) Offset() (time.Duration, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.offset, c.synced
}

// Sync reads the ledger timestamp once. On failure the previous offset stays.
func (c *LedgerClock) Sync(ctx bCtx.Ctx) error {
	sentAt := c.local.Now()
	info, err := c.ledger.LedgerInfo(ctx)
	if err != nil {
		ctx.WithField("err", err).Warn("ledger.LedgerInfo failed")
		return err
	}
	receivedAt := c.local.Now()
	// assume the ledger stamped the midpoint of the round trip
	local := sentAt.Add(receivedAt.Sub(sentAt) / 2)
	offset := info.LedgerTimestamp.Sub(local)

	c.mutex.Lock()
	c.offset = offset
	c.synced = true
	c.mutex.Unlock()
	ctx.WithField("offset", offset).Debug("ledger clock synced")
	return nil
}

func (c *LedgerClock) Start(ctx bCtx.Ctx) {
	go c.loop(ctx)
}

func (c *LedgerClock) Wait() {
	<-c.stoppedCh
}

func (c *LedgerClock) loop(ctx bCtx.Ctx) {
	var nextTick time.Duration
	for {
		select {
		case <-ctx.Done():
			close(c.stoppedCh)
			return
		case <-time.After(nextTick):
			c.Sync(ctx)
			nextTick = c.interval
		}
	}
}
