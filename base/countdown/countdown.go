package countdown

import (
	"fmt"
	"sync"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

type Kind string

const (
	KindAuction Kind = "auction"
	KindOffer   Kind = "offer"
)

const (
	LabelInvalid      = "Invalid Time"
	LabelAuctionEnded = "Auction Ended"
	LabelOfferExpired = "Offer Expired"
)

// Status is the evaluation of one deadline at one instant
type Status struct {
	Label      string        `json:"label"`
	IsTerminal bool          `json:"isTerminal"`
	IsInvalid  bool          `json:"isInvalid"`
	Remaining  time.Duration `json:"remaining"`
}

// Evaluate turns an absolute deadline in epoch seconds into a label. It is
// terminal exactly when now >= deadline. A zero deadline is invalid, never
// terminal.
func Evaluate(deadline int64, kind Kind, now time.Time) Status {
	if deadline <= 0 {
		return Status{Label: LabelInvalid, IsInvalid: true}
	}
	remaining := deadline - now.Unix()
	if remaining <= 0 {
		label := LabelAuctionEnded
		if kind == KindOffer {
			label = LabelOfferExpired
		}
		return Status{Label: label, IsTerminal: true}
	}
	return Status{
		Label:     format(remaining),
		Remaining: time.Duration(remaining) * time.Second,
	}
}

func format(remaining int64) string {
	days := remaining / 86400
	hours := (remaining % 86400) / 3600
	minutes := (remaining % 3600) / 60
	seconds := remaining % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	default:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
}

// Countdown is one mounted deadline. onExpire fires at most once per
// Countdown no matter how many terminal ticks follow.
type Countdown struct {
	deadline int64
	kind     Kind
	onExpire func()
	once     sync.Once

	mutex sync.RWMutex
	last  Status
}

func New(deadline int64, kind Kind, onExpire func()) *Countdown {
	return &Countdown{
		deadline: deadline,
		kind:     kind,
		onExpire: onExpire,
	}
}

func (c *Countdown) Deadline() int64 {
	return c.deadline
}

// Tick evaluates at now and fires onExpire on the first terminal result
func (c *Countdown) Tick(now time.Time) Status {
	s, _ := c.tick(now)
	return s
}

func (c *Countdown) tick(now time.Time) (Status, bool) {
	s := Evaluate(c.deadline, c.kind, now)
	c.mutex.Lock()
	c.last = s
	c.mutex.Unlock()

	fired := false
	if s.IsTerminal {
		c.once.Do(func() {
			fired = true
			if c.onExpire != nil {
				c.onExpire()
			}
		})
	}
	return s, fired
}

// Last returns the most recent Tick result
func (c *Countdown) Last() Status {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.last
}

// Run ticks every interval until ctx is done or the countdown turns terminal
func (c *Countdown) Run(ctx bCtx.Ctx, clock domain.Clock, interval time.Duration) {
	if c.Tick(clock.Now()).IsTerminal {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.Tick(clock.Now()).IsTerminal {
				return
			}
		}
	}
}
