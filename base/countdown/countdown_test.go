package countdown

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
)

func TestEvaluateLabels(t *testing.T) {
	req := require.New(t)
	now := time.Unix(1_700_000_000, 0)
	d := now.Unix()

	cases := []struct {
		desc     string
		deadline int64
		kind     Kind
		label    string
		terminal bool
		invalid  bool
	}{
		{"zero deadline", 0, KindAuction, LabelInvalid, false, true},
		{"negative deadline", -5, KindOffer, LabelInvalid, false, true},
		{"exactly now", d, KindAuction, LabelAuctionEnded, true, false},
		{"past offer", d - 1, KindOffer, LabelOfferExpired, true, false},
		{"seconds", d + 59, KindAuction, "0m 59s", false, false},
		{"minutes", d + 61, KindAuction, "1m 1s", false, false},
		{"hours", d + 3*3600 + 4*60 + 5, KindOffer, "3h 4m 5s", false, false},
		{"days", d + 2*86400 + 3*3600 + 4*60 + 5, KindOffer, "2d 3h 4m", false, false},
	}
	for _, c := range cases {
		s := Evaluate(c.deadline, c.kind, now)
		req.Equal(c.label, s.Label, c.desc)
		req.Equal(c.terminal, s.IsTerminal, c.desc)
		req.Equal(c.invalid, s.IsInvalid, c.desc)
	}
}

func TestEvaluateTerminalIffPastDeadline(t *testing.T) {
	req := require.New(t)
	base := int64(1_700_000_000)
	for deadline := base - 3; deadline <= base+3; deadline++ {
		for at := base - 3; at <= base+3; at++ {
			s := Evaluate(deadline, KindAuction, time.Unix(at, 0))
			req.Equal(at >= deadline, s.IsTerminal, "deadline=%d at=%d", deadline, at)
		}
	}
}

func TestCountdownFiresOnce(t *testing.T) {
	req := require.New(t)
	deadline := int64(1_700_000_000)
	fired := 0
	cd := New(deadline, KindAuction, func() { fired++ })

	for at := deadline - 3; at <= deadline+5; at++ {
		cd.Tick(time.Unix(at, 0))
	}
	req.Equal(1, fired)
	req.True(cd.Last().IsTerminal)
}

func TestCountdownInvalidNeverFires(t *testing.T) {
	fired := 0
	cd := New(0, KindOffer, func() { fired++ })
	for i := 0; i < 3; i++ {
		cd.Tick(time.Unix(int64(i), 0))
	}
	require.Equal(t, 0, fired)
}

type watcherSuite struct {
	suite.Suite
	ctx   bCtx.Ctx
	fired []Entry
	w     *Watcher
}

func (s *watcherSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.fired = nil
	s.w = NewWatcher(&WatcherCfg{
		OnExpire: func(_ bCtx.Ctx, e Entry) { s.fired = append(s.fired, e) },
	})
}

func (s *watcherSuite) TestFiresOncePerMount() {
	deadline := int64(1_700_000_000)
	a := Entry{Key: "auction:1", Deadline: deadline, Kind: KindAuction}
	s.w.Sync([]Entry{a})

	s.w.Tick(s.ctx, time.Unix(deadline-1, 0))
	s.w.Tick(s.ctx, time.Unix(deadline, 0))
	s.w.Tick(s.ctx, time.Unix(deadline+1, 0))
	s.Equal([]Entry{a}, s.fired)

	// staying mounted keeps the fired state
	s.w.Sync([]Entry{a})
	s.w.Tick(s.ctx, time.Unix(deadline+2, 0))
	s.Len(s.fired, 1)

	// unmount then remount is a new mount
	s.w.Sync(nil)
	s.w.Sync([]Entry{a})
	s.w.Tick(s.ctx, time.Unix(deadline+3, 0))
	s.Len(s.fired, 2)
}

func (s *watcherSuite) TestDeadlineChangeRemounts() {
	deadline := int64(1_700_000_000)
	s.w.Sync([]Entry{{Key: "auction:1", Deadline: deadline, Kind: KindAuction}})
	s.w.Tick(s.ctx, time.Unix(deadline, 0))
	s.Len(s.fired, 1)

	s.w.Sync([]Entry{{Key: "auction:1", Deadline: deadline + 100, Kind: KindAuction}})
	s.w.Tick(s.ctx, time.Unix(deadline+1, 0))
	s.Len(s.fired, 1)
	st, ok := s.w.Status("auction:1")
	s.True(ok)
	s.Equal("1m 39s", st.Label)
}

func (s *watcherSuite) TestSyncPrefix() {
	s.w.Sync([]Entry{
		{Key: "auction:1", Deadline: 10, Kind: KindAuction},
		{Key: "offer:1", Deadline: 10, Kind: KindOffer},
	})
	s.w.SyncPrefix("offer:", []Entry{{Key: "offer:2", Deadline: 10, Kind: KindOffer}})
	s.Equal(2, s.w.Len())
	_, ok := s.w.Status("offer:1")
	s.False(ok)
	_, ok = s.w.Status("auction:1")
	s.True(ok)
}

func (s *watcherSuite) TestLoopStops() {
	var ticks int32
	w := NewWatcher(&WatcherCfg{
		Interval: 5 * time.Millisecond,
		OnExpire: func(bCtx.Ctx, Entry) { atomic.AddInt32(&ticks, 1) },
	})
	w.Sync([]Entry{{Key: "auction:1", Deadline: 1, Kind: KindAuction}})
	ctx, cancel := bCtx.WithCancel(s.ctx)
	w.Start(ctx)
	s.Eventually(func() bool { return atomic.LoadInt32(&ticks) == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	w.Wait()
	s.Equal(int32(1), atomic.LoadInt32(&ticks))
}

func TestWatcher(t *testing.T) {
	suite.Run(t, new(watcherSuite))
}
