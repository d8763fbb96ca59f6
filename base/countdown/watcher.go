package countdown

import (
	"sync"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

// Entry is one displayed deadline
type Entry struct {
	Key      string
	Deadline int64
	Kind     Kind
}

type WatcherCfg struct {
	Clock    domain.Clock
	Interval time.Duration
	OnExpire func(ctx bCtx.Ctx, e Entry)
}

// Watcher keeps one Countdown per mounted key and ticks them together.
// A key keeps its fired state while it stays in the set; removing it
// unmounts it, and adding it again is a fresh mount.
type Watcher struct {
	clock    domain.Clock
	interval time.Duration
	onExpire func(ctx bCtx.Ctx, e Entry)

	mutex     sync.Mutex
	mounted   map[string]*watched
	stoppedCh chan interface{}
}

type watched struct {
	entry Entry
	cd    *Countdown
}

func NewWatcher(cfg *WatcherCfg) *Watcher {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}
	clock := cfg.Clock
	if clock == nil {
		clock = domain.SystemClock
	}
	return &Watcher{
		clock:     clock,
		interval:  interval,
		onExpire:  cfg.OnExpire,
		mounted:   make(map[string]*watched),
		stoppedCh: make(chan interface{}),
	}
}

// Sync replaces the mounted set. Entries whose deadline changed are remounted.
func (w *Watcher) Sync(entries []Entry) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	next := make(map[string]*watched, len(entries))
	for _, e := range entries {
		if cur, ok := w.mounted[e.Key]; ok && cur.entry == e {
			next[e.Key] = cur
			continue
		}
		next[e.Key] = &watched{entry: e, cd: New(e.Deadline, e.Kind, nil)}
	}
	w.mounted = next
}

// SyncPrefix replaces only the keys with the given prefix
func (w *Watcher) SyncPrefix(prefix string, entries []Entry) {
	w.mutex.Lock()
	keep := []Entry{}
	for k, m := range w.mounted {
		if len(k) < len(prefix) || k[:len(prefix)] != prefix {
			keep = append(keep, m.entry)
		}
	}
	w.mutex.Unlock()
	w.Sync(append(keep, entries...))
}

// Status returns the latest evaluation for key, evaluating now if it has not
// ticked yet.
func (w *Watcher) Status(key string) (Status, bool) {
	w.mutex.Lock()
	m, ok := w.mounted[key]
	w.mutex.Unlock()
	if !ok {
		return Status{}, false
	}
	s := m.cd.Last()
	if s.Label == "" {
		s = Evaluate(m.entry.Deadline, m.entry.Kind, w.clock.Now())
	}
	return s, true
}

func (w *Watcher) Len() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return len(w.mounted)
}

// Tick evaluates every mounted countdown and fires OnExpire for those that
// just turned terminal.
func (w *Watcher) Tick(ctx bCtx.Ctx, now time.Time) {
	w.mutex.Lock()
	list := make([]*watched, 0, len(w.mounted))
	for _, m := range w.mounted {
		list = append(list, m)
	}
	w.mutex.Unlock()

	for _, m := range list {
		if _, fired := m.cd.tick(now); fired && w.onExpire != nil {
			w.onExpire(ctx, m.entry)
		}
	}
}

func (w *Watcher) Start(ctx bCtx.Ctx) {
	go w.loop(ctx)
}

func (w *Watcher) Wait() {
	<-w.stoppedCh
}

func (w *Watcher) loop(ctx bCtx.Ctx) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			close(w.stoppedCh)
			return
		case <-ticker.C:
			w.Tick(ctx, w.clock.Now())
		}
	}
}
