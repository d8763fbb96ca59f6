package tracker

import (
	"sort"
	"sync"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/goroutine"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/market"
)

// Refresher is the part of market.Usecase a sync loop drives
type Refresher interface {
	Refresh(c bCtx.Ctx, scope market.Scope) (*market.Snapshot, error)
}

type SyncLoopCfg struct {
	Scope     market.Scope
	Refresher Refresher
	// Interval 0 refreshes only on start and on Trigger
	Interval time.Duration
}

// SyncLoop keeps one scope's snapshot fresh. It refreshes on start, on every
// Trigger and every Interval. Triggers that arrive while a refresh runs
// coalesce into one follow-up refresh.
type SyncLoop struct {
	scope     market.Scope
	refresher Refresher
	interval  time.Duration
	triggerCh chan struct{}
	stoppedCh chan interface{}
}

func NewSyncLoop(cfg *SyncLoopCfg) *SyncLoop {
	return &SyncLoop{
		scope:     cfg.Scope,
		refresher: cfg.Refresher,
		interval:  cfg.Interval,
		triggerCh: make(chan struct{}, 1),
		stoppedCh: make(chan interface{}),
	}
}

func (l *SyncLoop) Scope() market.Scope {
	return l.scope
}

// Trigger requests a refresh. It returns false if one is already pending.
func (l *SyncLoop) Trigger() bool {
	select {
	case l.triggerCh <- struct{}{}:
		return true
	default:
		return false
	}
}

func (l *SyncLoop) Start(ctx bCtx.Ctx) {
	go l.loop(ctx)
}

func (l *SyncLoop) Wait() {
	<-l.stoppedCh
}

func (l *SyncLoop) loop(ctx bCtx.Ctx) {
	ctx = bCtx.WithFields(ctx, log.Fields{"scope": l.scope.Key()})
	var tick <-chan time.Time
	var timer *time.Timer
	resetTimer := func() {
		if l.interval <= 0 {
			return
		}
		if timer != nil {
			timer.Stop()
		}
		timer = time.NewTimer(l.interval)
		tick = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	l.refresh(ctx)
	resetTimer()
	for {
		select {
		case <-ctx.Done():
			close(l.stoppedCh)
			return
		case <-l.triggerCh:
			l.refresh(ctx)
			resetTimer()
		case <-tick:
			l.refresh(ctx)
			resetTimer()
		}
	}
}

// refresh never lets a panic escape into the loop
func (l *SyncLoop) refresh(ctx bCtx.Ctx) {
	if ctx.Err() != nil {
		return
	}
	err := <-goroutine.RecoverableGo(func() error {
		_, err := l.refresher.Refresh(ctx, l.scope)
		return err
	}, goroutine.WithName("refresh "+l.scope.Key()))
	if err != nil {
		ctx.WithField("err", err).Warn("refresher.Refresh failed")
	}
}

type SyncManagerCfg struct {
	Usecase market.Usecase
	// Intervals per scope kind, 0 or missing means trigger only
	Intervals map[market.ScopeKind]time.Duration
	// IdleTimeout unmounts owned and offers scopes nobody read for that
	// long. 0 keeps them until Unmount.
	IdleTimeout time.Duration
	// MaxScopes caps the mounted owned and offers scopes, the least recently
	// read one is unmounted first. 0 is unlimited.
	MaxScopes int
	Clock     domain.Clock
}

// SyncManager owns one SyncLoop per mounted scope. The market scope is never
// unmounted for idleness or capacity.
type SyncManager struct {
	usecase     market.Usecase
	intervals   map[market.ScopeKind]time.Duration
	idleTimeout time.Duration
	maxScopes   int
	clock       domain.Clock

	mutex     sync.Mutex
	parent    *bCtx.Ctx
	running   map[string]*running
	stoppedCh chan interface{}
}

type running struct {
	loop     *SyncLoop
	cancel   func()
	lastRead time.Time
	filter   string
}

func NewSyncManager(cfg *SyncManagerCfg) *SyncManager {
	intervals := cfg.Intervals
	if intervals == nil {
		intervals = map[market.ScopeKind]time.Duration{}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = domain.SystemClock
	}
	return &SyncManager{
		usecase:     cfg.Usecase,
		intervals:   intervals,
		idleTimeout: cfg.IdleTimeout,
		maxScopes:   cfg.MaxScopes,
		clock:       clock,
		running:     make(map[string]*running),
	}
}

// Start binds the manager to ctx; loops mounted before Start begin now
func (m *SyncManager) Start(ctx bCtx.Ctx) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.parent = &ctx
	for _, r := range m.running {
		m.startLocked(r)
	}
	if m.idleTimeout > 0 && m.stoppedCh == nil {
		m.stoppedCh = make(chan interface{})
		go m.reapLoop(ctx)
	}
}

func (m *SyncManager) startLocked(r *running) {
	if m.parent == nil || r.cancel != nil {
		return
	}
	loopCtx, cancel := bCtx.WithCancel(*m.parent)
	r.cancel = cancel
	r.loop.Start(loopCtx)
}

func (m *SyncManager) mountLocked(c bCtx.Ctx, scope market.Scope) *running {
	if r, ok := m.running[scope.Key()]; ok {
		return r
	}
	m.usecase.Mount(c, scope)
	r := &running{loop: NewSyncLoop(&SyncLoopCfg{
		Scope:     scope,
		Refresher: m.usecase,
		Interval:  m.intervals[scope.Kind],
	})}
	m.running[scope.Key()] = r
	m.startLocked(r)
	return r
}

// Mount mounts the scope and starts its loop. Mounting twice is a no-op.
func (m *SyncManager) Mount(c bCtx.Ctx, scope market.Scope) {
	m.mutex.Lock()
	r := m.mountLocked(c, scope)
	r.lastRead = m.clock.Now()
	victims := m.overflowLocked(scope)
	m.mutex.Unlock()

	m.unmountAll(c, victims)
}

// Read marks the scope as read now, mounting it first if needed. A filter
// different from the previous read's triggers a refresh.
func (m *SyncManager) Read(c bCtx.Ctx, scope market.Scope, filter string) {
	m.mutex.Lock()
	_, mounted := m.running[scope.Key()]
	r := m.mountLocked(c, scope)
	changed := mounted && r.filter != filter
	r.filter = filter
	r.lastRead = m.clock.Now()
	victims := m.overflowLocked(scope)
	m.mutex.Unlock()

	m.unmountAll(c, victims)
	if changed {
		r.loop.Trigger()
	}
}

func evictable(scope market.Scope) bool {
	return scope.Kind != market.ScopeMarket
}

// overflowLocked picks the least recently read scopes above MaxScopes. keep
// is never picked.
func (m *SyncManager) overflowLocked(keep market.Scope) []market.Scope {
	if m.maxScopes <= 0 {
		return nil
	}
	candidates := []*running{}
	for key, r := range m.running {
		if evictable(r.loop.Scope()) && key != keep.Key() {
			candidates = append(candidates, r)
		}
	}
	over := len(candidates) + 1 - m.maxScopes
	if !evictable(keep) {
		over--
	}
	if over <= 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].lastRead.Before(candidates[j].lastRead) })
	victims := make([]market.Scope, 0, over)
	for _, r := range candidates[:over] {
		victims = append(victims, r.loop.Scope())
	}
	return victims
}

// ReapIdle unmounts every scope not read within IdleTimeout and returns how
// many it unmounted
func (m *SyncManager) ReapIdle(c bCtx.Ctx) int {
	if m.idleTimeout <= 0 {
		return 0
	}
	now := m.clock.Now()
	m.mutex.Lock()
	idle := []market.Scope{}
	for _, r := range m.running {
		if evictable(r.loop.Scope()) && now.Sub(r.lastRead) >= m.idleTimeout {
			idle = append(idle, r.loop.Scope())
		}
	}
	m.mutex.Unlock()

	m.unmountAll(c, idle)
	return len(idle)
}

func (m *SyncManager) reapLoop(ctx bCtx.Ctx) {
	ticker := time.NewTicker(m.idleTimeout / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			close(m.stoppedCh)
			return
		case <-ticker.C:
			if n := m.ReapIdle(ctx); n > 0 {
				ctx.WithField("scopes", n).Info("idle scopes unmounted")
			}
		}
	}
}

func (m *SyncManager) unmountAll(c bCtx.Ctx, scopes []market.Scope) {
	for _, scope := range scopes {
		c.WithField("scope", scope.Key()).Info("unmounting unread scope")
		m.Unmount(c, scope)
	}
}

// Unmount stops the loop and drops the snapshot. A refresh in flight is
// discarded when it commits.
func (m *SyncManager) Unmount(c bCtx.Ctx, scope market.Scope) {
	m.mutex.Lock()
	r, ok := m.running[scope.Key()]
	delete(m.running, scope.Key())
	m.mutex.Unlock()
	if !ok {
		return
	}
	m.usecase.Unmount(c, scope)
	if r.cancel != nil {
		r.cancel()
		r.loop.Wait()
	}
}

// Trigger requests a refresh of a mounted scope
func (m *SyncManager) Trigger(scope market.Scope) bool {
	m.mutex.Lock()
	r, ok := m.running[scope.Key()]
	m.mutex.Unlock()
	if !ok {
		return false
	}
	return r.loop.Trigger()
}

// Wait blocks until every running loop has stopped
func (m *SyncManager) Wait() {
	m.mutex.Lock()
	loops := make([]*SyncLoop, 0, len(m.running))
	for _, r := range m.running {
		if r.cancel != nil {
			loops = append(loops, r.loop)
		}
	}
	stoppedCh := m.stoppedCh
	m.mutex.Unlock()
	for _, l := range loops {
		l.Wait()
	}
	if stoppedCh != nil {
		<-stoppedCh
	}
}
