package service

import (
	"sync"
	"time"

	"airport-transfer-board/pkg/clock"
)

// =============================================================================
// Types
// =============================================================================

// TimerKind names a timer slot. Each slot holds at most one live timer.
type TimerKind string

const (
	TimerRotation   TimerKind = "rotation"
	TimerInactivity TimerKind = "inactivity"
)

// TimerRegistry owns the board's timers, one handle per kind.
//
// Locking:
// - Schedule, Cancel, CancelAll and IsArmed must be called with locker held
// - callbacks run with locker held, so they may call back into the registry
//
// A callback whose timer was cancelled or superseded after it was already
// dispatched is dropped by comparing generations.
type TimerRegistry struct {
	clock  clock.Clock
	locker sync.Locker
	armed  map[TimerKind]armedTimer
	gen    uint64
}

type armedTimer struct {
	timer clock.Timer
	gen   uint64
}

// =============================================================================
// Constructor
// =============================================================================

func NewTimerRegistry(clk clock.Clock, locker sync.Locker) *TimerRegistry {
	return &TimerRegistry{
		clock:  clk,
		locker: locker,
		armed:  make(map[TimerKind]armedTimer),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Schedule cancels any timer of the same kind and arms a new one-shot timer
func (r *TimerRegistry) Schedule(kind TimerKind, delay time.Duration, fn func()) {
	r.Cancel(kind)

	r.gen++
	gen := r.gen
	t := r.clock.AfterFunc(delay, func() {
		r.fire(kind, gen, fn)
	})
	r.armed[kind] = armedTimer{timer: t, gen: gen}
}

// Cancel stops the timer of the given kind. Safe when nothing is armed.
func (r *TimerRegistry) Cancel(kind TimerKind) {
	a, ok := r.armed[kind]
	if !ok {
		return
	}
	a.timer.Stop()
	delete(r.armed, kind)
}

func (r *TimerRegistry) CancelAll() {
	for kind := range r.armed {
		r.Cancel(kind)
	}
}

func (r *TimerRegistry) IsArmed(kind TimerKind) bool {
	_, ok := r.armed[kind]
	return ok
}

// Live returns the number of armed timers across all kinds
func (r *TimerRegistry) Live() int {
	return len(r.armed)
}

// =============================================================================
// Private Methods
// =============================================================================

func (r *TimerRegistry) fire(kind TimerKind, gen uint64, fn func()) {
	r.locker.Lock()
	defer r.locker.Unlock()

	a, ok := r.armed[kind]
	if !ok || a.gen != gen {
		return
	}
	delete(r.armed, kind)
	fn()
}
