package events

import (
	"sync"
	"time"

	"github.com/go-drift/formkit/pkg/clock"
)

// DefaultDelay is the debounce delay used when none is configured.
const DefaultDelay = 100 * time.Millisecond

// Cascade turns value commits into the Update, UpdateStart, UpdateStable
// and UpdateEnd sequence.
//
// Two timers share the delay. The debounce timer restarts on every Update;
// when it elapses the cascade settles. The repeat timer is armed by the first
// Update after it last fired and is not restarted, so sustained input still
// yields an UpdateStable per delay. A timer only emits UpdateStable when an
// Update arrived since the previous UpdateStable, so a short burst produces
// exactly one.
type Cascade struct {
	clock clock.Clock
	delay time.Duration
	emit  func(Type)

	mu          sync.Mutex
	inFlight    bool
	unsettled   bool
	debounce    clock.Timer
	debounceGen uint64
	repeat      clock.Timer
	repeatGen   uint64
	disposed    bool
}

// NewCascade returns a cascade that reports events through emit. A nil clock
// uses clock.Default(); a non-positive delay uses DefaultDelay.
func NewCascade(c clock.Clock, delay time.Duration, emit func(Type)) *Cascade {
	if c == nil {
		c = clock.Default()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Cascade{clock: c, delay: delay, emit: emit}
}

// Delay returns the debounce delay.
func (c *Cascade) Delay() time.Duration {
	return c.delay
}

// InFlight reports whether a cascade has started and not yet settled.
func (c *Cascade) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Update records a committed change: emits Update, then UpdateStart if no
// cascade was in flight, and (re)arms the timers.
func (c *Cascade) Update() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	start := !c.inFlight
	c.inFlight = true
	c.unsettled = true

	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounceGen++
	gen := c.debounceGen
	c.debounce = c.clock.AfterFunc(c.delay, func() { c.settle(gen) })

	if c.repeat == nil {
		c.repeatGen++
		rgen := c.repeatGen
		c.repeat = c.clock.AfterFunc(c.delay, func() { c.fireRepeat(rgen) })
	}
	c.mu.Unlock()

	c.emit(Update)
	if start {
		c.emit(UpdateStart)
	}
}

func (c *Cascade) settle(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.debounceGen || c.debounce == nil {
		c.mu.Unlock()
		return
	}
	c.debounce = nil
	if c.repeat != nil {
		c.repeat.Stop()
		c.repeat = nil
		c.repeatGen++
	}
	stable := c.unsettled
	c.unsettled = false
	c.inFlight = false
	c.mu.Unlock()

	if stable {
		c.emit(UpdateStable)
	}
	c.emit(UpdateEnd)
}

func (c *Cascade) fireRepeat(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.repeatGen || c.repeat == nil {
		c.mu.Unlock()
		return
	}
	c.repeat = nil
	stable := c.unsettled
	c.unsettled = false
	c.mu.Unlock()

	if stable {
		c.emit(UpdateStable)
	}
}

// Dispose stops both timers. Nothing is emitted afterwards.
func (c *Cascade) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.inFlight = false
	c.unsettled = false
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
	if c.repeat != nil {
		c.repeat.Stop()
		c.repeat = nil
	}
	c.debounceGen++
	c.repeatGen++
}
