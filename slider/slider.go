// Package slider contains the carousel domain logic: the Config describing
// the deck and the Controller state machine that owns the current slide and
// the auto-play timer.
//
// Maintenance notes:
//   - The Controller state (index, timer, countdown window) is touched by the
//     command loop goroutine and by timer callbacks. Every mutation happens
//     under mu, and View.Render is called under the same lock so the index and
//     the rendered position never disagree.
//   - At most one timer is armed at a time. arm always runs after stopLocked,
//     and every fire carries the generation it was armed with; a stale
//     generation means the timer was cancelled while its callback was already
//     in flight, and the fire is dropped.
//   - The onChange observer is called after the lock is released so it may
//     call back into the Controller.
package slider

import (
	"sync"
	"time"

	"Showcase/clock"
)

const (
	// DefaultAutoPlayDelay is the auto-advance interval.
	DefaultAutoPlayDelay = 5 * time.Second
	// DefaultMinSwipeDistance is the horizontal travel, in pixels, a gesture
	// must exceed to count as a swipe.
	DefaultMinSwipeDistance float32 = 50
)

// View is the visual host the Controller drives. BuildIndicators is called
// once with the slide count; Render is called after every transition with
// the new current index.
type View interface {
	BuildIndicators(n int)
	Render(index int)
}

// Controller is the slider state machine: a current index over a fixed
// number of slides plus an auto-play timer that can be paused, resumed and
// reset by user input.
type Controller struct {
	mu sync.Mutex

	view     View
	sched    clock.Scheduler
	count    int
	index    int
	delay    time.Duration
	minSwipe float32
	onChange func(index int)

	timer       clock.Timer
	gen         uint64
	windowStart time.Time
	remaining   time.Duration
	paused      bool
	disposed    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the wall clock.
func WithScheduler(s clock.Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithDelay sets the auto-play interval. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithMinSwipeDistance sets the gesture threshold. Negative values are ignored.
func WithMinSwipeDistance(px float32) Option {
	return func(c *Controller) {
		if px >= 0 {
			c.minSwipe = px
		}
	}
}

// WithConfig applies the timing values of cfg.
func WithConfig(cfg *Config) Option {
	return func(c *Controller) {
		if cfg == nil {
			return
		}
		WithDelay(cfg.AutoPlayDelay)(c)
		WithMinSwipeDistance(cfg.MinSwipeDistance)(c)
	}
}

// WithOnChange registers fn to be called whenever the current index changes.
func WithOnChange(fn func(index int)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// New initializes a slider over n slides: it builds the indicators, shows
// the first slide and starts auto-play. With no slides or no view the
// returned Controller is inert and every method is a no-op.
func New(n int, view View, opts ...Option) *Controller {
	c := &Controller{
		sched:    clock.Real{},
		delay:    DefaultAutoPlayDelay,
		minSwipe: DefaultMinSwipeDistance,
		index:    -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if n <= 0 || view == nil {
		return c
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = view
	c.count = n
	c.index = 0
	view.BuildIndicators(n)
	c.arm(c.delay)
	view.Render(c.index)
	return c
}

// inert reports whether the controller ignores all input. Caller holds mu.
func (c *Controller) inert() bool {
	return c.count == 0 || c.disposed
}

// Index returns the current slide, or -1 for a controller without slides.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Count returns the number of slides.
func (c *Controller) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Delay returns the auto-play interval.
func (c *Controller) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delay
}

// AutoPlaying reports whether an auto-play timer is armed.
func (c *Controller) AutoPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// GoTo shows slide i. Out of range requests are clamped once to the
// opposite end: below zero goes to the last slide, at or past the end goes
// to the first. GoTo does not touch the auto-play timer.
func (c *Controller) GoTo(i int) {
	c.mu.Lock()
	if c.inert() {
		c.mu.Unlock()
		return
	}
	changed := c.goToLocked(i)
	idx := c.index
	c.mu.Unlock()
	c.notify(idx, changed)
}

// Next shows the following slide, wrapping to the first.
func (c *Controller) Next() {
	c.step(1)
}

// Previous shows the preceding slide, wrapping to the last.
func (c *Controller) Previous() {
	c.step(-1)
}

func (c *Controller) step(delta int) {
	c.mu.Lock()
	if c.inert() {
		c.mu.Unlock()
		return
	}
	changed := c.goToLocked(c.index + delta)
	idx := c.index
	c.mu.Unlock()
	c.notify(idx, changed)
}

func (c *Controller) goToLocked(i int) bool {
	switch {
	case i < 0:
		i = c.count - 1
	case i >= c.count:
		i = 0
	}
	changed := i != c.index
	c.index = i
	c.view.Render(i)
	return changed
}

func (c *Controller) notify(index int, changed bool) {
	if changed && c.onChange != nil {
		c.onChange(index)
	}
}

// StartAutoPlay arms a fresh auto-play interval, cancelling any timer that
// is already running.
func (c *Controller) StartAutoPlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert() {
		return
	}
	c.stopLocked()
	c.arm(c.delay)
}

// StopAutoPlay cancels the auto-play timer. It is safe to call at any time.
func (c *Controller) StopAutoPlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.paused = false
	c.remaining = 0
}

// ResetAutoPlay restarts the countdown from now. User-initiated transitions
// go through the *AndReset methods, which do the same under one lock.
func (c *Controller) ResetAutoPlay() {
	c.StartAutoPlay()
}

// RegisterGesture handles a completed horizontal drag from startX to endX.
// Moving left past the threshold shows the next slide, moving right shows
// the previous one; both reset auto-play. Shorter moves are taps. It
// reports whether a transition happened.
func (c *Controller) RegisterGesture(startX, endX float32) bool {
	distance := endX - startX

	var delta int
	switch {
	case distance < -c.minSwipe:
		delta = 1
	case distance > c.minSwipe:
		delta = -1
	default:
		return false
	}
	return c.navigate(func() int { return c.index + delta })
}

// NextAndReset shows the following slide and restarts the auto-play
// countdown as a single transition.
func (c *Controller) NextAndReset() {
	c.navigate(func() int { return c.index + 1 })
}

// PreviousAndReset shows the preceding slide and restarts the auto-play
// countdown as a single transition.
func (c *Controller) PreviousAndReset() {
	c.navigate(func() int { return c.index - 1 })
}

// GoToAndReset shows slide i, clamped like GoTo, and restarts the
// auto-play countdown as a single transition.
func (c *Controller) GoToAndReset(i int) {
	c.navigate(func() int { return i })
}

// navigate moves to the index returned by target and re-arms a full
// interval without releasing mu in between, so an auto-play tick can never
// land between a user transition and its reset. target runs with mu held.
func (c *Controller) navigate(target func() int) bool {
	c.mu.Lock()
	if c.inert() {
		c.mu.Unlock()
		return false
	}
	changed := c.goToLocked(target())
	c.stopLocked()
	c.arm(c.delay)
	idx := c.index
	c.mu.Unlock()

	c.notify(idx, changed)
	return true
}

// OnVisibilityChange pauses auto-play while the host is hidden and resumes
// it when it becomes visible again.
func (c *Controller) OnVisibilityChange(hidden bool) {
	if hidden {
		c.pause()
		return
	}
	c.resume()
}

// OnHoverEnter pauses auto-play while the pointer is over the slider.
func (c *Controller) OnHoverEnter() {
	c.pause()
}

// OnHoverLeave resumes auto-play. The countdown continues where it was
// paused instead of restarting.
func (c *Controller) OnHoverLeave() {
	c.resume()
}

func (c *Controller) pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert() || c.timer == nil {
		return
	}
	rem := c.delay - c.sched.Now().Sub(c.windowStart)
	if rem < 0 {
		rem = 0
	}
	if rem > c.delay {
		rem = c.delay
	}
	c.stopLocked()
	c.paused = true
	c.remaining = rem
}

func (c *Controller) resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert() || c.timer != nil {
		return
	}
	if c.paused {
		c.arm(c.remaining)
		return
	}
	c.arm(c.delay)
}

// Dispose cancels auto-play and turns the controller inert.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.disposed = true
}

// arm schedules the next advance after d. Caller holds mu and has stopped
// any previous timer.
func (c *Controller) arm(d time.Duration) {
	c.gen++
	gen := c.gen
	c.windowStart = c.sched.Now().Add(d - c.delay)
	c.paused = false
	c.remaining = 0
	c.timer = c.sched.AfterFunc(d, func() { c.fire(gen) })
}

func (c *Controller) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

// fire is the auto-play tick: it advances one slide and arms the next full
// interval without resetting anything else.
func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if c.inert() || gen != c.gen || c.timer == nil {
		c.mu.Unlock()
		return
	}
	changed := c.goToLocked(c.index + 1)
	c.timer = nil
	c.arm(c.delay)
	idx := c.index
	c.mu.Unlock()
	c.notify(idx, changed)
}
