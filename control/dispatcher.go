package control

import (
	"context"
	"log"
	"sync"
	"time"
)

// Target is the set of slider transitions the dispatcher drives.
// *slider.Controller implements it.
type Target interface {
	GoToAndReset(i int)
	NextAndReset()
	PreviousAndReset()
	RegisterGesture(startX, endX float32) bool
	OnHoverEnter()
	OnHoverLeave()
	OnVisibilityChange(hidden bool)
	Dispose()
}

// enqueueTimeout bounds how long Enqueue blocks the UI when the loop is
// saturated.
const enqueueTimeout = 150 * time.Millisecond

// Dispatcher serializes input commands onto a Target from a single
// goroutine.
type Dispatcher struct {
	target Target
	cmdCh  chan Command
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewDispatcher starts the command loop for t.
func NewDispatcher(t Target) *Dispatcher {
	d := &Dispatcher{
		target: t,
		// Use a larger buffer for the command channel to absorb bursts of drag
		// and hover events.
		cmdCh: make(chan Command, 256),
		done:  make(chan struct{}),
	}
	d.ctx, d.cancel = context.WithCancel(context.Background())
	go d.loop()
	return d
}

// Enqueue posts a command to the loop. It never blocks the caller for
// longer than a short timeout; commands are dropped after Dispose or when
// the buffer stays full.
func (d *Dispatcher) Enqueue(cmd Command) {
	select {
	case <-d.ctx.Done():
		return
	default:
	}
	select {
	case d.cmdCh <- cmd:
	case <-d.ctx.Done():
	case <-time.After(enqueueTimeout):
		log.Printf("Enqueue timeout: dropping %s command", cmd.Type)
	}
}

// Do enqueues cmd and waits up to timeout for it to be applied. It reports
// whether the command completed in time.
func (d *Dispatcher) Do(cmd Command, timeout time.Duration) bool {
	reply := make(chan error, 1)
	cmd.Reply = reply
	d.Enqueue(cmd)
	select {
	case <-reply:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for {
		select {
		case <-d.ctx.Done():
			return
		case cmd := <-d.cmdCh:
			Apply(d.target, cmd)
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

// Apply maps one input command onto controller transitions. Every
// user-initiated navigation resets the auto-play countdown in the same
// transition; hover and visibility only pause and resume it.
func Apply(t Target, cmd Command) {
	switch cmd.Type {
	case CmdPrevious:
		t.PreviousAndReset()
	case CmdNext:
		t.NextAndReset()
	case CmdGoTo:
		t.GoToAndReset(cmd.Index)
	case CmdKey:
		if !cmd.InViewport {
			return
		}
		switch cmd.Key {
		case KeyLeft:
			t.PreviousAndReset()
		case KeyRight:
			t.NextAndReset()
		}
	case CmdSwipe:
		t.RegisterGesture(cmd.StartX, cmd.EndX)
	case CmdHoverEnter:
		t.OnHoverEnter()
	case CmdHoverLeave:
		t.OnHoverLeave()
	case CmdVisibility:
		t.OnVisibilityChange(cmd.Hidden)
	}
}

// Dispose stops the command loop and disposes the target. Commands still
// queued are discarded. It is safe to call more than once.
func (d *Dispatcher) Dispose() {
	d.once.Do(func() {
		d.cancel()
		<-d.done
		d.target.Dispose()
	})
}
