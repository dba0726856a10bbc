package control

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"Showcase/clock"
	"Showcase/slider"
)

type recorder struct {
	calls []string
}

func (r *recorder) GoToAndReset(i int) { r.calls = append(r.calls, fmt.Sprintf("goto(%d)+reset", i)) }
func (r *recorder) NextAndReset() { r.calls = append(r.calls, "next+reset") }
func (r *recorder) PreviousAndReset() { r.calls = append(r.calls, "previous+reset") }
func (r *recorder) OnHoverEnter() { r.calls = append(r.calls, "hover-enter") }
func (r *recorder) OnHoverLeave() { r.calls = append(r.calls, "hover-leave") }
func (r *recorder) Dispose() { r.calls = append(r.calls, "dispose") }
func (r *recorder) OnVisibilityChange(hidden bool) {
	r.calls = append(r.calls, fmt.Sprintf("visibility(%v)", hidden))
}
func (r *recorder) RegisterGesture(startX, endX float32) bool {
	r.calls = append(r.calls, fmt.Sprintf("gesture(%v,%v)", startX, endX))
	return true
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want []string
	}{
		{"previous button", Command{Type: CmdPrevious}, []string{"previous+reset"}},
		{"next button", Command{Type: CmdNext}, []string{"next+reset"}},
		{"dot", Command{Type: CmdGoTo, Index: 2}, []string{"goto(2)+reset"}},
		{"left key on screen", Command{Type: CmdKey, Key: KeyLeft, InViewport: true}, []string{"previous+reset"}},
		{"right key on screen", Command{Type: CmdKey, Key: KeyRight, InViewport: true}, []string{"next+reset"}},
		{"right key off screen", Command{Type: CmdKey, Key: KeyRight}, nil},
		{"other key", Command{Type: CmdKey, Key: KeyOther, InViewport: true}, nil},
		{"swipe", Command{Type: CmdSwipe, StartX: 100, EndX: 40}, []string{"gesture(100,40)"}},
		{"hover enter", Command{Type: CmdHoverEnter}, []string{"hover-enter"}},
		{"hover leave", Command{Type: CmdHoverLeave}, []string{"hover-leave"}},
		{"hidden", Command{Type: CmdVisibility, Hidden: true}, []string{"visibility(true)"}},
		{"visible", Command{Type: CmdVisibility}, []string{"visibility(false)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			Apply(r, tt.cmd)
			if !reflect.DeepEqual(r.calls, tt.want) {
				t.Errorf("calls = %v, want %v", r.calls, tt.want)
			}
		})
	}
}

func TestInViewport(t *testing.T) {
	tests := []struct {
		top, bottom, height float32
		want                bool
	}{
		{0, 300, 600, true},
		{500, 800, 600, true},
		{-200, 100, 600, true},
		{600, 900, 600, false},
		{-300, 0, 600, false},
	}
	for _, tt := range tests {
		if got := InViewport(tt.top, tt.bottom, tt.height); got != tt.want {
			t.Errorf("InViewport(%v, %v, %v) = %v, want %v", tt.top, tt.bottom, tt.height, got, tt.want)
		}
	}
}

type nopView struct{}

func (nopView) BuildIndicators(int) {}
func (nopView) Render(int) {}

func TestDispatcherDrivesController(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := slider.New(4, nopView{}, slider.WithScheduler(clk))
	d := NewDispatcher(c)
	defer d.Dispose()

	steps := []struct {
		cmd  Command
		want int
	}{
		{Command{Type: CmdNext}, 1},
		{Command{Type: CmdNext}, 2},
		{Command{Type: CmdPrevious}, 1},
		{Command{Type: CmdGoTo, Index: 10}, 0},
		{Command{Type: CmdSwipe, StartX: 100, EndX: 40}, 1},
		{Command{Type: CmdSwipe, StartX: 100, EndX: 60}, 1},
		{Command{Type: CmdKey, Key: KeyLeft, InViewport: true}, 0},
	}
	for i, s := range steps {
		if !d.Do(s.cmd, time.Second) {
			t.Fatalf("step %d: command %s not applied in time", i, s.cmd.Type)
		}
		if c.Index() != s.want {
			t.Fatalf("step %d: index = %d, want %d", i, c.Index(), s.want)
		}
	}
}

func TestDispatcherHoverDoesNotReset(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := slider.New(4, nopView{}, slider.WithScheduler(clk))
	d := NewDispatcher(c)
	defer d.Dispose()

	clk.Advance(2 * time.Second)
	d.Do(Command{Type: CmdHoverEnter}, time.Second)
	if c.AutoPlaying() {
		t.Fatal("hover enter should pause auto-play")
	}
	clk.Advance(time.Minute)
	d.Do(Command{Type: CmdHoverLeave}, time.Second)
	clk.Advance(3 * time.Second)
	if c.Index() != 1 {
		t.Errorf("index = %d, want 1 after the remaining 3s", c.Index())
	}
}

func TestDispatcherDispose(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := slider.New(3, nopView{}, slider.WithScheduler(clk))
	d := NewDispatcher(c)

	d.Dispose()
	d.Dispose()
	if clk.Pending() != 0 {
		t.Errorf("pending timers after Dispose = %d, want 0", clk.Pending())
	}
	if d.Do(Command{Type: CmdNext}, 50*time.Millisecond) {
		t.Error("command applied after Dispose")
	}
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
}

func TestCommandTypeString(t *testing.T) {
	if CmdSwipe.String() != "swipe" || CommandType(99).String() != "unknown" {
		t.Errorf("unexpected names %q %q", CmdSwipe.String(), CommandType(99).String())
	}
}
