package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// SwipeArea wraps content and reports horizontal drags and pointer
// presence. A drag is reported once, on release, with the X coordinate
// where it started and where it ended.
type SwipeArea struct {
	widget.BaseWidget
	Content fyne.CanvasObject

	OnSwipe      func(startX, endX float32)
	OnHoverEnter func()
	OnHoverLeave func()

	dragging     bool
	startX, endX float32
}

var (
	_ fyne.Draggable    = (*SwipeArea)(nil)
	_ desktop.Hoverable = (*SwipeArea)(nil)
)

func NewSwipeArea(c fyne.CanvasObject) *SwipeArea {
	s := &SwipeArea{Content: c}
	s.ExtendBaseWidget(s)
	return s
}

func (s *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.Content)
}

// Dragged records the gesture. The first event of a drag carries the
// starting point as its position minus the distance already travelled.
func (s *SwipeArea) Dragged(e *fyne.DragEvent) {
	if !s.dragging {
		s.dragging = true
		s.startX = e.Position.X - e.Dragged.DX
	}
	s.endX = e.Position.X
}

func (s *SwipeArea) DragEnd() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.OnSwipe != nil {
		s.OnSwipe(s.startX, s.endX)
	}
}

func (s *SwipeArea) MouseIn(*desktop.MouseEvent) {
	if s.OnHoverEnter != nil {
		s.OnHoverEnter()
	}
}

func (s *SwipeArea) MouseMoved(*desktop.MouseEvent) {}

func (s *SwipeArea) MouseOut() {
	if s.OnHoverLeave != nil {
		s.OnHoverLeave()
	}
}

// HoverButton is a widget.Button that also reports pointer presence, so
// the controls on top of a SwipeArea keep the hover state of the area.
type HoverButton struct {
	widget.Button

	OnHoverEnter func()
	OnHoverLeave func()
}

var _ desktop.Hoverable = (*HoverButton)(nil)

func NewHoverButton(label string, icon fyne.Resource, tapped func()) *HoverButton {
	b := &HoverButton{}
	b.Text = label
	b.Icon = icon
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

func (b *HoverButton) MouseIn(e *desktop.MouseEvent) {
	b.Button.MouseIn(e)
	if b.OnHoverEnter != nil {
		b.OnHoverEnter()
	}
}

func (b *HoverButton) MouseOut() {
	b.Button.MouseOut()
	if b.OnHoverLeave != nil {
		b.OnHoverLeave()
	}
}
