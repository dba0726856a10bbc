package ui

import (
	"image/color"
	"sync"

	"Showcase/control"
	"Showcase/i18n"
	"Showcase/slider"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SliderWidget is the fyne host of a slider.Controller: a strip of slides
// shifted by one full width per step, a row of dots and previous/next
// buttons. It implements slider.View and turns user input into
// control.Commands.
type SliderWidget struct {
	widget.BaseWidget

	a   App
	cfg *slider.Config

	mu       sync.Mutex
	index    int
	dotRects []*canvas.Rectangle

	slides []*fyne.Container
	images []*fyne.Container
	strip  *fyne.Container
	swipe  *SwipeArea
	dots   *fyne.Container
	prev   *HoverButton
	next   *HoverButton
}

var _ slider.View = (*SliderWidget)(nil)

// NewSliderWidget builds the slides described by the app config. Images are
// not loaded until LoadImages is called.
func NewSliderWidget(a App) *SliderWidget {
	w := &SliderWidget{a: a, cfg: a.Config()}

	for _, s := range w.cfg.Slides {
		bg := canvas.NewRectangle(slideColor(s.Color))
		imageHolder := container.NewStack()

		title := canvas.NewText(s.Title, color.White)
		title.TextSize = TitleSize
		title.TextStyle.Bold = true
		caption := canvas.NewText(s.Caption, color.White)
		caption.TextSize = CaptionSize

		text := container.New(layout.NewVBoxLayout(),
			layout.NewSpacer(),
			container.New(layout.NewCenterLayout(), title),
			container.New(layout.NewCenterLayout(), caption),
			layout.NewSpacer(),
		)
		slide := container.NewStack(bg, imageHolder, text)

		w.slides = append(w.slides, slide)
		w.images = append(w.images, imageHolder)
	}

	objects := make([]fyne.CanvasObject, len(w.slides))
	for i, s := range w.slides {
		objects[i] = s
	}
	w.strip = container.New(&stripLayout{w: w}, objects...)

	hoverEnter := func() {
		a.EnqueueCommand(control.Command{Type: control.CmdHoverEnter})
	}
	hoverLeave := func() {
		a.EnqueueCommand(control.Command{Type: control.CmdHoverLeave})
	}

	w.prev = NewHoverButton(i18n.T("Previous slide"), theme.NavigateBackIcon(), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdPrevious})
	})
	w.next = NewHoverButton(i18n.T("Next slide"), theme.NavigateNextIcon(), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdNext})
	})
	w.next.IconPlacement = widget.ButtonIconTrailingText
	for _, b := range []*HoverButton{w.prev, w.next} {
		b.OnHoverEnter = hoverEnter
		b.OnHoverLeave = hoverLeave
	}

	w.dots = container.NewHBox()
	controls := container.NewHBox(layout.NewSpacer(), w.prev, container.NewCenter(w.dots), w.next, layout.NewSpacer())

	// The swipe area covers the controls too: moving from the slides to a
	// dot or a button must not count as leaving the slider.
	w.swipe = NewSwipeArea(container.NewVBox(w.strip, controls))
	w.swipe.OnSwipe = func(startX, endX float32) {
		a.EnqueueCommand(control.Command{Type: control.CmdSwipe, StartX: startX, EndX: endX})
	}
	w.swipe.OnHoverEnter = hoverEnter
	w.swipe.OnHoverLeave = hoverLeave

	w.ExtendBaseWidget(w)
	return w
}

func (w *SliderWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.swipe)
}

// BuildIndicators creates one tappable dot per slide. Tapping dot i jumps
// to slide i and restarts the auto-play countdown.
func (w *SliderWidget) BuildIndicators(n int) {
	rects := make([]*canvas.Rectangle, n)
	objects := make([]fyne.CanvasObject, n)
	for i := 0; i < n; i++ {
		r := canvas.NewRectangle(dotColor(i == 0))
		r.SetMinSize(fyne.NewSize(DotSize, DotSize))
		r.CornerRadius = CornerRadius
		rects[i] = r
		objects[i] = NewTappableContainer(r, func() {
			w.a.EnqueueCommand(control.Command{Type: control.CmdGoTo, Index: i})
		}, nil)
	}

	w.mu.Lock()
	w.dotRects = rects
	w.mu.Unlock()

	fyne.Do(func() {
		w.dots.Objects = objects
		w.dots.Refresh()
	})
}

// Render shows slide index and highlights its dot.
func (w *SliderWidget) Render(index int) {
	w.mu.Lock()
	w.index = index
	rects := w.dotRects
	w.mu.Unlock()

	fyne.Do(func() {
		for i, r := range rects {
			r.FillColor = dotColor(i == index)
			r.Refresh()
		}
		for i, s := range w.slides {
			if i == index {
				s.Show()
			} else {
				s.Hide()
			}
		}
		w.strip.Refresh()
	})
}

// Index returns the slide the widget currently shows.
func (w *SliderWidget) Index() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.index
}

// Dots returns the tappable indicators.
func (w *SliderWidget) Dots() []fyne.CanvasObject {
	return w.dots.Objects
}

// LoadImages fills in the slide images after the slider is running, so a
// missing or slow image never delays the first render.
func (w *SliderWidget) LoadImages() {
	for i, s := range w.cfg.Slides {
		if s.Image == "" {
			continue
		}
		img := w.a.CreateSlideImage(s.Image)
		if img == nil {
			continue
		}
		holder := w.images[i]
		fyne.Do(func() {
			holder.Objects = []fyne.CanvasObject{img}
			holder.Refresh()
		})
	}
}

// OnScreen reports whether any part of the slider is inside the canvas
// viewport.
func (w *SliderWidget) OnScreen(c fyne.Canvas) bool {
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(w)
	return control.InViewport(pos.Y, pos.Y+w.Size().Height, c.Size().Height)
}

// stripLayout places slide i one full width to the right of slide i-1 and
// shifts the whole strip by slider.OffsetPercent of the current index.
type stripLayout struct {
	w *SliderWidget
}

func (l *stripLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	offset := size.Width * slider.OffsetPercent(l.w.Index()) / 100
	for i, o := range objects {
		o.Resize(size)
		o.Move(fyne.NewPos(float32(i)*size.Width+offset, 0))
	}
}

func (l *stripLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(l.w.cfg.Width, l.w.cfg.Height)
}

func dotColor(active bool) color.Color {
	if active {
		return BrandColor
	}
	return DotColor
}

func slideColor(hex string) color.Color {
	if hex == "" {
		return SlideColor
	}
	c, err := slider.ParseHexColor(hex)
	if err != nil {
		return SlideColor
	}
	return c
}
