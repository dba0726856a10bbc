package ui

import (
	"Showcase/contact"
	"Showcase/control"
	"Showcase/i18n"
	"Showcase/slider"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is what the UI needs from the application.
type App interface {
	Config() *slider.Config
	EnqueueCommand(cmd control.Command)
	// AttachSlider starts the slider controller on top of v.
	AttachSlider(v slider.View)
	// CreateSlideImage returns nil when the image cannot be loaded.
	CreateSlideImage(name string) fyne.CanvasObject
	Submitter() *contact.Submitter
	ShowInfoDialog(title, contentFile string, minSize fyne.Size)
}

// KeyFromEvent maps arrow keys to slider directions.
func KeyFromEvent(ev *fyne.KeyEvent) control.Key {
	switch ev.Name {
	case fyne.KeyLeft:
		return control.KeyLeft
	case fyne.KeyRight:
		return control.KeyRight
	}
	return control.KeyOther
}

// BindKeyboard forwards arrow keys typed on the canvas to the slider while
// onScreen reports it visible.
func BindKeyboard(a App, c fyne.Canvas, onScreen func() bool) {
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		key := KeyFromEvent(ev)
		if key == control.KeyOther {
			return
		}
		a.EnqueueCommand(control.Command{Type: control.CmdKey, Key: key, InViewport: onScreen()})
	})
}

// BindLifecycle pauses the slider while the app is in the background.
func BindLifecycle(a App, lc fyne.Lifecycle) {
	lc.SetOnExitedForeground(func() {
		a.EnqueueCommand(control.Command{Type: control.CmdVisibility, Hidden: true})
	})
	lc.SetOnEnteredForeground(func() {
		a.EnqueueCommand(control.Command{Type: control.CmdVisibility, Hidden: false})
	})
}

// BuildHome lays out the home tab: the slider above a short intro.
func BuildHome(sw *SliderWidget) *container.Scroll {
	intro := widget.NewLabel(i18n.T("Swipe, click the dots or use the arrow keys to browse."))
	intro.Wrapping = fyne.TextWrapWord
	intro.Alignment = fyne.TextAlignCenter
	return container.NewVScroll(container.NewVBox(sw, intro))
}

func BuildFooter(a App) fyne.CanvasObject {
	aboutIcon := widget.NewIcon(theme.QuestionIcon())
	helpButton := NewTappableContainer(aboutIcon, func() {
		a.ShowInfoDialog(i18n.T("About"), "assets/about.yaml", fyne.NewSize(420, 260))
	}, nil)

	return container.New(
		layout.NewBorderLayout(nil, nil, helpButton, nil),
		helpButton,
	)
}

func CreateMainWindow(a App, fyneApp fyne.App) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "Showcase"
	}
	w := fyneApp.NewWindow(title)

	sw := NewSliderWidget(a)
	a.AttachSlider(sw)
	sw.LoadImages()

	homeTab := container.NewTabItemWithIcon(i18n.T("Home"), theme.HomeIcon(), BuildHome(sw))
	contactTab := container.NewTabItemWithIcon(i18n.T("Contact"), theme.MailComposeIcon(), NewContactForm(a, w))
	tabs := container.NewAppTabs(homeTab, contactTab)

	BindKeyboard(a, w.Canvas(), func() bool {
		return tabs.Selected() == homeTab && sw.OnScreen(w.Canvas())
	})
	BindLifecycle(a, fyneApp.Lifecycle())

	w.SetContent(container.NewBorder(nil, BuildFooter(a), nil, nil, tabs))

	cfg := a.Config()
	w.Resize(fyne.NewSize(cfg.Width+2*theme.Padding(), cfg.Height+320))
	return w
}

// TappableContainer makes any canvas object respond to taps.
type TappableContainer struct {
	widget.BaseWidget
	Content           fyne.CanvasObject
	OnTappedPrimary   func()
	OnTappedSecondary func(e *fyne.PointEvent)
}

func NewTappableContainer(c fyne.CanvasObject, onP func(), onS func(e *fyne.PointEvent)) *TappableContainer {
	t := &TappableContainer{
		Content:           c,
		OnTappedPrimary:   onP,
		OnTappedSecondary: onS,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewCenter(t.Content))
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTappedPrimary != nil {
		t.OnTappedPrimary()
	}
}

func (t *TappableContainer) TappedSecondary(e *fyne.PointEvent) {
	if t.OnTappedSecondary != nil {
		t.OnTappedSecondary(e)
	}
}
