// Package main contains the application wiring and the AppManager which
// connects the slider controller, its command loop, the sound player and
// the UI.
//
// Maintenance notes / tips:
//   - Concurrency model: UI callbacks never call the controller directly.
//     They enqueue control.Commands, and the control.Dispatcher goroutine
//     applies them one at a time. Auto-play ticks arrive on timer goroutines
//     and are serialized by the controller's own lock.
//   - The dispatcher is created in AttachSlider, after the main window has
//     built the slider widget. Commands enqueued before that are dropped
//     with a log line.
//   - cfg is loaded once in main and treated as immutable afterwards.
package main

import (
	"fmt"
	"io/fs"
	"log"
	"path"

	"Showcase/audio"
	"Showcase/contact"
	"Showcase/control"
	"Showcase/i18n"
	"Showcase/slider"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"gopkg.in/yaml.v3"
)

// assetsDir holds every file referenced by the deck.
const assetsDir = "assets"

// AppContent is the application's read-only file system.
type AppContent interface {
	fs.FS
	ReadFile(name string) ([]byte, error)
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	cfg        *slider.Config
	content    AppContent
	verbose    bool

	controller *slider.Controller
	dispatcher *control.Dispatcher
	player     *audio.Player
	submitter  *contact.Submitter
}

// NewAppManager creates a new application manager.
func NewAppManager(content AppContent, cfg *slider.Config, verbose bool) *AppManager {
	a := &AppManager{
		cfg:       cfg,
		content:   content,
		verbose:   verbose,
		submitter: contact.NewSubmitter(),
	}
	log.Printf("Loaded %d slides.", len(cfg.Slides))
	a.player = audio.NewPlayer(content, assetsDir, cfg.TransitionSound)
	return a
}

// Config returns the slider configuration.
func (a *AppManager) Config() *slider.Config {
	return a.cfg
}

// Submitter returns the contact form submitter.
func (a *AppManager) Submitter() *contact.Submitter {
	return a.submitter
}

// AttachSlider starts the controller on v and the command loop feeding it.
func (a *AppManager) AttachSlider(v slider.View) {
	a.controller = slider.New(len(a.cfg.Slides), v,
		slider.WithConfig(a.cfg),
		slider.WithOnChange(a.onSlideChange),
	)
	a.dispatcher = control.NewDispatcher(a.controller)
}

// EnqueueCommand posts a command to the slider command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	if a.dispatcher == nil {
		log.Printf("Slider not attached: dropping %s command", cmd.Type)
		return
	}
	if a.verbose {
		log.Printf("Input: %s", cmd.Type)
	}
	a.dispatcher.Enqueue(cmd)
}

func (a *AppManager) onSlideChange(index int) {
	if a.verbose {
		log.Printf("Showing slide %d/%d", index+1, a.controller.Count())
	}
	if a.cfg.TransitionSound != "" && a.player.Has(a.cfg.TransitionSound) {
		a.player.Play(a.cfg.TransitionSound)
	}
}

// CreateSlideImage loads a slide image from the app content. It returns
// nil when the image is missing so the slide keeps its colour.
func (a *AppManager) CreateSlideImage(filename string) fyne.CanvasObject {
	filepath := path.Join(assetsDir, filename)
	data, err := a.content.ReadFile(filepath)
	if err != nil {
		log.Printf("Failed to load image %s: %v", filename, err)
		return nil
	}

	res := fyne.NewStaticResource(filename, data)
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	return img
}

// aboutText returns the about text for lang from a YAML map of language to
// text, falling back to English.
func aboutText(data []byte, lang string) (string, error) {
	var texts map[string]string
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return "", fmt.Errorf("parsing about text: %w", err)
	}
	if text, ok := texts[lang]; ok {
		return text, nil
	}
	return texts["en"], nil
}

// ShowInfoDialog shows a dialog with the given title and the localized
// content of contentFile.
func (a *AppManager) ShowInfoDialog(title, contentFile string, minSize fyne.Size) {
	bytes, err := a.content.ReadFile(contentFile)
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}
	contentText, err := aboutText(bytes, i18n.GetLang())
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	text := widget.NewLabel(contentText)
	text.Wrapping = fyne.TextWrapWord

	scrollableContent := container.NewVScroll(text)
	scrollableContent.SetMinSize(minSize)

	dialog.ShowCustom(title, i18n.T("Close"), scrollableContent, a.mainWindow)
}

// Shutdown stops the command loop and cancels auto-play.
func (a *AppManager) Shutdown() {
	if a.dispatcher != nil {
		a.dispatcher.Dispose()
	}
}
