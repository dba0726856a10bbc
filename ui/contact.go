package ui

import (
	"context"
	"errors"
	"time"

	"Showcase/contact"
	"Showcase/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ContactForm is the contact tab: five validated entries, a character
// counter for the message, and a submit button that is disabled while the
// simulated submission runs.
type ContactForm struct {
	Entries map[contact.Field]*widget.Entry
	Counter *widget.Label
	Submit  *widget.Button
	Success *widget.Label

	a App
	w fyne.Window
}

var fieldLabels = map[contact.Field]string{
	contact.FieldName:    "Name",
	contact.FieldEmail:   "Email",
	contact.FieldPhone:   "Phone",
	contact.FieldSubject: "Subject",
	contact.FieldMessage: "Message",
}

// NewContactForm builds the contact tab content.
func NewContactForm(a App, w fyne.Window) fyne.CanvasObject {
	return newContactForm(a, w).content()
}

func newContactForm(a App, w fyne.Window) *ContactForm {
	f := &ContactForm{
		Entries: make(map[contact.Field]*widget.Entry),
		Counter: widget.NewLabel(""),
		Success: widget.NewLabel(i18n.T("Thank you! Your message has been sent.")),
		a:       a,
		w:       w,
	}

	for _, field := range contact.Fields {
		var e *widget.Entry
		if field == contact.FieldMessage {
			e = widget.NewMultiLineEntry()
			e.Wrapping = fyne.TextWrapWord
			e.SetMinRowsVisible(5)
		} else {
			e = widget.NewEntry()
		}
		e.Validator = contact.Validator(field)
		f.Entries[field] = e
	}

	message := f.Entries[contact.FieldMessage]
	message.OnChanged = func(text string) {
		if limited := contact.Limit(text); limited != text {
			message.SetText(limited)
			f.updateCounter(limited)
			return
		}
		f.updateCounter(text)
	}
	f.updateCounter("")

	f.Success.Importance = widget.SuccessImportance
	f.Success.Hide()

	f.Submit = widget.NewButton(i18n.T("Send Message"), f.submit)
	f.Submit.Importance = widget.HighImportance
	return f
}

func (f *ContactForm) content() fyne.CanvasObject {
	items := make([]*widget.FormItem, 0, len(contact.Fields))
	for _, field := range contact.Fields {
		items = append(items, widget.NewFormItem(i18n.T(fieldLabels[field]), f.Entries[field]))
	}
	form := widget.NewForm(items...)
	return container.NewVScroll(container.NewVBox(form, f.Counter, f.Submit, f.Success))
}

func (f *ContactForm) updateCounter(text string) {
	label, warn := contact.Counter(text)
	f.Counter.Importance = widget.LowImportance
	if warn {
		f.Counter.Importance = widget.DangerImportance
	}
	f.Counter.SetText(label)
}

func (f *ContactForm) message() contact.Message {
	return contact.Message{
		Name:    f.Entries[contact.FieldName].Text,
		Email:   f.Entries[contact.FieldEmail].Text,
		Phone:   f.Entries[contact.FieldPhone].Text,
		Subject: f.Entries[contact.FieldSubject].Text,
		Message: f.Entries[contact.FieldMessage].Text,
	}
}

// submit validates every entry, focusing the first invalid one, and
// otherwise sends the message in the background.
func (f *ContactForm) submit() {
	msg := f.message()
	var fe contact.FieldErrors
	if err := msg.Validate(); errors.As(err, &fe) {
		for _, field := range contact.Fields {
			f.Entries[field].Validate()
		}
		if first, ok := fe.First(); ok && f.w != nil {
			f.w.Canvas().Focus(f.Entries[first])
		}
		return
	}

	f.Submit.Disable()
	f.Submit.SetText(i18n.T("Sending..."))

	go func() {
		err := f.a.Submitter().Submit(context.Background(), msg)
		fyne.Do(func() { f.finish(err) })
	}()
}

func (f *ContactForm) finish(err error) {
	f.Submit.Enable()
	f.Submit.SetText(i18n.T("Send Message"))

	if err != nil {
		if f.w != nil {
			dialog.ShowError(err, f.w)
		}
		return
	}

	for _, e := range f.Entries {
		e.SetText("")
	}
	f.Success.Show()
	time.AfterFunc(contact.SuccessDisplay, func() {
		fyne.Do(f.Success.Hide)
	})
}
