package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-compressor/internal/model"
)

// DismissText is the label of the button closing a message dialog
const DismissText = "OK"

// showMessage presents msg to the user. Zero messages are ignored.
func (ui *RootUI) showMessage(msg model.Message) {
	if msg.IsZero() {
		return
	}
	log.Printf("Showing %s message %q: %s", msg.Severity, msg.Title, msg.Text)
	ui.notify(msg)
}

// presentDialog shows msg as a modal dialog on the main window
func (ui *RootUI) presentDialog(msg model.Message) {
	newMessageDialog(msg, ui.window).Show()
}

// newMessageDialog builds the dialog for msg; the icon follows msg.Severity
func newMessageDialog(msg model.Message, parent fyne.Window) dialog.Dialog {
	switch msg.Severity {
	case model.SeverityError:
		text := widget.NewLabel(msg.Text)
		text.Wrapping = fyne.TextWrapWord
		content := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, text)
		return dialog.NewCustom(msg.Title, DismissText, content, parent)
	default:
		return dialog.NewInformation(msg.Title, msg.Text, parent)
	}
}
