package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// NewErrorDialog builds the load-failure dialog. Choosing "Retry" calls onRetry, closing does nothing.
func NewErrorDialog(err error, onRetry func(), parent fyne.Window) dialog.Dialog {
	message := widget.NewLabel(err.Error())
	message.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustomConfirm("Error", "Retry", "Close", message, func(retry bool) {
		if retry && onRetry != nil {
			onRetry()
		}
	}, parent)
	d.Resize(fyne.NewSize(360, 160))
	return d
}
