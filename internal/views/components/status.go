package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays session information along the bottom of the window.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
	fileLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countLabel = widget.NewLabel("0 records")
	sb.fileLabel = widget.NewLabel("")
	sb.fileLabel.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countLabel,
		widget.NewSeparator(),
		sb.fileLabel,
	)
}

func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

func (sb *StatusBar) SetRecordCount(count int) {
	fyne.Do(func() {
		noun := "records"
		if count == 1 {
			noun = "record"
		}
		sb.countLabel.SetText(fmt.Sprintf("%d %s", count, noun))
	})
}

func (sb *StatusBar) SetDataFile(path string) {
	fyne.Do(func() {
		sb.fileLabel.SetText(path)
	})
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
