package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the collection-level actions below the table.
type Toolbar struct {
	container *fyne.Container

	addButton   *widget.Button
	resetButton *widget.Button

	addHandler   func()
	resetHandler func()
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.createComponents()
	t.buildLayout()
	return t
}

func (t *Toolbar) createComponents() {
	t.addButton = widget.NewButton("Add Record", func() {
		if t.addHandler != nil {
			t.addHandler()
		}
	})
	t.addButton.Importance = widget.HighImportance

	t.resetButton = widget.NewButton("Reset Table", func() {
		if t.resetHandler != nil {
			t.resetHandler()
		}
	})
	t.resetButton.Importance = widget.DangerImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewGridWithColumns(2, t.addButton, t.resetButton)
}

func (t *Toolbar) SetAddHandler(handler func()) {
	t.addHandler = handler
}

func (t *Toolbar) SetResetHandler(handler func()) {
	t.resetHandler = handler
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
