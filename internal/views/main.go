package views

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"practice-tracker/internal/models"
	"practice-tracker/internal/views/components"
)

// MainView owns the main window: the sortable record table, the action
// toolbar and the status bar. All repository knowledge stays behind the
// handler callbacks the controller registers.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	table     *components.RecordTable
	toolbar   *components.Toolbar
	statusBar *components.StatusBar

	addRecordHandler func()
	resetHandler     func()
	nameTapHandler   func(*models.Record)
	editHandler      func(*models.Record)
}

func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.table = components.NewRecordTable()
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	bottomArea := container.NewVBox(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,        // top
		bottomArea, // bottom
		nil,        // left
		nil,        // right
		mv.table.GetObject(),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetAddHandler(func() {
		if mv.addRecordHandler != nil {
			mv.addRecordHandler()
		}
	})

	mv.toolbar.SetResetHandler(func() {
		if mv.resetHandler != nil {
			mv.resetHandler()
		}
	})

	mv.table.SetNameTapHandler(func(record *models.Record) {
		if mv.nameTapHandler != nil {
			mv.nameTapHandler(record)
		}
	})

	mv.table.SetEditTapHandler(func(record *models.Record) {
		if mv.editHandler != nil {
			mv.editHandler(record)
		}
	})
}

// Event handler setters - called by controller

func (mv *MainView) SetAddRecordHandler(handler func()) {
	mv.addRecordHandler = handler
}

func (mv *MainView) SetResetHandler(handler func()) {
	mv.resetHandler = handler
}

func (mv *MainView) SetNameTapHandler(handler func(*models.Record)) {
	mv.nameTapHandler = handler
}

func (mv *MainView) SetEditHandler(handler func(*models.Record)) {
	mv.editHandler = handler
}

// UI update methods - called by controller

// ShowRecords replaces the displayed collection snapshot.
func (mv *MainView) ShowRecords(records []*models.Record, now time.Time) {
	fyne.Do(func() {
		mv.table.SetRecords(records, now)
		mv.statusBar.SetRecordCount(len(records))
	})
}

func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) SetDataFile(path string) {
	mv.statusBar.SetDataFile(path)
}

// Dialog helpers

func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// ShowStartupFailure reports an unrecoverable startup error and invokes
// onDismiss once the user has seen it.
func (mv *MainView) ShowStartupFailure(err error, onDismiss func()) {
	fyne.Do(func() {
		d := dialog.NewError(err, mv.window)
		d.SetOnClosed(onDismiss)
		d.Show()
	})
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}
