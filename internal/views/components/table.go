package components

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"practice-tracker/internal/models"
)

const (
	columnName = iota
	columnPracticeCount
	columnLastPracticed
	columnWasPerformed
	columnIsSong
	columnEdit
	columnCount
)

type columnSpec struct {
	title    string
	width    float32
	sortKey  models.SortColumn
	sortable bool
}

var columns = [columnCount]columnSpec{
	{title: "Name", width: 300, sortKey: models.SortByName, sortable: true},
	{title: "Practice Count", width: 140, sortKey: models.SortByPracticeCount, sortable: true},
	{title: "Last Practiced", width: 160, sortKey: models.SortByLastPracticed, sortable: true},
	{title: "Was Performed", width: 140, sortKey: models.SortByWasPerformed, sortable: true},
	{title: "Is Song", width: 110, sortKey: models.SortByIsSong, sortable: true},
	{title: "Edit", width: 80, sortable: false},
}

// row is one rendered table line with its derived display values.
type row struct {
	record        *models.Record
	lastPracticed string
	group         models.Group
}

// RecordTable renders the record collection as a sortable table. Tapping a
// header toggles the sort column and direction; tapping the Name cell or
// the Edit cell fires the registered handlers. Sort order is owned here,
// never by the repository.
type RecordTable struct {
	table *widget.Table

	records []*models.Record
	now     time.Time
	rows    []row

	sortColumn    models.SortColumn
	sortDirection models.SortDirection

	nameTapped func(*models.Record)
	editTapped func(*models.Record)
}

func NewRecordTable() *RecordTable {
	rt := &RecordTable{
		sortColumn:    models.SortByLastPracticed,
		sortDirection: models.Ascending,
		now:           time.Now(),
	}

	rt.table = widget.NewTable(
		func() (int, int) {
			return len(rt.rows), columnCount
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Alignment = fyne.TextAlignCenter
			return label
		},
		rt.updateCell,
	)

	rt.table.ShowHeaderRow = true
	rt.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("", nil)
	}
	rt.table.UpdateHeader = rt.updateHeader
	rt.table.OnSelected = rt.cellSelected

	for i, spec := range columns {
		rt.table.SetColumnWidth(i, spec.width)
	}

	return rt
}

func (rt *RecordTable) SetNameTapHandler(handler func(*models.Record)) {
	rt.nameTapped = handler
}

func (rt *RecordTable) SetEditTapHandler(handler func(*models.Record)) {
	rt.editTapped = handler
}

// SetRecords replaces the displayed collection. The snapshot is reordered
// in place according to the current sort state.
func (rt *RecordTable) SetRecords(records []*models.Record, now time.Time) {
	rt.records = records
	rt.now = now
	rt.rebuildRows()
	rt.table.Refresh()
}

func (rt *RecordTable) rebuildRows() {
	models.SortRecords(rt.records, rt.sortColumn, rt.sortDirection, rt.now)

	rows := make([]row, len(rt.records))
	for i, record := range rt.records {
		rows[i] = row{
			record:        record,
			lastPracticed: models.LastPracticedLabel(record.LastPracticed, rt.now),
			group:         record.Group(),
		}
	}
	rt.rows = rows
}

func (rt *RecordTable) updateCell(id widget.TableCellID, object fyne.CanvasObject) {
	label := object.(*widget.Label)
	if id.Row < 0 || id.Row >= len(rt.rows) {
		label.SetText("")
		return
	}
	r := rt.rows[id.Row]

	label.Alignment = fyne.TextAlignCenter
	label.Importance = widget.MediumImportance
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case columnName:
		label.Alignment = fyne.TextAlignLeading
		label.Importance = groupImportance(r.group)
		label.SetText(r.record.Name)
	case columnPracticeCount:
		label.SetText(strconv.Itoa(r.record.PracticeCount))
	case columnLastPracticed:
		label.SetText(r.lastPracticed)
	case columnWasPerformed:
		label.SetText(yesNo(r.record.WasPerformed))
	case columnIsSong:
		label.SetText(yesNo(r.record.IsSong))
	case columnEdit:
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SetText("Edit")
	}
	label.Refresh()
}

// groupImportance maps the display grouping hint onto label styling:
// performed songs stand out, non-song material is dimmed.
func groupImportance(group models.Group) widget.Importance {
	switch group {
	case models.GroupPerformedSong:
		return widget.SuccessImportance
	case models.GroupNonSong:
		return widget.LowImportance
	default:
		return widget.MediumImportance
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func (rt *RecordTable) updateHeader(id widget.TableCellID, object fyne.CanvasObject) {
	button := object.(*widget.Button)
	if id.Col < 0 || id.Col >= columnCount {
		return
	}
	spec := columns[id.Col]

	title := spec.title
	if spec.sortable && rt.sortColumn == spec.sortKey {
		if rt.sortDirection == models.Ascending {
			title += " ↑"
		} else {
			title += " ↓"
		}
	}
	button.SetText(title)

	if !spec.sortable {
		button.OnTapped = nil
		button.Disable()
		return
	}
	button.Enable()
	col := id.Col
	button.OnTapped = func() {
		rt.headerTapped(col)
	}
}

func (rt *RecordTable) headerTapped(col int) {
	spec := columns[col]
	if rt.sortColumn == spec.sortKey {
		if rt.sortDirection == models.Ascending {
			rt.sortDirection = models.Descending
		} else {
			rt.sortDirection = models.Ascending
		}
	} else {
		rt.sortColumn = spec.sortKey
		rt.sortDirection = models.Ascending
	}
	rt.rebuildRows()
	rt.table.Refresh()
}

func (rt *RecordTable) cellSelected(id widget.TableCellID) {
	defer rt.table.UnselectAll()

	if id.Row < 0 || id.Row >= len(rt.rows) {
		return
	}
	record := rt.rows[id.Row].record

	switch id.Col {
	case columnName:
		if rt.nameTapped != nil {
			rt.nameTapped(record)
		}
	case columnEdit:
		if rt.editTapped != nil {
			rt.editTapped(record)
		}
	}
}

// GetObject returns the table widget for layout composition.
func (rt *RecordTable) GetObject() fyne.CanvasObject {
	return rt.table
}
