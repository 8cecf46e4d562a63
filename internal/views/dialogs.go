package views

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"practice-tracker/internal/models"
)

// ShowAddRecordDialog captures a new record. The name entry rejects
// whitespace-only input through its validator, so the dialog cannot be
// confirmed until the name is valid; cancelling leaves state untouched.
func (mv *MainView) ShowAddRecordDialog(onSubmit func(name string, isSong, wasPerformed bool)) {
	fyne.Do(func() {
		nameEntry := widget.NewEntry()
		nameEntry.SetPlaceHolder("Enter name")
		nameEntry.Validator = func(s string) error {
			if strings.TrimSpace(s) == "" {
				return &models.ValidationError{Field: "name", Reason: "must not be empty"}
			}
			return nil
		}

		isSongCheck := widget.NewCheck("", nil)
		isSongCheck.SetChecked(true)
		wasPerformedCheck := widget.NewCheck("", nil)

		items := []*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Is Song", isSongCheck),
			widget.NewFormItem("Was Performed", wasPerformedCheck),
		}

		dialog.ShowForm("Add New Record", "Add", "Cancel", items, func(confirmed bool) {
			if !confirmed {
				return
			}
			onSubmit(nameEntry.Text, isSongCheck.Checked, wasPerformedCheck.Checked)
		}, mv.window)
	})
}

// EditActions are the record operations the edit dialog can trigger. The
// controller supplies them; the dialog owns the confirmation prompts.
type EditActions struct {
	SetIsSong       func(bool)
	SetWasPerformed func(bool)
	SetDate         func(models.Date)
	AddSession      func()
	Delete          func()
}

// ShowEditDialog opens the per-record modal. Flag toggles apply
// immediately; date edits, practice sessions and deletion each go through
// their own prompt and close the dialog once applied.
func (mv *MainView) ShowEditDialog(record *models.Record, now time.Time, actions EditActions) {
	fyne.Do(func() {
		// Seed the checks before attaching the handlers; SetChecked fires
		// OnChanged, and opening the dialog must leave the record untouched.
		isSongCheck := widget.NewCheck("Is Song", nil)
		isSongCheck.SetChecked(record.IsSong)
		isSongCheck.OnChanged = actions.SetIsSong
		wasPerformedCheck := widget.NewCheck("Was Performed", nil)
		wasPerformedCheck.SetChecked(record.WasPerformed)
		wasPerformedCheck.OnChanged = actions.SetWasPerformed

		var editDialog dialog.Dialog

		editDateButton := widget.NewButton("Edit Last Practiced", func() {
			mv.showDateDialog(record.LastPracticed, now, func(date models.Date) {
				actions.SetDate(date)
				editDialog.Hide()
			})
		})

		addSessionButton := widget.NewButton("Add Practice Session", func() {
			mv.ShowConfirm("Confirm Add Session",
				"Are you sure you want to add a practice session?",
				func(confirmed bool) {
					if !confirmed {
						return
					}
					actions.AddSession()
					editDialog.Hide()
				})
		})

		deleteButton := widget.NewButton("Delete", func() {
			mv.ShowConfirm("Confirm Delete",
				"Are you sure you want to delete this record?",
				func(confirmed bool) {
					if !confirmed {
						return
					}
					actions.Delete()
					editDialog.Hide()
				})
		})
		deleteButton.Importance = widget.DangerImportance

		content := container.NewVBox(
			editDateButton,
			addSessionButton,
			isSongCheck,
			wasPerformedCheck,
			widget.NewSeparator(),
			deleteButton,
		)

		editDialog = dialog.NewCustom(fmt.Sprintf("Edit: %s", record.Name), "Close", content, mv.window)
		editDialog.Resize(fyne.NewSize(400, 400))
		editDialog.Show()
	})
}

// showDateDialog prompts for a calendar date, pre-filled with the current
// value or today.
func (mv *MainView) showDateDialog(current *models.Date, now time.Time, onPick func(models.Date)) {
	initial := models.DateOf(now)
	if current != nil {
		initial = *current
	}

	dateEntry := widget.NewEntry()
	dateEntry.SetText(initial.String())
	dateEntry.Validator = func(s string) error {
		_, err := models.ParseDate(s)
		return err
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Date (YYYY-MM-DD)", dateEntry),
	}

	dialog.ShowForm("Select Date", "OK", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		date, err := models.ParseDate(dateEntry.Text)
		if err != nil {
			mv.ShowError(err)
			return
		}
		onPick(date)
	}, mv.window)
}
