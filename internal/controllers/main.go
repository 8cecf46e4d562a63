package controllers

import (
	"fmt"
	"time"

	"practice-tracker/internal/logger"
	"practice-tracker/internal/models"
	"practice-tracker/internal/views"
)

// MainController binds view events to repository operations. Destructive
// flows are confirmation-gated here: one prompt for deleting a record or
// logging a session, two sequential prompts for a full reset. The
// repository itself never asks.
type MainController struct {
	repo *models.Repository
	view *views.MainView
	log  logger.Logger
	now  func() time.Time
}

func NewMainController(repo *models.Repository, log logger.Logger) *MainController {
	return &MainController{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// SetMainView associates the view and wires its event handlers.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.view = view

	view.SetAddRecordHandler(mc.handleAddRecord)
	view.SetResetHandler(mc.handleReset)
	view.SetNameTapHandler(mc.handleNameTapped)
	view.SetEditHandler(mc.handleEdit)

	mc.repo.SetChangeHandler(mc.Refresh)
}

// SetClock overrides the time source used for derived display values.
func (mc *MainController) SetClock(now func() time.Time) {
	mc.now = now
	mc.repo.SetClock(now)
}

// Start loads the persisted collection and renders it. A corrupt data
// file fails startup; the caller decides how to exit.
func (mc *MainController) Start() error {
	if err := mc.repo.LoadInitial(); err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	mc.Refresh()
	return nil
}

// Refresh re-renders the full collection. Runs after every mutation.
func (mc *MainController) Refresh() {
	mc.view.ShowRecords(mc.repo.Records(), mc.now())
}

func (mc *MainController) handleAddRecord() {
	mc.view.ShowAddRecordDialog(func(name string, isSong, wasPerformed bool) {
		if _, err := mc.repo.Add(name, isSong, wasPerformed); err != nil {
			mc.reportError(err)
			return
		}
		mc.view.SetStatus(fmt.Sprintf("Added %q", name))
	})
}

func (mc *MainController) handleReset() {
	mc.view.ShowConfirm("Confirm Reset",
		"Are you sure you want to reset all data?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			mc.view.ShowConfirm("Final Confirmation",
				"Are you absolutely sure?",
				func(confirmed bool) {
					if !confirmed {
						return
					}
					if err := mc.repo.ResetAll(); err != nil {
						mc.reportError(err)
						return
					}
					mc.view.SetStatus("All records cleared")
				})
		})
}

// handleNameTapped is the shortcut for logging a practice session from the
// main table.
func (mc *MainController) handleNameTapped(record *models.Record) {
	mc.view.ShowConfirm("Add Practice Session",
		fmt.Sprintf("Add a practice session for %s?", record.Name),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := mc.repo.AddPracticeSession(record); err != nil {
				mc.reportError(err)
				return
			}
			mc.view.SetStatus(fmt.Sprintf("Practiced %q", record.Name))
		})
}

func (mc *MainController) handleEdit(record *models.Record) {
	mc.view.ShowEditDialog(record, mc.now(), views.EditActions{
		SetIsSong: func(value bool) {
			mc.checkSave(mc.repo.SetIsSong(record, value))
		},
		SetWasPerformed: func(value bool) {
			mc.checkSave(mc.repo.SetWasPerformed(record, value))
		},
		SetDate: func(date models.Date) {
			mc.checkSave(mc.repo.SetLastPracticed(record, date))
		},
		AddSession: func() {
			mc.checkSave(mc.repo.AddPracticeSession(record))
		},
		Delete: func() {
			mc.checkSave(mc.repo.Remove(record))
		},
	})
}

func (mc *MainController) checkSave(err error) {
	if err != nil {
		mc.reportError(err)
	}
}

// reportError surfaces a failed save or validation to the user instead of
// silently losing the write.
func (mc *MainController) reportError(err error) {
	mc.log.Error("MainController", err, nil)
	mc.view.ShowError(err)
}

// Shutdown runs during the exit sequence. Persistence is write-through,
// so there is nothing left to flush; this is the audit trail.
func (mc *MainController) Shutdown() {
	mc.log.Info("MainController", "controller stopped", map[string]interface{}{
		"records": mc.repo.Len(),
	})
}
