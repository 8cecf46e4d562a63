package models

import (
	"strings"
	"sync"
	"time"

	"practice-tracker/internal/logger"
)

// Store persists the full record collection. The whole collection is
// rewritten on every mutation; there is no partial write.
type Store interface {
	Load() ([]*Record, error)
	Save(records []*Record) error
}

// Repository is the in-memory authoritative record collection for the
// running session. Every mutation writes through to the Store and then
// fires the change handler so the presentation layer can re-render.
// Display order is not the repository's concern; callers sort snapshots
// with SortRecords.
type Repository struct {
	mu       sync.Mutex
	store    Store
	log      logger.Logger
	records  []*Record
	now      func() time.Time
	onChange func()
}

func NewRepository(store Store, log logger.Logger) *Repository {
	return &Repository{
		store:   store,
		log:     log,
		records: make([]*Record, 0),
		now:     time.Now,
	}
}

// SetChangeHandler registers the callback fired after every persisted
// mutation.
func (r *Repository) SetChangeHandler(handler func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = handler
}

// SetClock overrides the time source. Tests use this to pin the calendar
// day.
func (r *Repository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// LoadInitial populates the repository from the store at startup.
func (r *Repository) LoadInitial() error {
	records, err := r.store.Load()
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.records = records
	count := len(records)
	r.mu.Unlock()

	r.log.Info("Repository", "records loaded", map[string]interface{}{
		"count": count,
	})
	return nil
}

// Records returns a snapshot of the collection. The slice is the caller's
// to reorder; the records themselves are shared.
func (r *Repository) Records() []*Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*Record, len(r.records))
	copy(snapshot, r.records)
	return snapshot
}

func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Add appends a new record with a zero practice count and no
// last-practiced date. The name must be non-empty after trimming.
func (r *Repository) Add(name string, isSong, wasPerformed bool) (*Record, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	record := &Record{
		Name:         trimmed,
		IsSong:       isSong,
		WasPerformed: wasPerformed,
	}

	r.mu.Lock()
	r.records = append(r.records, record)
	err := r.persistLocked()
	r.mu.Unlock()

	r.log.Info("Repository", "record added", map[string]interface{}{
		"name":    trimmed,
		"is_song": isSong,
	})
	r.notify()
	return record, err
}

// Remove deletes the record by identity. Removing a record that is not
// present is a no-op.
func (r *Repository) Remove(record *Record) error {
	r.mu.Lock()
	found := false
	for i, candidate := range r.records {
		if candidate == record {
			r.records = append(r.records[:i], r.records[i+1:]...)
			found = true
			break
		}
	}
	var err error
	if found {
		err = r.persistLocked()
	}
	r.mu.Unlock()

	if !found {
		return nil
	}

	r.log.Info("Repository", "record removed", map[string]interface{}{
		"name": record.Name,
	})
	r.notify()
	return err
}

// AddPracticeSession increments the practice count and stamps today as the
// last-practiced date.
func (r *Repository) AddPracticeSession(record *Record) error {
	r.mu.Lock()
	record.PracticeCount++
	today := DateOf(r.now())
	record.LastPracticed = &today
	err := r.persistLocked()
	r.mu.Unlock()

	r.log.Info("Repository", "practice session added", map[string]interface{}{
		"name":  record.Name,
		"count": record.PracticeCount,
	})
	r.notify()
	return err
}

// SetLastPracticed sets the date directly. Establishing a date on a record
// that was never practiced also bumps its count to one.
func (r *Repository) SetLastPracticed(record *Record, date Date) error {
	r.mu.Lock()
	record.LastPracticed = &date
	if record.PracticeCount == 0 {
		record.PracticeCount = 1
	}
	err := r.persistLocked()
	r.mu.Unlock()

	r.log.Info("Repository", "last practiced set", map[string]interface{}{
		"name": record.Name,
		"date": date.String(),
	})
	r.notify()
	return err
}

func (r *Repository) SetIsSong(record *Record, value bool) error {
	r.mu.Lock()
	record.IsSong = value
	err := r.persistLocked()
	r.mu.Unlock()

	r.notify()
	return err
}

func (r *Repository) SetWasPerformed(record *Record, value bool) error {
	r.mu.Lock()
	record.WasPerformed = value
	err := r.persistLocked()
	r.mu.Unlock()

	r.notify()
	return err
}

// ResetAll clears the whole collection. Confirmation gating is the
// caller's responsibility.
func (r *Repository) ResetAll() error {
	r.mu.Lock()
	r.records = make([]*Record, 0)
	err := r.persistLocked()
	r.mu.Unlock()

	r.log.Warning("Repository", "all records cleared", nil)
	r.notify()
	return err
}

// persistLocked writes the collection through to the store. The mutation
// stands even when the write fails; the error is surfaced to the user by
// the controller and the next successful mutation rewrites the file.
func (r *Repository) persistLocked() error {
	if err := r.store.Save(r.records); err != nil {
		r.log.Error("Repository", err, map[string]interface{}{
			"count": len(r.records),
		})
		return err
	}
	return nil
}

func (r *Repository) notify() {
	r.mu.Lock()
	handler := r.onChange
	r.mu.Unlock()

	if handler != nil {
		handler()
	}
}
