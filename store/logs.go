package store

import (
	"encoding/json"
	"log/slog"
	"maps"
	"slices"

	"github.com/rehabtrack/rehab/internal/models"
)

// LogStore maps "<date>__<exerciseID>" keys to log records.
type LogStore interface {
	// Get returns the record stored under key
	Get(key string) (models.LogRecord, bool)
	// Set stores rec under key, replacing any previous record
	Set(key string, rec models.LogRecord) error
	// Delete removes the record stored under key
	Delete(key string) error
	// All returns every record ordered by key
	All() []models.KeyedRecord
}

// Logs is a LogStore held in memory and written back to a Slot in full after
// every mutation.
type Logs struct {
	slot    Slot
	records map[string]models.LogRecord
}

// OpenLogs reads the serialized log map from slot. Missing or unreadable
// data is logged and replaced by an empty map; it never fails.
func OpenLogs(slot Slot) *Logs {
	l := &Logs{
		slot:    slot,
		records: make(map[string]models.LogRecord),
	}

	data, err := slot.Load()
	if err != nil {
		slog.Warn("unable to read exercise logs, starting empty", slog.Any("error", err))
		return l
	}

	if len(data) == 0 {
		return l
	}

	var records map[string]models.LogRecord

	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("exercise logs are corrupt, starting empty", slog.Any("error", err))
		return l
	}

	if records != nil {
		l.records = records
	}

	return l
}

func (l *Logs) Get(key string) (models.LogRecord, bool) {
	rec, ok := l.records[key]

	return rec, ok
}

func (l *Logs) Set(key string, rec models.LogRecord) error {
	prev, existed := l.records[key]

	l.records[key] = rec

	if err := l.flush(); err != nil {
		if existed {
			l.records[key] = prev
		} else {
			delete(l.records, key)
		}

		return err
	}

	return nil
}

func (l *Logs) Delete(key string) error {
	prev, existed := l.records[key]
	if !existed {
		return nil
	}

	delete(l.records, key)

	if err := l.flush(); err != nil {
		l.records[key] = prev
		return err
	}

	return nil
}

func (l *Logs) All() []models.KeyedRecord {
	keys := slices.Sorted(maps.Keys(l.records))

	out := make([]models.KeyedRecord, len(keys))
	for i, k := range keys {
		out[i] = models.KeyedRecord{Key: k, Record: l.records[k]}
	}

	return out
}

// Len returns the number of stored records.
func (l *Logs) Len() int {
	return len(l.records)
}

// flush serializes the whole map and writes it to the slot.
func (l *Logs) flush() error {
	b, err := json.Marshal(l.records)
	if err != nil {
		return errEncodeLogs.Wrap(err)
	}

	if err := l.slot.Save(b); err != nil {
		return errSaveLogs.Wrap(err)
	}

	return nil
}
