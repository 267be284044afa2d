// Package exercisedb loads the free-exercise-db reference dataset and
// resolves exercise names to its entries
package exercisedb

import (
	"encoding/json"
	"strings"
)

const (
	// DefaultURL is the published JSON dump of the dataset.
	DefaultURL = "https://raw.githubusercontent.com/yuhonas/free-exercise-db/refs/heads/main/dist/exercises.json"
	// DefaultImageBase is prepended to the relative image paths.
	DefaultImageBase = "https://raw.githubusercontent.com/yuhonas/free-exercise-db/main/exercises/"
)

// Entry is one exercise of the reference dataset. Images holds absolute URLs;
// the first two are the start and end positions.
type Entry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Images       []string `json:"images"`
	Instructions []string `json:"instructions"`
}

// HasPoses reports whether both start and end images are available.
func (e Entry) HasPoses() bool {
	return len(e.Images) >= 2
}

// Poses returns the start and end image URLs.
func (e Entry) Poses() (start, end string) {
	if !e.HasPoses() {
		return "", ""
	}

	return e.Images[0], e.Images[1]
}

// rawEntry mirrors an element of the published JSON array.
type rawEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Images       []string `json:"images"`
	Instructions []string `json:"instructions"`
}

// Table indexes entries by lowercase name and remembers the order in which
// names were first seen.
type Table struct {
	entries map[string]Entry
	keys    []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Add stores e under its lowercase name. A repeated name replaces the stored
// entry but keeps its original position.
func (t *Table) Add(e Entry) {
	key := strings.ToLower(e.Name)
	e.Name = key

	if _, ok := t.entries[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.entries[key] = e
}

// Len returns the number of distinct names.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// Keys returns the lookup keys in load order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}

	out := make([]string, len(t.keys))
	copy(out, t.keys)

	return out
}

// Decode parses the dataset JSON and builds a table. Image paths are joined
// to imageBase.
func Decode(data []byte, imageBase string) (*Table, error) {
	var raw []rawEntry

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errDecode.Wrap(err)
	}

	t := NewTable()

	for _, r := range raw {
		images := make([]string, len(r.Images))
		for i, p := range r.Images {
			images[i] = imageBase + p
		}

		instructions := r.Instructions
		if instructions == nil {
			instructions = []string{}
		}

		t.Add(Entry{
			ID:           r.ID,
			Name:         r.Name,
			Images:       images,
			Instructions: instructions,
		})
	}

	return t, nil
}
