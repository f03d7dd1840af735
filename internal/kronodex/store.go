// Package kronodex keeps the user's collection of saved artifact scans. An
// artifact can be saved at most once: identity is the normalized title,
// which stands in for a stable artifact identifier.
package kronodex

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/zyarat-mobile/zyarat/internal/artifact"
)

// Entry is one saved artifact. Entries are immutable after creation and are
// removed only by explicit user deletion.
type Entry struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Period       string    `json:"period" yaml:"period"`
	Description  string    `json:"description" yaml:"description"`
	Significance string    `json:"significance" yaml:"significance"`
	Location     string    `json:"location" yaml:"location"`
	ImageURL     string    `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ScanDate     time.Time `json:"scan_date" yaml:"scan_date"`
}

// DuplicateError reports a save attempt for an already-collected artifact.
// Recoverable: nothing changed, the user just already has it.
type DuplicateError struct {
	Title string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s is already in your Kronodex.", e.Title)
}

// NormalizeID derives the collection identity from an artifact title.
func NormalizeID(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// NewEntry builds a collection entry from a recognized analysis result.
func NewEntry(details *artifact.Details, imageURL string) Entry {
	return Entry{
		ID:           NormalizeID(details.Title),
		Title:        details.Title,
		Period:       details.Period,
		Description:  details.Description,
		Significance: details.Significance,
		Location:     details.Location,
		ImageURL:     imageURL,
		ScanDate:     time.Now(),
	}
}

// Store holds the collection in memory, sorted by title. The containment
// check and the insert run under one lock, so concurrent save callbacks for
// the same identity cannot both get in.
type Store struct {
	mu    sync.Mutex
	items []Entry
}

// New returns an empty collection store.
func New() *Store {
	return &Store{}
}

// Add inserts an entry. A second save with the same identity is rejected
// with a DuplicateError — never merged or overwritten. On success the
// collection is re-sorted by title ascending; equal titles keep insertion
// order.
func (s *Store) Add(entry Entry) error {
	if entry.ID == "" {
		entry.ID = entry.Title
	}
	entry.ID = NormalizeID(entry.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containsLocked(entry.ID) {
		return &DuplicateError{Title: entry.Title}
	}

	s.items = append(s.items, entry)
	sort.SliceStable(s.items, func(i, j int) bool {
		return strings.ToLower(s.items[i].Title) < strings.ToLower(s.items[j].Title)
	})

	slog.Info("Item added to Kronodex", "title", entry.Title, "size", len(s.items))
	return nil
}

// Contains reports whether an artifact with the given id (or title; the
// value is normalized) is already collected.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(NormalizeID(id))
}

func (s *Store) containsLocked(id string) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Remove deletes a collected artifact by id. Reports whether anything was
// removed.
func (s *Store) Remove(id string) bool {
	id = NormalizeID(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			slog.Info("Item removed from Kronodex", "id", id)
			return true
		}
	}
	return false
}

// Items returns a copy of the collection in title order.
func (s *Store) Items() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Entry, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of collected artifacts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
