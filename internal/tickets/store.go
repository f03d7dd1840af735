// Package tickets keeps the user's event reservations. Reservations are
// created by a purchase confirmation — one record per unit bought — and are
// never mutated or cancelled afterwards.
package tickets

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Reservation is one purchased ticket. Immutable after creation.
type Reservation struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	Title          string    `json:"title"`
	Location       string    `json:"location,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	EventDate      time.Time `json:"event_date"`
	PurchaseDate   time.Time `json:"purchase_date"`
	UnitPrice      float64   `json:"unit_price"`
	RedemptionCode string    `json:"redemption_code"`
}

// EventInfo is the event detail a reservation is cut against.
type EventInfo struct {
	ID       string
	Title    string
	Location string
	ImageURL string
}

// Store holds reservations in memory and derives the upcoming count from
// the clock on every read.
type Store struct {
	mu           sync.Mutex
	reservations []Reservation
	now          func() time.Time
}

// New returns an empty reservation store using the wall clock.
func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock returns a store with an injected clock, for tests.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Reserve confirms a purchase: it creates exactly quantity reservations in
// one call, each with a fresh id and redemption code and identical
// event/date/price. The visit date must be on or after the day of purchase;
// the policy is enforced here, not stored. Quantity must be positive.
func (s *Store) Reserve(event EventInfo, eventDate time.Time, unitPrice float64, quantity int) ([]Reservation, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if eventDate.Before(startOfDay(now)) {
		return nil, fmt.Errorf("visit date %s is in the past; pick a date from today onwards", eventDate.Format("2006-01-02"))
	}

	created := make([]Reservation, 0, quantity)
	for i := 0; i < quantity; i++ {
		r := Reservation{
			ID:             uuid.NewString(),
			EventID:        event.ID,
			Title:          event.Title,
			Location:       event.Location,
			ImageURL:       event.ImageURL,
			EventDate:      eventDate,
			PurchaseDate:   now,
			UnitPrice:      unitPrice,
			RedemptionCode: fmt.Sprintf("ZYARAT_TICKET_%s_%s", event.ID, uuid.NewString()),
		}
		created = append(created, r)
	}
	s.reservations = append(s.reservations, created...)

	slog.Info("Tickets reserved",
		"event_id", event.ID,
		"quantity", quantity,
		"event_date", eventDate.Format("2006-01-02"),
		"total", unitPrice*float64(quantity))
	return created, nil
}

// All returns a copy of every reservation in purchase order.
func (s *Store) All() []Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// UpcomingCount counts reservations whose visit date is on or after the
// start of the current day. It is recomputed from the clock on every call,
// so the count rolls over at midnight without any stored state.
func (s *Store) UpcomingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := startOfDay(s.now())
	count := 0
	for _, r := range s.reservations {
		if !r.EventDate.Before(today) {
			count++
		}
	}
	return count
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
