package tickets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var elJem = EventInfo{
	ID:       "el-jem",
	Title:    "El Jem Amphitheatre",
	Location: "El Jem, Mahdia Governorate",
}

func TestReserveCreatesOneRecordPerUnit(t *testing.T) {
	store := New()
	date := time.Now().AddDate(0, 0, 7)

	created, err := store.Reserve(elJem, date, 12.0, 3)
	require.NoError(t, err)
	require.Len(t, created, 3)

	seen := make(map[string]bool)
	for _, r := range created {
		assert.Equal(t, "el-jem", r.EventID)
		assert.True(t, r.EventDate.Equal(date))
		assert.InDelta(t, 12.0, r.UnitPrice, 1e-9)
		assert.NotEmpty(t, r.RedemptionCode)
		assert.Contains(t, r.RedemptionCode, "ZYARAT_TICKET_el-jem_")
		assert.False(t, seen[r.ID], "reservation ids must be distinct")
		seen[r.ID] = true
	}
	assert.Len(t, store.All(), 3)
}

func TestReserveRejectsPastDate(t *testing.T) {
	store := New()

	created, err := store.Reserve(elJem, time.Now().AddDate(0, 0, -1), 12.0, 1)
	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Empty(t, store.All())
}

func TestReserveAcceptsToday(t *testing.T) {
	store := New()

	// Same-day visits are allowed even late in the day.
	_, err := store.Reserve(elJem, time.Now(), 12.0, 1)
	assert.NoError(t, err)
}

func TestReserveRejectsNonPositiveQuantity(t *testing.T) {
	store := New()

	_, err := store.Reserve(elJem, time.Now().AddDate(0, 0, 1), 12.0, 0)
	assert.Error(t, err)
}

func TestUpcomingCountRollsOverWithClock(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := NewWithClock(clock)

	// Purchased two days early for a visit on March 11.
	_, err := store.Reserve(elJem, time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), 12.0, 1)
	require.NoError(t, err)
	// And one for March 12.
	_, err = store.Reserve(elJem, time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC), 12.0, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, store.UpcomingCount())

	// March 12: yesterday's visit no longer counts, today's still does.
	now = time.Date(2026, time.March, 12, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, store.UpcomingCount())

	// March 13: everything is in the past.
	now = time.Date(2026, time.March, 13, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, 0, store.UpcomingCount())
}
