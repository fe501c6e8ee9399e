package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
)

func TestProjectNextMonthRepeatsWeekdayPattern(t *testing.T) {
	// August 2026: projecting into September, whose Mondays are the
	// 7th, 14th, 21st and 28th.
	now := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	existing := []models.ProfessionalAvailability{
		{
			ProfessionalID: "prof-1",
			ClientID:       "client-1",
			Date:           "2026-08-03",
			Weekday:        1,
			StartTime:      "09:00",
			EndTime:        "12:00",
			IsActive:       true,
		},
	}

	out := ProjectNextMonth(existing, now, time.UTC)
	require.Len(t, out, 4)

	wantDates := []string{"2026-09-07", "2026-09-14", "2026-09-21", "2026-09-28"}
	var gotDates []string
	for _, a := range out {
		gotDates = append(gotDates, a.Date)
		assert.Equal(t, "prof-1", a.ProfessionalID)
		assert.Equal(t, "client-1", a.ClientID)
		assert.Equal(t, 1, a.Weekday)
		assert.Equal(t, "09:00", a.StartTime)
		assert.Equal(t, "12:00", a.EndTime)
		assert.True(t, a.IsActive)
		assert.Empty(t, a.ID, "ids are assigned on insert")
	}
	assert.ElementsMatch(t, wantDates, gotDates)
}

func TestProjectNextMonthLatestSlotWins(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	existing := []models.ProfessionalAvailability{
		{ProfessionalID: "prof-1", ClientID: "client-1", Date: "2026-08-03", Weekday: 1, StartTime: "09:00", EndTime: "12:00", IsActive: true},
		{ProfessionalID: "prof-1", ClientID: "client-1", Date: "2026-08-10", Weekday: 1, StartTime: "10:00", EndTime: "16:00", IsActive: true},
	}

	out := ProjectNextMonth(existing, now, time.UTC)
	require.Len(t, out, 4)
	for _, a := range out {
		assert.Equal(t, "10:00", a.StartTime)
		assert.Equal(t, "16:00", a.EndTime)
	}
}

func TestProjectNextMonthSkipsInactiveSlots(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	existing := []models.ProfessionalAvailability{
		{ProfessionalID: "prof-1", ClientID: "client-1", Date: "2026-08-03", Weekday: 1, StartTime: "09:00", EndTime: "12:00", IsActive: false},
	}

	assert.Empty(t, ProjectNextMonth(existing, now, time.UTC))
}

func TestProjectNextMonthMultipleProfessionals(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	existing := []models.ProfessionalAvailability{
		{ProfessionalID: "prof-1", ClientID: "client-1", Date: "2026-08-03", Weekday: 1, StartTime: "09:00", EndTime: "12:00", IsActive: true},
		{ProfessionalID: "prof-2", ClientID: "client-1", Date: "2026-08-05", Weekday: 3, StartTime: "13:00", EndTime: "18:00", IsActive: true},
	}

	out := ProjectNextMonth(existing, now, time.UTC)

	byProf := map[string]int{}
	for _, a := range out {
		byProf[a.ProfessionalID]++
	}
	// September 2026 has 4 Mondays and 5 Wednesdays.
	assert.Equal(t, 4, byProf["prof-1"])
	assert.Equal(t, 5, byProf["prof-2"])
}
