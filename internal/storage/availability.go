package storage

import (
	"time"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
)

// ProjectNextMonth derives next month's day slots from the weekly pattern
// found in the rows already on file for each professional. For every
// weekday that has at least one active slot, the most recent slot's hours
// are repeated on each matching day of the next month. Returned rows have
// no id; the backend assigns ids on insert.
func ProjectNextMonth(existing []models.ProfessionalAvailability, now time.Time, loc *time.Location) []models.ProfessionalAvailability {
	type slot struct {
		start string
		end   string
		date  string
	}
	// professionalID -> weekday -> template slot
	templates := make(map[string]map[int]slot)
	for _, a := range existing {
		if !a.IsActive {
			continue
		}
		byDay, ok := templates[a.ProfessionalID]
		if !ok {
			byDay = make(map[int]slot)
			templates[a.ProfessionalID] = byDay
		}
		if prev, ok := byDay[a.Weekday]; !ok || a.Date > prev.date {
			byDay[a.Weekday] = slot{start: a.StartTime, end: a.EndTime, date: a.Date}
		}
	}

	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	firstAfter := firstOfNext.AddDate(0, 1, 0)

	var out []models.ProfessionalAvailability
	for profID, byDay := range templates {
		clientID := ""
		for _, a := range existing {
			if a.ProfessionalID == profID {
				clientID = a.ClientID
				break
			}
		}
		for d := firstOfNext; d.Before(firstAfter); d = d.AddDate(0, 0, 1) {
			tpl, ok := byDay[int(d.Weekday())]
			if !ok {
				continue
			}
			out = append(out, models.ProfessionalAvailability{
				ProfessionalID: profID,
				ClientID:       clientID,
				Date:           d.Format("2006-01-02"),
				Weekday:        int(d.Weekday()),
				StartTime:      tpl.start,
				EndTime:        tpl.end,
				IsActive:       true,
			})
		}
	}
	return out
}
