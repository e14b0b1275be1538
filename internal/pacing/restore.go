package pacing

import (
	"time"

	"engage-api/internal/model"
)

// Restore rebuilds the gate's lanes from persisted publish history. Records
// are counted against a monitor's daily budget only when they fall on the
// monitor's current local day; the freshest record sets lastPostedAt.
// Monitors with an unknown timezone are skipped so one bad row cannot block
// startup.
func Restore(g *Gate, monitors []model.Monitor, records []model.PostedRecord, now time.Time) {
	byMonitor := make(map[string][]model.PostedRecord)
	for _, rec := range records {
		byMonitor[rec.MonitorID] = append(byMonitor[rec.MonitorID], rec)
	}

	for _, m := range monitors {
		loc, err := time.LoadLocation(m.Timezone)
		if err != nil {
			continue
		}
		day := now.In(loc).Format(dayLayout)

		var last time.Time
		count := 0
		for _, rec := range byMonitor[m.ID] {
			if rec.PostedAt.After(last) {
				last = rec.PostedAt
			}
			if rec.PostedAt.In(loc).Format(dayLayout) == day {
				count++
			}
		}

		if count > 0 || !last.IsZero() {
			g.Rebuild(m.ID, last, count, day)
		}
	}
}
