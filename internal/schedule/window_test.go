package schedule

import (
	"testing"
	"time"
)

func TestInWindow(t *testing.T) {
	// 2026-03-02 is a Monday. 14:30 UTC is 09:30 in New York (EST).
	now := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		tz      string
		start   string
		end     string
		want    bool
		wantErr bool
	}{
		{name: "inside window", tz: "America/New_York", start: "09:00", end: "17:00", want: true},
		{name: "before window", tz: "America/New_York", start: "10:00", end: "17:00", want: false},
		{name: "after window", tz: "America/New_York", start: "06:00", end: "09:00", want: false},
		{name: "start boundary inclusive", tz: "America/New_York", start: "09:30", end: "17:00", want: true},
		{name: "end boundary inclusive", tz: "America/New_York", start: "06:00", end: "09:30", want: true},
		{name: "utc window", tz: "UTC", start: "14:00", end: "15:00", want: true},
		{name: "bad timezone", tz: "Mars/Olympus", start: "09:00", end: "17:00", wantErr: true},
		{name: "bad start time", tz: "UTC", start: "9am", end: "17:00", wantErr: true},
		{name: "bad end time", tz: "UTC", start: "09:00", end: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InWindow(now, tt.tz, tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InWindow() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("InWindow() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("InWindow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAfterDailyStart(t *testing.T) {
	// 13:00 UTC is 08:00 in New York (EST).
	now := time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		tz    string
		start string
		want  bool
	}{
		{name: "before start", tz: "America/New_York", start: "09:00", want: false},
		{name: "at start", tz: "America/New_York", start: "08:00", want: true},
		{name: "after start", tz: "America/New_York", start: "07:00", want: true},
		{name: "empty start allows", tz: "America/New_York", start: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AfterDailyStart(now, tt.tz, tt.start)
			if err != nil {
				t.Fatalf("AfterDailyStart() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AfterDailyStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	// Saturday 2026-03-07 01:00 UTC is still Friday 20:00 in New York.
	fridayEvening := time.Date(2026, 3, 7, 1, 0, 0, 0, time.UTC)

	got, err := IsWeekend(fridayEvening, "America/New_York")
	if err != nil {
		t.Fatalf("IsWeekend() error = %v", err)
	}
	if got {
		t.Error("IsWeekend() = true for Friday evening local time")
	}

	got, err = IsWeekend(fridayEvening, "UTC")
	if err != nil {
		t.Fatalf("IsWeekend() error = %v", err)
	}
	if !got {
		t.Error("IsWeekend() = false for Saturday UTC")
	}
}

func TestValidateWindow(t *testing.T) {
	if err := ValidateWindow("09:00", "17:00"); err != nil {
		t.Errorf("ValidateWindow() error = %v", err)
	}
	if err := ValidateWindow("09:00", "09:00"); err != nil {
		t.Errorf("ValidateWindow() zero-length window error = %v", err)
	}
	if err := ValidateWindow("22:00", "02:00"); err == nil {
		t.Error("ValidateWindow() accepted a window crossing midnight")
	}
	if err := ValidateWindow("nope", "17:00"); err == nil {
		t.Error("ValidateWindow() accepted an unparseable start")
	}
}
