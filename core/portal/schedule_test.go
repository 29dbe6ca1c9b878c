package portal

import (
	"reflect"
	"testing"
	"time"
)

func TestClampWeek(t *testing.T) {
	for week, want := range map[int]int{-1: 1, 0: 1, 1: 1, 3: 3, 4: 4, 5: 4} {
		if got := ClampWeek(week); got != want {
			t.Errorf("ClampWeek(%d) = %d, want %d", week, got, want)
		}
	}
}

func TestScheduleSlot_Bounds(t *testing.T) {
	tests := []struct {
		time      string
		wantStart time.Duration
		wantEnd   time.Duration
		wantOK    bool
	}{
		{"8:00 - 9:30", 8 * time.Hour, 9*time.Hour + 30*time.Minute, true},
		{"11:00 - 12:30", 11 * time.Hour, 12*time.Hour + 30*time.Minute, true},
		{"1:30 - 3:00", 13*time.Hour + 30*time.Minute, 15 * time.Hour, true},
		{"whenever", 0, 0, false},
		{"8 - 9", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			start, end, ok := ScheduleSlot{Time: tt.time}.Bounds()
			if ok != tt.wantOK || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Bounds() = %v, %v, %v; want %v, %v, %v", start, end, ok, tt.wantStart, tt.wantEnd, tt.wantOK)
			}
		})
	}
}

func TestCurrentClass(t *testing.T) {
	slots := seedSchedule()
	at := func(day, hour, minute int) time.Time { return time.Date(2023, 10, day, hour, minute, 0, 0, time.UTC) }

	tests := []struct {
		name   string
		now    time.Time
		want   ClassSession
		wantOK bool
	}{
		{
			name: "monday morning", now: at(9, 8, 15), wantOK: true,
			want: ClassSession{Date: "2023-10-09", Day: "Monday", Time: "8:00 - 9:30", Subject: "PRACTICUM 1"},
		},
		{
			name: "thursday afternoon", now: at(12, 15, 0), wantOK: true,
			want: ClassSession{Date: "2023-10-12", Day: "Thursday", Time: "3:00 - 4:30", Subject: "Mathematics"},
		},
		{name: "free slot", now: at(9, 11, 30)},
		{name: "lunch break", now: at(9, 13, 0)},
		{name: "weekend", now: at(14, 9, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentClass(slots, tt.now)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CurrentClass() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUpcomingClasses(t *testing.T) {
	slots := seedSchedule()
	friday := time.Date(2023, 10, 13, 16, 0, 0, 0, time.UTC)

	want := []ClassSession{
		{Date: "2023-10-16", Day: "Monday", Time: "8:00 - 9:30", Subject: "PRACTICUM 1"},
		{Date: "2023-10-16", Day: "Monday", Time: "9:30 - 11:00", Subject: "Web Development"},
		{Date: "2023-10-16", Day: "Monday", Time: "1:30 - 3:00", Subject: "Database Systems"},
	}
	if got := UpcomingClasses(slots, friday, 3); !reflect.DeepEqual(got, want) {
		t.Errorf("UpcomingClasses() = %+v, want %+v", got, want)
	}

	if got := UpcomingClasses(nil, friday, 3); len(got) != 0 {
		t.Errorf("UpcomingClasses(nil) = %+v, want none", got)
	}
}
