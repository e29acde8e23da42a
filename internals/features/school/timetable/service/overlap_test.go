// file: internals/features/school/timetable/service/overlap_test.go
package service

import "testing"

func TestValidTimeString(t *testing.T) {
	valid := []string{"00:00", "07:30", "12:00", "23:59"}
	for _, s := range valid {
		if !ValidTimeString(s) {
			t.Errorf("ValidTimeString(%q) = false, mau true", s)
		}
	}
	invalid := []string{"", "7:30", "24:00", "12:60", "12.30", "ab:cd", "12:3", "012:30"}
	for _, s := range invalid {
		if ValidTimeString(s) {
			t.Errorf("ValidTimeString(%q) = true, mau false", s)
		}
	}
}

func TestMinutesOfDay(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"07:30": 450,
		"12:00": 720,
		"23:59": 1439,
		"rusak": 0,
		"":      0,
	}
	for in, want := range cases {
		if got := MinutesOfDay(in); got != want {
			t.Errorf("MinutesOfDay(%q) = %d, mau %d", in, got, want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"identik", "08:00", "09:00", "08:00", "09:00", true},
		{"back-to-back tidak bentrok", "08:00", "09:00", "09:00", "10:00", false},
		{"back-to-back kebalikan", "09:00", "10:00", "08:00", "09:00", false},
		{"start di dalam", "08:30", "09:30", "08:00", "09:00", true},
		{"end di dalam", "07:30", "08:30", "08:00", "09:00", true},
		{"a memuat b", "07:00", "10:00", "08:00", "09:00", true},
		{"b memuat a", "08:15", "08:45", "08:00", "09:00", true},
		{"terpisah jauh", "07:00", "08:00", "13:00", "14:00", false},
		{"start sama durasi beda", "08:00", "08:45", "08:00", "09:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, mau %v", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// simetris
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps simetris (%s-%s, %s-%s) = %v, mau %v", tt.bStart, tt.bEnd, tt.aStart, tt.aEnd, got, tt.want)
			}
		})
	}
}
