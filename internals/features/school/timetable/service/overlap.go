// file: internals/features/school/timetable/service/overlap.go
package service

import (
	"regexp"
	"strconv"
)

/* =======================================================
   Overlap Detector
   Jam disimpan sebagai "HH:MM"; semua perbandingan lewat
   menit-sejak-tengah-malam supaya aman dari input yang
   tidak zero-padded. Interval half-open [start, end).
   ======================================================= */

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeString true kalau s berformat "HH:MM" 24 jam.
func ValidTimeString(s string) bool {
	return timePattern.MatchString(s)
}

// MinutesOfDay mengubah "HH:MM" menjadi menit sejak 00:00.
// Input diasumsikan sudah lolos ValidTimeString; input rusak
// dihitung 0 supaya fungsi tetap total.
func MinutesOfDay(s string) int {
	if len(s) != 5 || s[2] != ':' {
		return 0
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// Overlaps true kalau dua interval half-open pada hari yang sama
// berbagi titik waktu. Tiga kondisi dicek: start a jatuh di dalam b,
// end a jatuh di dalam b, atau a memuat b seluruhnya.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	as, ae := MinutesOfDay(aStart), MinutesOfDay(aEnd)
	bs, be := MinutesOfDay(bStart), MinutesOfDay(bEnd)

	startInside := bs <= as && as < be
	endInside := bs < ae && ae <= be
	contains := as <= bs && be <= ae

	return startInside || endInside || contains
}
