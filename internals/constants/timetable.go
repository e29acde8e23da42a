// file: internals/constants/timetable.go
package constants

/* =======================================================
   Hari (1..7, mengikuti class_schedules_day_of_week)
   ======================================================= */

const (
	DayMonday    = 1
	DayTuesday   = 2
	DayWednesday = 3
	DayThursday  = 4
	DayFriday    = 5
	DaySaturday  = 6
	DaySunday    = 7
)

// WeekDays urutan hari yang dipakai generator (Senin..Minggu).
var WeekDays = []int{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// DayNames untuk pesan human-readable.
var DayNames = map[int]string{
	DayMonday:    "Senin",
	DayTuesday:   "Selasa",
	DayWednesday: "Rabu",
	DayThursday:  "Kamis",
	DayFriday:    "Jumat",
	DaySaturday:  "Sabtu",
	DaySunday:    "Minggu",
}

/* =======================================================
   Layout periode harian (default, bisa dioverride per
   sekolah via timetable_settings)
   ======================================================= */

// Period satu sel dalam layout harian. IsBreak = jam istirahat,
// tidak pernah diisi generator.
type Period struct {
	Label     string `json:"label"`
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
	IsBreak   bool   `json:"is_break"`
}

// DefaultPeriodLayout: 8 jam pelajaran 45 menit + 2 istirahat.
var DefaultPeriodLayout = []Period{
	{Label: "Jam ke-1", StartTime: "07:30", EndTime: "08:15"},
	{Label: "Jam ke-2", StartTime: "08:15", EndTime: "09:00"},
	{Label: "Jam ke-3", StartTime: "09:00", EndTime: "09:45"},
	{Label: "Istirahat 1", StartTime: "09:45", EndTime: "10:15", IsBreak: true},
	{Label: "Jam ke-4", StartTime: "10:15", EndTime: "11:00"},
	{Label: "Jam ke-5", StartTime: "11:00", EndTime: "11:45"},
	{Label: "Istirahat 2", StartTime: "11:45", EndTime: "12:30", IsBreak: true},
	{Label: "Jam ke-6", StartTime: "12:30", EndTime: "13:15"},
	{Label: "Jam ke-7", StartTime: "13:15", EndTime: "14:00"},
	{Label: "Jam ke-8", StartTime: "14:00", EndTime: "14:45"},
}

// FreePeriodLabel dipakai generator kalau semua kandidat sibuk.
const FreePeriodLabel = "Free Period"
