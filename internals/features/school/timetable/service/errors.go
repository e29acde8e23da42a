// file: internals/features/school/timetable/service/errors.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

/* =======================================================
   Error taksonomi layanan jadwal
   - ValidationError : input rusak, sebelum sentuh storage
   - ConflictError   : bentrok guru/kelas/ruang
   - ErrSlotNotFound : id slot tidak ada di tenant
   - GenerationError : generator gagal ambil snapshot
   ======================================================= */

var ErrSlotNotFound = errors.New("slot jadwal tidak ditemukan")

// ValidationError menunjuk field yang salah supaya caller bisa
// menampilkan pesan per-field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// GenerationError fatal: snapshot global tidak bisa diambil,
// run generator dibatalkan sebelum ada kandidat.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return "gagal mengambil snapshot jadwal: " + e.Cause.Error()
}

func (e *GenerationError) Unwrap() error { return e.Cause }

/* =======================================================
   Conflict report
   ======================================================= */

// SlotConflict referensi ke slot existing yang bentrok, lengkap
// dengan snapshot nama supaya pesan bisa dirender tanpa join.
type SlotConflict struct {
	Resource    string    `json:"resource"` // teacher|section|room
	SlotID      uuid.UUID `json:"slot_id"`
	SectionID   uuid.UUID `json:"section_id"`
	SectionName string    `json:"section_name"`
	SubjectName string    `json:"subject_name"`
	TeacherName string    `json:"teacher_name"`
	Room        *string   `json:"room,omitempty"`
	DayOfWeek   int       `json:"day_of_week"`
	DayName     string    `json:"day_name"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Message     string    `json:"message"`
}

// ConflictReport hasil Conflict Checker: satu field per resource,
// nil = tidak bentrok. Workload guru ikut dilampirkan sebagai info
// (tidak pernah memblokir).
type ConflictReport struct {
	Teacher *SlotConflict `json:"teacher_conflict,omitempty"`
	Section *SlotConflict `json:"section_conflict,omitempty"`
	Room    *SlotConflict `json:"room_conflict,omitempty"`

	TeacherWorkloadMinutes int     `json:"teacher_workload_minutes"`
	TeacherWorkloadHours   float64 `json:"teacher_workload_hours"`
}

func (r *ConflictReport) HasConflict() bool {
	return r.Teacher != nil || r.Section != nil || r.Room != nil
}

// Messages satu pesan per resource yang bentrok.
func (r *ConflictReport) Messages() []string {
	var out []string
	for _, c := range []*SlotConflict{r.Teacher, r.Section, r.Room} {
		if c != nil {
			out = append(out, c.Message)
		}
	}
	return out
}

// ConflictError dikembalikan mutator saat commit ditolak.
type ConflictError struct {
	Report *ConflictReport
}

func (e *ConflictError) Error() string {
	if e.Report == nil || !e.Report.HasConflict() {
		return "bentrok jadwal"
	}
	return strings.Join(e.Report.Messages(), "; ")
}

func timeWindow(dayName, start, end string) string {
	return fmt.Sprintf("%s %s–%s", dayName, start, end)
}
