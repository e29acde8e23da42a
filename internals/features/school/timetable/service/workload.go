// file: internals/features/school/timetable/service/workload.go
package service

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	ttModel "schoolku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Workload Aggregator
   ======================================================= */

// WorkloadSlot satu slot milik guru, sudah diperkaya nama hari.
type WorkloadSlot struct {
	SlotID      uuid.UUID `json:"slot_id"`
	SectionID   uuid.UUID `json:"section_id"`
	SectionName string    `json:"section_name"`
	SubjectName string    `json:"subject_name"`
	Room        *string   `json:"room,omitempty"`
	DayOfWeek   int       `json:"day_of_week"`
	DayName     string    `json:"day_name"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Minutes     int       `json:"minutes"`
}

// WorkloadSummary agregat beban mengajar satu guru dalam seminggu.
type WorkloadSummary struct {
	TeacherID    uuid.UUID      `json:"teacher_id"`
	TotalSlots   int            `json:"total_slots"`
	TotalMinutes int            `json:"total_minutes"`
	TotalHours   float64        `json:"total_hours"`
	PerDay       map[string]int `json:"per_day_minutes"`
	Slots        []WorkloadSlot `json:"slots"`
}

// TeacherWorkload menjumlahkan durasi semua slot guru lintas section.
// Slot dengan jam rusak dihitung 0 menit, tidak menggagalkan agregat.
func (s *TimetableService) TeacherWorkload(ctx context.Context, schoolID, teacherID uuid.UUID) (*WorkloadSummary, error) {
	slots, err := s.store.ListByTeacher(ctx, schoolID, teacherID)
	if err != nil {
		return nil, err
	}

	sum := &WorkloadSummary{
		TeacherID: teacherID,
		PerDay:    map[string]int{},
		Slots:     make([]WorkloadSlot, 0, len(slots)),
	}
	for i := range slots {
		sl := &slots[i]
		mins := slotMinutes(sl)
		dayName := constants.DayNames[sl.TimetableSlotDayOfWeek]
		sum.TotalSlots++
		sum.TotalMinutes += mins
		sum.PerDay[dayName] += mins
		sum.Slots = append(sum.Slots, WorkloadSlot{
			SlotID:      sl.TimetableSlotID,
			SectionID:   sl.TimetableSlotSectionID,
			SectionName: sl.TimetableSlotSectionName,
			SubjectName: sl.TimetableSlotSubjectName,
			Room:        sl.TimetableSlotRoom,
			DayOfWeek:   sl.TimetableSlotDayOfWeek,
			DayName:     dayName,
			StartTime:   sl.TimetableSlotStartTime,
			EndTime:     sl.TimetableSlotEndTime,
			Minutes:     mins,
		})
	}
	sum.TotalHours = roundHours(sum.TotalMinutes)

	sort.SliceStable(sum.Slots, func(i, j int) bool {
		a, b := sum.Slots[i], sum.Slots[j]
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		return MinutesOfDay(a.StartTime) < MinutesOfDay(b.StartTime)
	})
	return sum, nil
}

func (s *TimetableService) teacherMinutes(ctx context.Context, schoolID, teacherID uuid.UUID) (int, error) {
	slots, err := s.store.ListByTeacher(ctx, schoolID, teacherID)
	if err != nil {
		return 0, err
	}
	total := 0
	for i := range slots {
		total += slotMinutes(&slots[i])
	}
	return total, nil
}

func slotMinutes(sl *ttModel.TimetableSlotModel) int {
	d := MinutesOfDay(sl.TimetableSlotEndTime) - MinutesOfDay(sl.TimetableSlotStartTime)
	if d < 0 {
		return 0
	}
	return d
}

// roundHours menit → jam, 1 angka di belakang koma (90 → 1.5).
func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
