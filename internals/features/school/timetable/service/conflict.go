// file: internals/features/school/timetable/service/conflict.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	ttModel "schoolku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Conflict Checker
   - scan per-resource: guru → section → ruang
   - excludeID untuk re-validasi slot existing (edit form)
   - ignoreSection untuk generate: slot section sendiri akan
     diganti, jadi tidak dihitung bentrok
   ======================================================= */

type conflictQuery struct {
	SchoolID  uuid.UUID
	SectionID uuid.UUID
	TeacherID uuid.UUID
	Room      *string
	DayOfWeek int
	StartTime string
	EndTime   string

	ExcludeSlotID *uuid.UUID
	IgnoreSection *uuid.UUID
}

// CheckSlotConflicts mengembalikan laporan lengkap untuk satu kandidat
// slot. Laporan selalu berisi workload guru terkini sebagai konteks.
func (s *TimetableService) CheckSlotConflicts(ctx context.Context, q conflictQuery) (*ConflictReport, error) {
	report := &ConflictReport{}

	// Guru: semua slot guru tsb di hari yang sama, lintas section.
	teacherSlots, err := s.store.ListTeacherDay(ctx, q.SchoolID, q.TeacherID, q.DayOfWeek)
	if err != nil {
		return nil, err
	}
	report.Teacher = firstOverlap("teacher", teacherSlots, q)

	// Section: jadwal kelas itu sendiri.
	sectionSlots, err := s.store.ListSectionDay(ctx, q.SchoolID, q.SectionID, q.DayOfWeek)
	if err != nil {
		return nil, err
	}
	report.Section = firstOverlap("section", sectionSlots, q)

	// Ruang: hanya kalau kandidat punya ruang.
	if q.Room != nil && *q.Room != "" {
		roomSlots, err := s.store.ListRoomDay(ctx, q.SchoolID, *q.Room, q.DayOfWeek)
		if err != nil {
			return nil, err
		}
		report.Room = firstOverlap("room", roomSlots, q)
	}

	minutes, err := s.teacherMinutes(ctx, q.SchoolID, q.TeacherID)
	if err != nil {
		return nil, err
	}
	report.TeacherWorkloadMinutes = minutes
	report.TeacherWorkloadHours = roundHours(minutes)

	return report, nil
}

func firstOverlap(resource string, slots []ttModel.TimetableSlotModel, q conflictQuery) *SlotConflict {
	for i := range slots {
		sl := &slots[i]
		if q.ExcludeSlotID != nil && sl.TimetableSlotID == *q.ExcludeSlotID {
			continue
		}
		if q.IgnoreSection != nil && sl.TimetableSlotSectionID == *q.IgnoreSection {
			continue
		}
		if !Overlaps(q.StartTime, q.EndTime, sl.TimetableSlotStartTime, sl.TimetableSlotEndTime) {
			continue
		}
		return newSlotConflict(resource, sl)
	}
	return nil
}

func newSlotConflict(resource string, sl *ttModel.TimetableSlotModel) *SlotConflict {
	dayName := constants.DayNames[sl.TimetableSlotDayOfWeek]
	c := &SlotConflict{
		Resource:    resource,
		SlotID:      sl.TimetableSlotID,
		SectionID:   sl.TimetableSlotSectionID,
		SectionName: sl.TimetableSlotSectionName,
		SubjectName: sl.TimetableSlotSubjectName,
		TeacherName: sl.TimetableSlotTeacherName,
		Room:        sl.TimetableSlotRoom,
		DayOfWeek:   sl.TimetableSlotDayOfWeek,
		DayName:     dayName,
		StartTime:   sl.TimetableSlotStartTime,
		EndTime:     sl.TimetableSlotEndTime,
	}
	window := timeWindow(dayName, sl.TimetableSlotStartTime, sl.TimetableSlotEndTime)
	switch resource {
	case "teacher":
		c.Message = fmt.Sprintf("Guru %s sudah mengajar %s di %s pada %s", sl.TimetableSlotTeacherName, sl.TimetableSlotSubjectName, sl.TimetableSlotSectionName, window)
	case "section":
		c.Message = fmt.Sprintf("Kelas %s sudah ada jadwal %s pada %s", sl.TimetableSlotSectionName, sl.TimetableSlotSubjectName, window)
	case "room":
		room := ""
		if sl.TimetableSlotRoom != nil {
			room = *sl.TimetableSlotRoom
		}
		c.Message = fmt.Sprintf("Ruang %s sudah dipakai %s (%s) pada %s", room, sl.TimetableSlotSectionName, sl.TimetableSlotSubjectName, window)
	}
	return c
}
