// file: internals/features/school/timetable/service/conflict_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

func baseInput(sectionID, subjectID, teacherID uuid.UUID) SlotInput {
	return SlotInput{
		SectionID:   sectionID,
		SubjectID:   subjectID,
		TeacherID:   teacherID,
		SectionName: "VII-A",
		SubjectName: "Matematika",
		TeacherName: "Bu Rina",
		DayOfWeek:   constants.DayMonday,
		StartTime:   "08:00",
		EndTime:     "09:00",
	}
}

func TestCheckSlotConflicts_TeacherAcrossSections(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	sectionA := uuid.New()
	sectionB := uuid.New()
	subjectID := uuid.New()
	teacherID := uuid.New()

	// Guru sudah mengajar 08:00-09:00 di kelas A.
	seedSlot(store, schoolID, baseInput(sectionA, subjectID, teacherID))

	// Kandidat 08:30-09:30 di kelas B, guru sama.
	report, err := svc.CheckSlotConflicts(ctx, conflictQuery{
		SchoolID:  schoolID,
		SectionID: sectionB,
		TeacherID: teacherID,
		DayOfWeek: constants.DayMonday,
		StartTime: "08:30",
		EndTime:   "09:30",
	})
	if err != nil {
		t.Fatalf("CheckSlotConflicts error: %v", err)
	}
	if report.Teacher == nil {
		t.Fatal("mau teacher conflict, dapat nil")
	}
	if report.Section != nil {
		t.Errorf("kelas B kosong, section conflict harusnya nil: %+v", report.Section)
	}
	if !strings.Contains(report.Teacher.Message, "Bu Rina") || !strings.Contains(report.Teacher.Message, "Senin") {
		t.Errorf("pesan kurang konteks: %q", report.Teacher.Message)
	}
	if report.TeacherWorkloadMinutes != 60 {
		t.Errorf("workload = %d menit, mau 60", report.TeacherWorkloadMinutes)
	}
}

func TestCheckSlotConflicts_SectionAndRoom(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	sectionID := uuid.New()

	in := baseInput(sectionID, uuid.New(), uuid.New())
	in.Room = strPtr("Lab IPA")
	seedSlot(store, schoolID, in)

	// Guru lain, kelas sama, ruang sama, jam bertabrakan:
	// harus kena section + room tapi tidak teacher.
	report, err := svc.CheckSlotConflicts(ctx, conflictQuery{
		SchoolID:  schoolID,
		SectionID: sectionID,
		TeacherID: uuid.New(),
		Room:      strPtr("Lab IPA"),
		DayOfWeek: constants.DayMonday,
		StartTime: "08:00",
		EndTime:   "08:45",
	})
	if err != nil {
		t.Fatalf("CheckSlotConflicts error: %v", err)
	}
	if report.Teacher != nil {
		t.Errorf("guru beda, teacher conflict harusnya nil")
	}
	if report.Section == nil {
		t.Error("mau section conflict")
	}
	if report.Room == nil {
		t.Error("mau room conflict")
	}
	if got := len(report.Messages()); got != 2 {
		t.Errorf("Messages() = %d pesan, mau 2", got)
	}
}

func TestCheckSlotConflicts_ExcludeSlotID(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	in := baseInput(uuid.New(), uuid.New(), uuid.New())
	existing := seedSlot(store, schoolID, in)

	// Re-validasi slot yang sama persis: tanpa exclude kena
	// bentrok dirinya sendiri, dengan exclude bersih.
	q := conflictQuery{
		SchoolID:  schoolID,
		SectionID: in.SectionID,
		TeacherID: in.TeacherID,
		DayOfWeek: in.DayOfWeek,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	report, err := svc.CheckSlotConflicts(ctx, q)
	if err != nil {
		t.Fatalf("CheckSlotConflicts error: %v", err)
	}
	if !report.HasConflict() {
		t.Fatal("tanpa exclude harus bentrok dengan dirinya sendiri")
	}

	q.ExcludeSlotID = &existing.TimetableSlotID
	report, err = svc.CheckSlotConflicts(ctx, q)
	if err != nil {
		t.Fatalf("CheckSlotConflicts error: %v", err)
	}
	if report.HasConflict() {
		t.Errorf("dengan exclude harusnya bersih: %v", report.Messages())
	}
}

func TestCheckSlotConflicts_DifferentDayNoConflict(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	in := baseInput(uuid.New(), uuid.New(), uuid.New())
	seedSlot(store, schoolID, in)

	report, err := svc.CheckSlotConflicts(ctx, conflictQuery{
		SchoolID:  schoolID,
		SectionID: in.SectionID,
		TeacherID: in.TeacherID,
		DayOfWeek: constants.DayTuesday,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	})
	if err != nil {
		t.Fatalf("CheckSlotConflicts error: %v", err)
	}
	if report.HasConflict() {
		t.Errorf("hari beda harusnya bersih: %v", report.Messages())
	}
}
