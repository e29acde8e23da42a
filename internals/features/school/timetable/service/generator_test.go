// file: internals/features/school/timetable/service/generator_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

var testLayout = []constants.Period{
	{Label: "Jam ke-1", StartTime: "07:30", EndTime: "08:15"},
	{Label: "Jam ke-2", StartTime: "08:15", EndTime: "09:00"},
	{Label: "Istirahat", StartTime: "09:00", EndTime: "09:30", IsBreak: true},
	{Label: "Jam ke-3", StartTime: "09:30", EndTime: "10:15"},
}

func twoSubjectPools() ([]SubjectTeacherPool, uuid.UUID, uuid.UUID) {
	mtkTeacher := uuid.New()
	ipaTeacher := uuid.New()
	pools := []SubjectTeacherPool{
		{
			SubjectID:   uuid.New(),
			SubjectName: "Matematika",
			Teachers:    []PoolTeacher{{TeacherID: mtkTeacher, TeacherName: "Bu Rina"}},
		},
		{
			SubjectID:   uuid.New(),
			SubjectName: "IPA",
			Teachers:    []PoolTeacher{{TeacherID: ipaTeacher, TeacherName: "Pak Budi"}},
		},
	}
	return pools, mtkTeacher, ipaTeacher
}

func TestGenerateSectionTimetable_FullWeek(t *testing.T) {
	ctx := context.Background()
	pools, _, _ := twoSubjectPools()
	svc := newTestService(newMemSlotStore(), pools, testLayout)

	sectionID := uuid.New()
	cells, err := svc.GenerateSectionTimetable(ctx, uuid.New(), sectionID)
	if err != nil {
		t.Fatalf("GenerateSectionTimetable error: %v", err)
	}

	// 7 hari × 4 periode (termasuk istirahat)
	if len(cells) != 7*len(testLayout) {
		t.Fatalf("len(cells) = %d, mau %d", len(cells), 7*len(testLayout))
	}

	breaks := 0
	for _, c := range cells {
		if c.SectionID != sectionID {
			t.Fatalf("cell bawa section lain: %+v", c)
		}
		if c.IsBreak {
			breaks++
			if c.TeacherID != nil || c.SubjectID != nil {
				t.Errorf("jam istirahat terisi mapel: %+v", c)
			}
			continue
		}
		if c.IsFreePeriod {
			t.Errorf("pool cukup, tidak boleh ada Free Period: %+v", c)
			continue
		}
		if c.SubjectID == nil || c.TeacherID == nil {
			t.Errorf("cell pelajaran tanpa mapel/guru: %+v", c)
		}
	}
	if breaks != 7 {
		t.Errorf("jumlah istirahat = %d, mau 7", breaks)
	}
}

func TestGenerateSectionTimetable_RotatesSubjects(t *testing.T) {
	ctx := context.Background()
	pools, _, _ := twoSubjectPools()
	svc := newTestService(newMemSlotStore(), pools, testLayout)

	cells, err := svc.GenerateSectionTimetable(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("GenerateSectionTimetable error: %v", err)
	}

	// shuffle dimatikan: hari Senin harus giliran Matematika, IPA,
	// (istirahat), Matematika — kursor memutar, bukan mengulang.
	monday := cells[:4]
	if monday[0].SubjectName != "Matematika" || monday[1].SubjectName != "IPA" {
		t.Errorf("rotasi awal salah: %q, %q", monday[0].SubjectName, monday[1].SubjectName)
	}
	if !monday[2].IsBreak {
		t.Errorf("periode ke-3 harus istirahat")
	}
	if monday[3].SubjectName != "Matematika" {
		t.Errorf("setelah istirahat harus balik ke Matematika, dapat %q", monday[3].SubjectName)
	}
}

func TestGenerateSectionTimetable_EmptyPoolsAllFree(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemSlotStore(), nil, testLayout)

	cells, err := svc.GenerateSectionTimetable(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("GenerateSectionTimetable error: %v", err)
	}
	for _, c := range cells {
		if c.IsBreak {
			continue
		}
		if !c.IsFreePeriod {
			t.Fatalf("pool kosong, semua cell harus Free Period: %+v", c)
		}
		if c.SubjectName != constants.FreePeriodLabel {
			t.Errorf("label Free Period salah: %q", c.SubjectName)
		}
	}
}

func TestGenerateSectionTimetable_AllTeachersBusyAllWeek(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	pools, mtkTeacher, ipaTeacher := twoSubjectPools()
	svc := newTestService(store, pools, testLayout)

	schoolID := uuid.New()
	sectionID := uuid.New()
	otherSection := uuid.New()

	// Kedua guru sibuk di setiap jam pelajaran sepanjang minggu.
	for _, day := range constants.WeekDays {
		for _, p := range testLayout {
			if p.IsBreak {
				continue
			}
			for _, tch := range []uuid.UUID{mtkTeacher, ipaTeacher} {
				in := baseInput(otherSection, uuid.New(), tch)
				in.DayOfWeek = day
				in.StartTime, in.EndTime = p.StartTime, p.EndTime
				seedSlot(store, schoolID, in)
			}
		}
	}

	cells, err := svc.GenerateSectionTimetable(ctx, schoolID, sectionID)
	if err != nil {
		t.Fatalf("GenerateSectionTimetable error: %v", err)
	}
	for _, c := range cells {
		if c.IsBreak {
			continue
		}
		if !c.IsFreePeriod {
			t.Fatalf("semua guru sibuk, cell harus Free Period: %+v", c)
		}
	}
}

func TestGenerateSectionTimetable_SkipsBusyTeacher(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	pools, mtkTeacher, _ := twoSubjectPools()
	svc := newTestService(store, pools, testLayout)

	schoolID := uuid.New()
	sectionID := uuid.New()

	// Guru Matematika sudah terikat Senin 07:30 di section LAIN.
	other := baseInput(uuid.New(), uuid.New(), mtkTeacher)
	other.StartTime, other.EndTime = "07:30", "08:15"
	seedSlot(store, schoolID, other)

	cells, err := svc.GenerateSectionTimetable(ctx, schoolID, sectionID)
	if err != nil {
		t.Fatalf("GenerateSectionTimetable error: %v", err)
	}

	first := cells[0]
	if first.DayOfWeek != constants.DayMonday || first.StartTime != "07:30" {
		t.Fatalf("cell pertama bukan Senin 07:30: %+v", first)
	}
	if first.SubjectName == "Matematika" {
		t.Error("guru sibuk tetap dipakai di jam yang sama")
	}
	if first.SubjectName != "IPA" {
		t.Errorf("harusnya geser ke IPA, dapat %q", first.SubjectName)
	}
}

func TestGenerateSectionTimetable_OwnSectionSlotsNotBusy(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	pools, mtkTeacher, _ := twoSubjectPools()
	svc := newTestService(store, pools, testLayout)

	schoolID := uuid.New()
	sectionID := uuid.New()

	// Slot lama milik section yang SAMA akan diganti, jadi tidak
	// boleh membuat gurunya dianggap sibuk.
	own := baseInput(sectionID, uuid.New(), mtkTeacher)
	own.StartTime, own.EndTime = "07:30", "08:15"
	seedSlot(store, schoolID, own)

	cells, err := svc.GenerateSectionTimetable(ctx, schoolID, sectionID)
	if err != nil {
		t.Fatalf("GenerateSectionTimetable error: %v", err)
	}
	if cells[0].SubjectName != "Matematika" {
		t.Errorf("slot section sendiri tidak boleh dihitung sibuk, dapat %q", cells[0].SubjectName)
	}
}

func TestGenerateSectionTimetable_PoolSourceError(t *testing.T) {
	ctx := context.Background()
	svc := NewTimetableService(
		newMemSlotStore(),
		&memPoolSource{err: context.DeadlineExceeded},
		&memLayoutSource{},
		LogNotifier{},
	)

	_, err := svc.GenerateSectionTimetable(ctx, uuid.New(), uuid.New())
	var gErr *GenerationError
	if !errors.As(err, &gErr) {
		t.Fatalf("mau GenerationError, dapat %v", err)
	}
}

func TestCommitCandidates_FiltersBreaksAndFree(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	pools, _, _ := twoSubjectPools()
	svc := newTestService(store, pools, testLayout)

	schoolID := uuid.New()
	sectionID := uuid.New()

	cells, err := svc.GenerateSectionTimetable(ctx, schoolID, sectionID)
	if err != nil {
		t.Fatalf("GenerateSectionTimetable error: %v", err)
	}

	total, err := svc.CommitCandidates(ctx, schoolID, sectionID, "VII-A", cells)
	if err != nil {
		t.Fatalf("CommitCandidates error: %v", err)
	}
	// 7 hari × 3 periode pelajaran (istirahat dibuang)
	if total != 21 {
		t.Errorf("total = %d, mau 21", total)
	}

	rows, _ := store.ListBySection(ctx, schoolID, sectionID)
	if len(rows) != 21 {
		t.Errorf("tersimpan %d slot, mau 21", len(rows))
	}
	for _, r := range rows {
		if r.TimetableSlotSectionName != "VII-A" {
			t.Errorf("snapshot nama section salah: %q", r.TimetableSlotSectionName)
		}
	}
}
