// file: internals/features/school/timetable/service/mutator_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

func TestAddSlot_Valid(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	in := baseInput(uuid.New(), uuid.New(), uuid.New())

	slot, err := svc.AddSlot(ctx, schoolID, in)
	if err != nil {
		t.Fatalf("AddSlot error: %v", err)
	}
	if slot.TimetableSlotID == uuid.Nil {
		t.Error("slot id kosong")
	}
	if slot.TimetableSlotSchoolID != schoolID {
		t.Error("school id tidak diisi")
	}
	if got := len(store.slots); got != 1 {
		t.Errorf("tersimpan %d slot, mau 1", got)
	}
}

func TestAddSlot_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemSlotStore(), nil, nil)
	schoolID := uuid.New()

	tests := []struct {
		name   string
		mutate func(*SlotInput)
		field  string
	}{
		{"hari 0", func(in *SlotInput) { in.DayOfWeek = 0 }, "day_of_week"},
		{"hari 8", func(in *SlotInput) { in.DayOfWeek = 8 }, "day_of_week"},
		{"jam mulai rusak", func(in *SlotInput) { in.StartTime = "8:00" }, "start_time"},
		{"jam selesai rusak", func(in *SlotInput) { in.EndTime = "24:00" }, "end_time"},
		{"selesai sebelum mulai", func(in *SlotInput) { in.StartTime = "10:00"; in.EndTime = "09:00" }, "end_time"},
		{"durasi nol", func(in *SlotInput) { in.StartTime = "09:00"; in.EndTime = "09:00" }, "end_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput(uuid.New(), uuid.New(), uuid.New())
			tt.mutate(&in)

			_, err := svc.AddSlot(ctx, schoolID, in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("mau ValidationError, dapat %v", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("field = %q, mau %q", vErr.Field, tt.field)
			}
		})
	}
}

func TestAddSlot_ConflictRejected(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	teacherID := uuid.New()

	first := baseInput(uuid.New(), uuid.New(), teacherID)
	if _, err := svc.AddSlot(ctx, schoolID, first); err != nil {
		t.Fatalf("AddSlot pertama error: %v", err)
	}

	// Guru sama, kelas lain, jam bertabrakan.
	second := baseInput(uuid.New(), uuid.New(), teacherID)
	second.StartTime = "08:30"
	second.EndTime = "09:30"

	_, err := svc.AddSlot(ctx, schoolID, second)
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("mau ConflictError, dapat %v", err)
	}
	if cErr.Report.Teacher == nil {
		t.Error("report harus menunjuk teacher conflict")
	}
	if got := len(store.slots); got != 1 {
		t.Errorf("slot bentrok ikut tersimpan: %d slot", got)
	}
}

func TestAddSlot_BackToBackAllowed(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	teacherID := uuid.New()

	first := baseInput(uuid.New(), uuid.New(), teacherID)
	if _, err := svc.AddSlot(ctx, schoolID, first); err != nil {
		t.Fatalf("AddSlot pertama error: %v", err)
	}

	// Slot persis setelahnya (09:00-10:00), guru sama: bukan bentrok.
	second := baseInput(uuid.New(), uuid.New(), teacherID)
	second.StartTime, second.EndTime = "09:00", "10:00"
	if _, err := svc.AddSlot(ctx, schoolID, second); err != nil {
		t.Fatalf("slot back-to-back harusnya lolos: %v", err)
	}
}

func TestDeleteSlot(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	slot := seedSlot(store, schoolID, baseInput(uuid.New(), uuid.New(), uuid.New()))

	if err := svc.DeleteSlot(ctx, schoolID, slot.TimetableSlotID); err != nil {
		t.Fatalf("DeleteSlot error: %v", err)
	}
	// kedua kalinya: sudah hilang
	if err := svc.DeleteSlot(ctx, schoolID, slot.TimetableSlotID); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("mau ErrSlotNotFound, dapat %v", err)
	}
}

func TestDeleteSlot_WrongTenant(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	slot := seedSlot(store, uuid.New(), baseInput(uuid.New(), uuid.New(), uuid.New()))

	// sekolah lain tidak boleh menghapus
	if err := svc.DeleteSlot(ctx, uuid.New(), slot.TimetableSlotID); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("mau ErrSlotNotFound lintas tenant, dapat %v", err)
	}
	if len(store.slots) != 1 {
		t.Error("slot tenant lain ikut terhapus")
	}
}

func TestBulkReplaceSection(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	sectionID := uuid.New()

	// jadwal lama: 2 slot
	old := baseInput(sectionID, uuid.New(), uuid.New())
	seedSlot(store, schoolID, old)
	old.StartTime, old.EndTime = "09:00", "10:00"
	seedSlot(store, schoolID, old)

	// jadwal section lain tidak boleh tersentuh
	other := seedSlot(store, schoolID, baseInput(uuid.New(), uuid.New(), uuid.New()))

	items := []SlotInput{
		baseInput(sectionID, uuid.New(), uuid.New()),
	}
	items[0].StartTime, items[0].EndTime = "10:00", "11:00"

	total, err := svc.BulkReplaceSection(ctx, schoolID, sectionID, items)
	if err != nil {
		t.Fatalf("BulkReplaceSection error: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, mau 1", total)
	}

	rows, _ := store.ListBySection(ctx, schoolID, sectionID)
	if len(rows) != 1 || rows[0].TimetableSlotStartTime != "10:00" {
		t.Errorf("jadwal section tidak terganti: %+v", rows)
	}
	if _, err := store.GetByID(ctx, schoolID, other.TimetableSlotID); err != nil {
		t.Error("slot section lain ikut terhapus")
	}
}

func TestBulkReplaceSection_EmptyClearsSchedule(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	sectionID := uuid.New()
	seedSlot(store, schoolID, baseInput(sectionID, uuid.New(), uuid.New()))

	// dua kali berturut-turut: idempoten
	for i := 0; i < 2; i++ {
		total, err := svc.BulkReplaceSection(ctx, schoolID, sectionID, nil)
		if err != nil {
			t.Fatalf("BulkReplaceSection ke-%d error: %v", i+1, err)
		}
		if total != 0 {
			t.Errorf("total = %d, mau 0", total)
		}
		rows, _ := store.ListBySection(ctx, schoolID, sectionID)
		if len(rows) != 0 {
			t.Errorf("jadwal tidak kosong setelah replace ke-%d: %d slot", i+1, len(rows))
		}
	}
}

func TestBulkReplaceSection_SkipsCrossValidationByDefault(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	sectionID := uuid.New()
	teacherID := uuid.New()

	// Guru sudah terikat jam yang sama di section lain.
	seedSlot(store, schoolID, baseInput(uuid.New(), uuid.New(), teacherID))

	items := []SlotInput{baseInput(sectionID, uuid.New(), teacherID)}

	// Default: lolos tanpa cek bentrok lintas resource.
	if _, err := svc.BulkReplaceSection(ctx, schoolID, sectionID, items); err != nil {
		t.Fatalf("default harusnya lolos: %v", err)
	}

	// Dengan flag: ditolak.
	svc.ValidateOnBulkReplace = true
	_, err := svc.BulkReplaceSection(ctx, schoolID, sectionID, items)
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("dengan validasi mau ConflictError, dapat %v", err)
	}
}

func TestBulkReplaceSection_ValidationRunsBeforeWipe(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	sectionID := uuid.New()
	seedSlot(store, schoolID, baseInput(sectionID, uuid.New(), uuid.New()))

	bad := []SlotInput{baseInput(sectionID, uuid.New(), uuid.New())}
	bad[0].StartTime = "salah"

	if _, err := svc.BulkReplaceSection(ctx, schoolID, sectionID, bad); err == nil {
		t.Fatal("input rusak harusnya ditolak")
	}
	// jadwal lama selamat
	rows, _ := store.ListBySection(ctx, schoolID, sectionID)
	if len(rows) != 1 {
		t.Errorf("jadwal lama hilang padahal input ditolak: %d slot", len(rows))
	}
}

func TestBulkReplaceSection_ForcesSectionID(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	sectionID := uuid.New()

	// item bawa section id orang lain: harus dipaksa ke section target
	items := []SlotInput{baseInput(uuid.New(), uuid.New(), uuid.New())}
	items[0].DayOfWeek = constants.DayWednesday

	if _, err := svc.BulkReplaceSection(ctx, schoolID, sectionID, items); err != nil {
		t.Fatalf("BulkReplaceSection error: %v", err)
	}
	rows, _ := store.ListBySection(ctx, schoolID, sectionID)
	if len(rows) != 1 {
		t.Fatalf("slot tidak masuk section target: %d", len(rows))
	}
}
