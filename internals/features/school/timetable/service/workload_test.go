// file: internals/features/school/timetable/service/workload_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

func TestTeacherWorkload(t *testing.T) {
	ctx := context.Background()
	store := newMemSlotStore()
	svc := newTestService(store, nil, nil)

	schoolID := uuid.New()
	teacherID := uuid.New()

	// 60 menit Senin + 30 menit Rabu = 1.5 jam, lintas section.
	a := baseInput(uuid.New(), uuid.New(), teacherID)
	seedSlot(store, schoolID, a)

	b := baseInput(uuid.New(), uuid.New(), teacherID)
	b.DayOfWeek = constants.DayWednesday
	b.StartTime, b.EndTime = "10:00", "10:30"
	seedSlot(store, schoolID, b)

	// guru lain tidak ikut dihitung
	seedSlot(store, schoolID, baseInput(uuid.New(), uuid.New(), uuid.New()))

	sum, err := svc.TeacherWorkload(ctx, schoolID, teacherID)
	if err != nil {
		t.Fatalf("TeacherWorkload error: %v", err)
	}
	if sum.TotalSlots != 2 {
		t.Errorf("TotalSlots = %d, mau 2", sum.TotalSlots)
	}
	if sum.TotalMinutes != 90 {
		t.Errorf("TotalMinutes = %d, mau 90", sum.TotalMinutes)
	}
	if sum.TotalHours != 1.5 {
		t.Errorf("TotalHours = %v, mau 1.5", sum.TotalHours)
	}
	if sum.PerDay["Senin"] != 60 || sum.PerDay["Rabu"] != 30 {
		t.Errorf("PerDay salah: %v", sum.PerDay)
	}
	// urut hari lalu jam
	if sum.Slots[0].DayOfWeek != constants.DayMonday || sum.Slots[1].DayOfWeek != constants.DayWednesday {
		t.Errorf("urutan slot salah: %+v", sum.Slots)
	}
}

func TestTeacherWorkload_Empty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemSlotStore(), nil, nil)

	sum, err := svc.TeacherWorkload(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("TeacherWorkload error: %v", err)
	}
	if sum.TotalSlots != 0 || sum.TotalMinutes != 0 || sum.TotalHours != 0 {
		t.Errorf("guru tanpa jadwal harus nol: %+v", sum)
	}
}

func TestRoundHours(t *testing.T) {
	cases := map[int]float64{
		0:   0,
		45:  0.8,
		60:  1,
		90:  1.5,
		100: 1.7,
	}
	for minutes, want := range cases {
		if got := roundHours(minutes); got != want {
			t.Errorf("roundHours(%d) = %v, mau %v", minutes, got, want)
		}
	}
}
