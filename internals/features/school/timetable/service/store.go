// file: internals/features/school/timetable/service/store.go
package service

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	ttModel "schoolku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Port penyimpanan slot
   - implementasi produksi: GormSlotStore (gorm_store.go)
   - implementasi test    : memSlotStore (mock_store_test.go)
   ======================================================= */

type SlotStore interface {
	Create(ctx context.Context, slot *ttModel.TimetableSlotModel) error
	CreateBatch(ctx context.Context, slots []ttModel.TimetableSlotModel) error
	GetByID(ctx context.Context, schoolID, slotID uuid.UUID) (*ttModel.TimetableSlotModel, error)
	DeleteByID(ctx context.Context, schoolID, slotID uuid.UUID) (int64, error)
	DeleteBySection(ctx context.Context, schoolID, sectionID uuid.UUID) (int64, error)

	ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]ttModel.TimetableSlotModel, error)
	ListBySection(ctx context.Context, schoolID, sectionID uuid.UUID) ([]ttModel.TimetableSlotModel, error)
	ListByTeacher(ctx context.Context, schoolID, teacherID uuid.UUID) ([]ttModel.TimetableSlotModel, error)
	ListTeacherDay(ctx context.Context, schoolID, teacherID uuid.UUID, day int) ([]ttModel.TimetableSlotModel, error)
	ListSectionDay(ctx context.Context, schoolID, sectionID uuid.UUID, day int) ([]ttModel.TimetableSlotModel, error)
	ListRoomDay(ctx context.Context, schoolID uuid.UUID, room string, day int) ([]ttModel.TimetableSlotModel, error)

	// Transaction menjalankan fn dengan store yang terikat ke tx.
	// Implementasi memori boleh menjalankan fn langsung.
	Transaction(ctx context.Context, fn func(tx SlotStore) error) error
}

/* =======================================================
   Port sumber pool mapel-guru (CSST) & layout periode
   ======================================================= */

// PoolTeacher kandidat pengajar untuk satu mapel di satu section.
type PoolTeacher struct {
	TeacherID   uuid.UUID
	TeacherName string
}

// SubjectTeacherPool satu mapel beserta daftar guru yang boleh
// mengajarnya di section tsb, urut prioritas (primary dulu).
type SubjectTeacherPool struct {
	SubjectID   uuid.UUID
	SubjectName string
	Teachers    []PoolTeacher
}

type PoolSource interface {
	ListSectionPools(ctx context.Context, schoolID, sectionID uuid.UUID) ([]SubjectTeacherPool, error)
}

type LayoutSource interface {
	PeriodLayout(ctx context.Context, schoolID uuid.UUID) ([]constants.Period, error)
}

/* =======================================================
   TimetableService
   ======================================================= */

type TimetableService struct {
	store    SlotStore
	pools    PoolSource
	layout   LayoutSource
	notifier ScheduleNotifier

	// ValidateOnBulkReplace aktif via TIMETABLE_VALIDATE_BULK.
	ValidateOnBulkReplace bool

	// shuffle bisa dipatch di test supaya urutan generator deterministik.
	shuffle func(n int, swap func(i, j int))
}

func NewTimetableService(store SlotStore, pools PoolSource, layout LayoutSource, notifier ScheduleNotifier) *TimetableService {
	if notifier == nil {
		notifier = &LogNotifier{}
	}
	return &TimetableService{
		store:    store,
		pools:    pools,
		layout:   layout,
		notifier: notifier,
		shuffle:  rand.Shuffle,
	}
}
