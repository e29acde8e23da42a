// file: internals/features/school/timetable/service/mock_store_test.go
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	ttModel "schoolku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   In-memory fakes untuk test service (tanpa DB)
   ======================================================= */

type memSlotStore struct {
	slots map[uuid.UUID]*ttModel.TimetableSlotModel
}

func newMemSlotStore() *memSlotStore {
	return &memSlotStore{slots: map[uuid.UUID]*ttModel.TimetableSlotModel{}}
}

func (m *memSlotStore) Create(_ context.Context, slot *ttModel.TimetableSlotModel) error {
	if slot.TimetableSlotID == uuid.Nil {
		slot.TimetableSlotID = uuid.New()
	}
	cp := *slot
	m.slots[slot.TimetableSlotID] = &cp
	return nil
}

func (m *memSlotStore) CreateBatch(ctx context.Context, slots []ttModel.TimetableSlotModel) error {
	for i := range slots {
		if err := m.Create(ctx, &slots[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *memSlotStore) GetByID(_ context.Context, schoolID, slotID uuid.UUID) (*ttModel.TimetableSlotModel, error) {
	sl, ok := m.slots[slotID]
	if !ok || sl.TimetableSlotSchoolID != schoolID {
		return nil, ErrSlotNotFound
	}
	cp := *sl
	return &cp, nil
}

func (m *memSlotStore) DeleteByID(_ context.Context, schoolID, slotID uuid.UUID) (int64, error) {
	sl, ok := m.slots[slotID]
	if !ok || sl.TimetableSlotSchoolID != schoolID {
		return 0, nil
	}
	delete(m.slots, slotID)
	return 1, nil
}

func (m *memSlotStore) DeleteBySection(_ context.Context, schoolID, sectionID uuid.UUID) (int64, error) {
	var n int64
	for id, sl := range m.slots {
		if sl.TimetableSlotSchoolID == schoolID && sl.TimetableSlotSectionID == sectionID {
			delete(m.slots, id)
			n++
		}
	}
	return n, nil
}

func (m *memSlotStore) list(filter func(*ttModel.TimetableSlotModel) bool) []ttModel.TimetableSlotModel {
	var out []ttModel.TimetableSlotModel
	for _, sl := range m.slots {
		if filter(sl) {
			out = append(out, *sl)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TimetableSlotDayOfWeek != out[j].TimetableSlotDayOfWeek {
			return out[i].TimetableSlotDayOfWeek < out[j].TimetableSlotDayOfWeek
		}
		return out[i].TimetableSlotStartTime < out[j].TimetableSlotStartTime
	})
	return out
}

func (m *memSlotStore) ListBySchool(_ context.Context, schoolID uuid.UUID) ([]ttModel.TimetableSlotModel, error) {
	return m.list(func(sl *ttModel.TimetableSlotModel) bool {
		return sl.TimetableSlotSchoolID == schoolID
	}), nil
}

func (m *memSlotStore) ListBySection(_ context.Context, schoolID, sectionID uuid.UUID) ([]ttModel.TimetableSlotModel, error) {
	return m.list(func(sl *ttModel.TimetableSlotModel) bool {
		return sl.TimetableSlotSchoolID == schoolID && sl.TimetableSlotSectionID == sectionID
	}), nil
}

func (m *memSlotStore) ListByTeacher(_ context.Context, schoolID, teacherID uuid.UUID) ([]ttModel.TimetableSlotModel, error) {
	return m.list(func(sl *ttModel.TimetableSlotModel) bool {
		return sl.TimetableSlotSchoolID == schoolID && sl.TimetableSlotTeacherID == teacherID
	}), nil
}

func (m *memSlotStore) ListTeacherDay(_ context.Context, schoolID, teacherID uuid.UUID, day int) ([]ttModel.TimetableSlotModel, error) {
	return m.list(func(sl *ttModel.TimetableSlotModel) bool {
		return sl.TimetableSlotSchoolID == schoolID && sl.TimetableSlotTeacherID == teacherID && sl.TimetableSlotDayOfWeek == day
	}), nil
}

func (m *memSlotStore) ListSectionDay(_ context.Context, schoolID, sectionID uuid.UUID, day int) ([]ttModel.TimetableSlotModel, error) {
	return m.list(func(sl *ttModel.TimetableSlotModel) bool {
		return sl.TimetableSlotSchoolID == schoolID && sl.TimetableSlotSectionID == sectionID && sl.TimetableSlotDayOfWeek == day
	}), nil
}

func (m *memSlotStore) ListRoomDay(_ context.Context, schoolID uuid.UUID, room string, day int) ([]ttModel.TimetableSlotModel, error) {
	return m.list(func(sl *ttModel.TimetableSlotModel) bool {
		return sl.TimetableSlotSchoolID == schoolID && sl.TimetableSlotDayOfWeek == day &&
			sl.TimetableSlotRoom != nil && *sl.TimetableSlotRoom == room
	}), nil
}

func (m *memSlotStore) Transaction(_ context.Context, fn func(tx SlotStore) error) error {
	return fn(m)
}

/* ===================== PoolSource / LayoutSource ===================== */

type memPoolSource struct {
	pools []SubjectTeacherPool
	err   error
}

func (p *memPoolSource) ListSectionPools(context.Context, uuid.UUID, uuid.UUID) ([]SubjectTeacherPool, error) {
	return p.pools, p.err
}

type memLayoutSource struct {
	layout []constants.Period
}

func (l *memLayoutSource) PeriodLayout(context.Context, uuid.UUID) ([]constants.Period, error) {
	if l.layout == nil {
		return constants.DefaultPeriodLayout, nil
	}
	return l.layout, nil
}

/* ===================== helpers ===================== */

func newTestService(store *memSlotStore, pools []SubjectTeacherPool, layout []constants.Period) *TimetableService {
	svc := NewTimetableService(store, &memPoolSource{pools: pools}, &memLayoutSource{layout: layout}, LogNotifier{})
	// urutan generator deterministik di test
	svc.shuffle = func(int, func(i, j int)) {}
	return svc
}

func strPtr(s string) *string { return &s }

func seedSlot(store *memSlotStore, schoolID uuid.UUID, in SlotInput) *ttModel.TimetableSlotModel {
	slot := newSlotModel(schoolID, &in)
	_ = store.Create(context.Background(), slot)
	return slot
}
