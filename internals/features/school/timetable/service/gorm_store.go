// file: internals/features/school/timetable/service/gorm_store.go
package service

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	csstModel "schoolku_backend/internals/features/school/classes/class_section_subject_teachers/model"
	ttModel "schoolku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Implementasi GORM untuk SlotStore / PoolSource / LayoutSource
   ======================================================= */

type GormSlotStore struct {
	db *gorm.DB
}

func NewGormSlotStore(db *gorm.DB) *GormSlotStore { return &GormSlotStore{db: db} }

func (s *GormSlotStore) Create(ctx context.Context, slot *ttModel.TimetableSlotModel) error {
	return s.db.WithContext(ctx).Create(slot).Error
}

func (s *GormSlotStore) CreateBatch(ctx context.Context, slots []ttModel.TimetableSlotModel) error {
	if len(slots) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&slots).Error
}

func (s *GormSlotStore) GetByID(ctx context.Context, schoolID, slotID uuid.UUID) (*ttModel.TimetableSlotModel, error) {
	var slot ttModel.TimetableSlotModel
	err := s.db.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_id = ?", schoolID, slotID).
		First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *GormSlotStore) DeleteByID(ctx context.Context, schoolID, slotID uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_id = ?", schoolID, slotID).
		Delete(&ttModel.TimetableSlotModel{})
	return res.RowsAffected, res.Error
}

func (s *GormSlotStore) DeleteBySection(ctx context.Context, schoolID, sectionID uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_section_id = ?", schoolID, sectionID).
		Delete(&ttModel.TimetableSlotModel{})
	return res.RowsAffected, res.Error
}

func (s *GormSlotStore) ListBySchool(ctx context.Context, schoolID uuid.UUID) ([]ttModel.TimetableSlotModel, error) {
	var slots []ttModel.TimetableSlotModel
	err := s.db.WithContext(ctx).
		Where("timetable_slot_school_id = ?", schoolID).
		Order("timetable_slot_day_of_week ASC, timetable_slot_start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (s *GormSlotStore) ListBySection(ctx context.Context, schoolID, sectionID uuid.UUID) ([]ttModel.TimetableSlotModel, error) {
	var slots []ttModel.TimetableSlotModel
	err := s.db.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_section_id = ?", schoolID, sectionID).
		Order("timetable_slot_day_of_week ASC, timetable_slot_start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (s *GormSlotStore) ListByTeacher(ctx context.Context, schoolID, teacherID uuid.UUID) ([]ttModel.TimetableSlotModel, error) {
	var slots []ttModel.TimetableSlotModel
	err := s.db.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_teacher_id = ?", schoolID, teacherID).
		Order("timetable_slot_day_of_week ASC, timetable_slot_start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (s *GormSlotStore) ListTeacherDay(ctx context.Context, schoolID, teacherID uuid.UUID, day int) ([]ttModel.TimetableSlotModel, error) {
	var slots []ttModel.TimetableSlotModel
	err := s.db.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_teacher_id = ? AND timetable_slot_day_of_week = ?", schoolID, teacherID, day).
		Find(&slots).Error
	return slots, err
}

func (s *GormSlotStore) ListSectionDay(ctx context.Context, schoolID, sectionID uuid.UUID, day int) ([]ttModel.TimetableSlotModel, error) {
	var slots []ttModel.TimetableSlotModel
	err := s.db.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_section_id = ? AND timetable_slot_day_of_week = ?", schoolID, sectionID, day).
		Find(&slots).Error
	return slots, err
}

func (s *GormSlotStore) ListRoomDay(ctx context.Context, schoolID uuid.UUID, room string, day int) ([]ttModel.TimetableSlotModel, error) {
	var slots []ttModel.TimetableSlotModel
	err := s.db.WithContext(ctx).
		Where("timetable_slot_school_id = ? AND timetable_slot_room = ? AND timetable_slot_day_of_week = ?", schoolID, room, day).
		Find(&slots).Error
	return slots, err
}

func (s *GormSlotStore) Transaction(ctx context.Context, fn func(tx SlotStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormSlotStore{db: tx})
	})
}

/* =======================================================
   PoolSource: baca penugasan CSST per section
   ======================================================= */

type GormPoolSource struct {
	db *gorm.DB
}

func NewGormPoolSource(db *gorm.DB) *GormPoolSource { return &GormPoolSource{db: db} }

// ListSectionPools mengelompokkan baris CSST aktif jadi pool per mapel.
// Urutan guru mengikuti order_index (0 = primary duluan).
func (p *GormPoolSource) ListSectionPools(ctx context.Context, schoolID, sectionID uuid.UUID) ([]SubjectTeacherPool, error) {
	var rows []csstModel.ClassSectionSubjectTeacherModel
	err := p.db.WithContext(ctx).
		Where("class_section_subject_teacher_school_id = ? AND class_section_subject_teacher_section_id = ? AND class_section_subject_teacher_is_active = TRUE",
			schoolID, sectionID).
		Order("class_section_subject_teacher_subject_id ASC, class_section_subject_teacher_order_index ASC, class_section_subject_teacher_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	var pools []SubjectTeacherPool
	index := map[uuid.UUID]int{}
	for i := range rows {
		r := &rows[i]
		pos, ok := index[r.ClassSectionSubjectTeacherSubjectID]
		if !ok {
			pos = len(pools)
			index[r.ClassSectionSubjectTeacherSubjectID] = pos
			pools = append(pools, SubjectTeacherPool{
				SubjectID:   r.ClassSectionSubjectTeacherSubjectID,
				SubjectName: strOrEmpty(r.ClassSectionSubjectTeacherSubjectName),
			})
		}
		pools[pos].Teachers = append(pools[pos].Teachers, PoolTeacher{
			TeacherID:   r.ClassSectionSubjectTeacherTeacherID,
			TeacherName: strOrEmpty(r.ClassSectionSubjectTeacherTeacherName),
		})
	}
	return pools, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

/* =======================================================
   LayoutSource: setting per sekolah, fallback layout default
   ======================================================= */

type GormLayoutSource struct {
	db *gorm.DB
}

func NewGormLayoutSource(db *gorm.DB) *GormLayoutSource { return &GormLayoutSource{db: db} }

func (l *GormLayoutSource) PeriodLayout(ctx context.Context, schoolID uuid.UUID) ([]constants.Period, error) {
	var setting ttModel.TimetableSettingModel
	err := l.db.WithContext(ctx).
		Where("timetable_setting_school_id = ?", schoolID).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return constants.DefaultPeriodLayout, nil
	}
	if err != nil {
		return nil, err
	}

	var periods []constants.Period
	if err := sonic.Unmarshal(setting.TimetableSettingPeriods, &periods); err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return constants.DefaultPeriodLayout, nil
	}
	return periods, nil
}
