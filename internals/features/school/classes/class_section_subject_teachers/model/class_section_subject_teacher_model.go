// file: internals/features/school/classes/class_section_subject_teachers/model/class_section_subject_teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
	=========================================================
	  MODEL: class_section_subject_teachers (CSST)
	  Satu baris = satu penugasan (kelas, mapel, guru).
	  Generator jadwal membaca baris-baris ini sebagai pool
	  kandidat per mapel (read-only).
	  - Snapshot JSONB: subject & teacher
	  - Generated columns (read-only): subject_name, teacher_name

=========================================================
*/
type ClassSectionSubjectTeacherModel struct {
	// ===== PK
	ClassSectionSubjectTeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_section_subject_teacher_id" json:"class_section_subject_teacher_id"`

	// ===== Tenant
	ClassSectionSubjectTeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;column:class_section_subject_teacher_school_id;index" json:"class_section_subject_teacher_school_id"`

	// ===== Relations (IDs)
	ClassSectionSubjectTeacherSectionID uuid.UUID `gorm:"type:uuid;not null;column:class_section_subject_teacher_section_id;index" json:"class_section_subject_teacher_section_id"`
	ClassSectionSubjectTeacherSubjectID uuid.UUID `gorm:"type:uuid;not null;column:class_section_subject_teacher_subject_id"       json:"class_section_subject_teacher_subject_id"`
	ClassSectionSubjectTeacherTeacherID uuid.UUID `gorm:"type:uuid;not null;column:class_section_subject_teacher_teacher_id"       json:"class_section_subject_teacher_teacher_id"`

	// ===== Urutan preferensi guru dalam satu mapel (0 = primary)
	ClassSectionSubjectTeacherOrderIndex int `gorm:"not null;default:0;column:class_section_subject_teacher_order_index" json:"class_section_subject_teacher_order_index"`

	/* =======================
	   SNAPSHOTS (JSONB)
	======================= */

	// {"subject_name": "...", "subject_code": "..."}
	ClassSectionSubjectTeacherSubjectSnapshot datatypes.JSON `gorm:"type:jsonb;column:class_section_subject_teacher_subject_snapshot" json:"class_section_subject_teacher_subject_snapshot,omitempty"`

	// {"teacher_name": "...", "teacher_title": "..."}
	ClassSectionSubjectTeacherTeacherSnapshot datatypes.JSON `gorm:"type:jsonb;column:class_section_subject_teacher_teacher_snapshot" json:"class_section_subject_teacher_teacher_snapshot,omitempty"`

	// ===== Generated dari snapshot (read-only, dibuat di migration)
	ClassSectionSubjectTeacherSubjectName *string `gorm:"->;column:class_section_subject_teacher_subject_name" json:"class_section_subject_teacher_subject_name,omitempty"`
	ClassSectionSubjectTeacherTeacherName *string `gorm:"->;column:class_section_subject_teacher_teacher_name" json:"class_section_subject_teacher_teacher_name,omitempty"`

	// ===== Status & audit
	ClassSectionSubjectTeacherIsActive  bool           `gorm:"not null;default:true;column:class_section_subject_teacher_is_active"                         json:"class_section_subject_teacher_is_active"`
	ClassSectionSubjectTeacherCreatedAt time.Time      `gorm:"column:class_section_subject_teacher_created_at;type:timestamptz;not null;autoCreateTime"     json:"class_section_subject_teacher_created_at"`
	ClassSectionSubjectTeacherUpdatedAt time.Time      `gorm:"column:class_section_subject_teacher_updated_at;type:timestamptz;not null;autoUpdateTime"     json:"class_section_subject_teacher_updated_at"`
	ClassSectionSubjectTeacherDeletedAt gorm.DeletedAt `gorm:"column:class_section_subject_teacher_deleted_at;index"                                        json:"class_section_subject_teacher_deleted_at,omitempty"`
}

func (ClassSectionSubjectTeacherModel) TableName() string {
	return "class_section_subject_teachers"
}
