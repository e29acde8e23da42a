// file: internals/features/school/teachers/model/school_teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolTeacherModel struct {
	// PK & tenant
	SchoolTeacherID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_teacher_id" json:"school_teacher_id"`
	SchoolTeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;column:school_teacher_school_id;index"                json:"school_teacher_school_id"`

	// Relasi ke akun user (opsional; guru bisa belum punya akun)
	SchoolTeacherUserID *uuid.UUID `gorm:"type:uuid;column:school_teacher_user_id" json:"school_teacher_user_id,omitempty"`

	// Snapshot identitas (dipakai pesan konflik tanpa join)
	SchoolTeacherName  string  `gorm:"type:varchar(160);not null;column:school_teacher_name" json:"school_teacher_name"`
	SchoolTeacherTitle *string `gorm:"type:varchar(80);column:school_teacher_title"          json:"school_teacher_title,omitempty"`

	// Status & audit
	SchoolTeacherIsActive  bool           `gorm:"not null;default:true;column:school_teacher_is_active"                     json:"school_teacher_is_active"`
	SchoolTeacherCreatedAt time.Time      `gorm:"column:school_teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"school_teacher_created_at"`
	SchoolTeacherUpdatedAt time.Time      `gorm:"column:school_teacher_updated_at;type:timestamptz;not null;autoUpdateTime" json:"school_teacher_updated_at"`
	SchoolTeacherDeletedAt gorm.DeletedAt `gorm:"column:school_teacher_deleted_at;index"                                    json:"school_teacher_deleted_at,omitempty"`
}

func (SchoolTeacherModel) TableName() string { return "school_teachers" }
