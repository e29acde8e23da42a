// file: internals/features/school/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	// PK & tenant
	SubjectID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectSchoolID uuid.UUID `gorm:"type:uuid;not null;column:subject_school_id;index"                json:"subject_school_id"`

	// Identitas
	SubjectCode string  `gorm:"type:varchar(40);not null;column:subject_code"  json:"subject_code"`
	SubjectName string  `gorm:"type:varchar(120);not null;column:subject_name" json:"subject_name"`
	SubjectSlug *string `gorm:"type:varchar(160);column:subject_slug"          json:"subject_slug,omitempty"`
	SubjectDesc *string `gorm:"type:text;column:subject_desc"                  json:"subject_desc,omitempty"`

	// Status & audit
	SubjectIsActive  bool           `gorm:"not null;default:true;column:subject_is_active"                         json:"subject_is_active"`
	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;type:timestamptz;not null;autoCreateTime"     json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;type:timestamptz;not null;autoUpdateTime"     json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index"                                        json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
