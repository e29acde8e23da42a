// file: internals/features/school/classes/class_sections/model/class_section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassSectionModel struct {
	// PK & tenant
	ClassSectionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_section_id" json:"class_section_id"`
	ClassSectionSchoolID uuid.UUID `gorm:"type:uuid;not null;column:class_section_school_id;index"                json:"class_section_school_id"`

	// Identitas (mis. "VII A")
	ClassSectionName string  `gorm:"type:varchar(120);not null;column:class_section_name" json:"class_section_name"`
	ClassSectionSlug *string `gorm:"type:varchar(160);column:class_section_slug"          json:"class_section_slug,omitempty"`

	// Kapasitas (NULL = unlimited)
	ClassSectionCapacity *int `gorm:"column:class_section_capacity" json:"class_section_capacity,omitempty"`

	// Status & audit
	ClassSectionIsActive  bool           `gorm:"not null;default:true;column:class_section_is_active"                       json:"class_section_is_active"`
	ClassSectionCreatedAt time.Time      `gorm:"column:class_section_created_at;type:timestamptz;not null;autoCreateTime"   json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"column:class_section_updated_at;type:timestamptz;not null;autoUpdateTime"   json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index"                                      json:"class_section_deleted_at,omitempty"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }
