// file: internals/features/school/classes/class_sections/dto/class_section_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/classes/class_sections/model"
)

type CreateClassSectionRequest struct {
	ClassSectionName     string  `json:"class_section_name" validate:"required,max=120"`
	ClassSectionSlug     *string `json:"class_section_slug,omitempty" validate:"omitempty,max=160"`
	ClassSectionCapacity *int    `json:"class_section_capacity,omitempty" validate:"omitempty,gte=1"`
}

func (r *CreateClassSectionRequest) Validate(v *validator.Validate) error {
	r.ClassSectionName = strings.TrimSpace(r.ClassSectionName)
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

func (r *CreateClassSectionRequest) ApplyToModel(dst *m.ClassSectionModel, schoolID uuid.UUID) {
	dst.ClassSectionSchoolID = schoolID
	dst.ClassSectionName = r.ClassSectionName
	if r.ClassSectionSlug != nil {
		if s := strings.TrimSpace(*r.ClassSectionSlug); s != "" {
			dst.ClassSectionSlug = &s
		}
	}
	dst.ClassSectionCapacity = r.ClassSectionCapacity
	dst.ClassSectionIsActive = true
}

type ClassSectionResponse struct {
	ClassSectionID       uuid.UUID `json:"class_section_id"`
	ClassSectionSchoolID uuid.UUID `json:"class_section_school_id"`
	ClassSectionName     string    `json:"class_section_name"`
	ClassSectionSlug     *string   `json:"class_section_slug,omitempty"`
	ClassSectionCapacity *int      `json:"class_section_capacity,omitempty"`
	ClassSectionIsActive bool      `json:"class_section_is_active"`
	ClassSectionCreated  time.Time `json:"class_section_created_at"`
}

func NewClassSectionResponse(row *m.ClassSectionModel) ClassSectionResponse {
	return ClassSectionResponse{
		ClassSectionID:       row.ClassSectionID,
		ClassSectionSchoolID: row.ClassSectionSchoolID,
		ClassSectionName:     row.ClassSectionName,
		ClassSectionSlug:     row.ClassSectionSlug,
		ClassSectionCapacity: row.ClassSectionCapacity,
		ClassSectionIsActive: row.ClassSectionIsActive,
		ClassSectionCreated:  row.ClassSectionCreatedAt,
	}
}
