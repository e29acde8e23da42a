// file: internals/features/school/classes/class_section_subject_teachers/dto/class_section_subject_teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/classes/class_section_subject_teachers/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateCSSTRequest struct {
	ClassSectionSubjectTeacherSectionID  string `json:"class_section_subject_teacher_section_id" validate:"required,uuid4"`
	ClassSectionSubjectTeacherSubjectID  string `json:"class_section_subject_teacher_subject_id" validate:"required,uuid4"`
	ClassSectionSubjectTeacherTeacherID  string `json:"class_section_subject_teacher_teacher_id" validate:"required,uuid4"`
	ClassSectionSubjectTeacherOrderIndex *int   `json:"class_section_subject_teacher_order_index,omitempty" validate:"omitempty,gte=0"`
}

func (r *CreateCSSTRequest) Validate(v *validator.Validate) error {
	r.ClassSectionSubjectTeacherSectionID = strings.TrimSpace(r.ClassSectionSubjectTeacherSectionID)
	r.ClassSectionSubjectTeacherSubjectID = strings.TrimSpace(r.ClassSectionSubjectTeacherSubjectID)
	r.ClassSectionSubjectTeacherTeacherID = strings.TrimSpace(r.ClassSectionSubjectTeacherTeacherID)
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

// ApplyToModel mengisi field dasar; snapshot diisi controller dari
// baris subject/teacher (pola snapshot tenant-safe).
func (r *CreateCSSTRequest) ApplyToModel(dst *m.ClassSectionSubjectTeacherModel, schoolID uuid.UUID) {
	dst.ClassSectionSubjectTeacherSchoolID = schoolID
	dst.ClassSectionSubjectTeacherSectionID = uuid.MustParse(r.ClassSectionSubjectTeacherSectionID)
	dst.ClassSectionSubjectTeacherSubjectID = uuid.MustParse(r.ClassSectionSubjectTeacherSubjectID)
	dst.ClassSectionSubjectTeacherTeacherID = uuid.MustParse(r.ClassSectionSubjectTeacherTeacherID)
	if r.ClassSectionSubjectTeacherOrderIndex != nil {
		dst.ClassSectionSubjectTeacherOrderIndex = *r.ClassSectionSubjectTeacherOrderIndex
	}
	dst.ClassSectionSubjectTeacherIsActive = true
}

/* =======================================================
   Response DTO
   ======================================================= */

type CSSTResponse struct {
	ClassSectionSubjectTeacherID         uuid.UUID `json:"class_section_subject_teacher_id"`
	ClassSectionSubjectTeacherSchoolID   uuid.UUID `json:"class_section_subject_teacher_school_id"`
	ClassSectionSubjectTeacherSectionID  uuid.UUID `json:"class_section_subject_teacher_section_id"`
	ClassSectionSubjectTeacherSubjectID  uuid.UUID `json:"class_section_subject_teacher_subject_id"`
	ClassSectionSubjectTeacherTeacherID  uuid.UUID `json:"class_section_subject_teacher_teacher_id"`
	ClassSectionSubjectTeacherOrderIndex int       `json:"class_section_subject_teacher_order_index"`
	ClassSectionSubjectTeacherSubjectName *string  `json:"class_section_subject_teacher_subject_name,omitempty"`
	ClassSectionSubjectTeacherTeacherName *string  `json:"class_section_subject_teacher_teacher_name,omitempty"`
	ClassSectionSubjectTeacherIsActive   bool      `json:"class_section_subject_teacher_is_active"`
	ClassSectionSubjectTeacherCreatedAt  time.Time `json:"class_section_subject_teacher_created_at"`
}

func NewCSSTResponse(row *m.ClassSectionSubjectTeacherModel) CSSTResponse {
	return CSSTResponse{
		ClassSectionSubjectTeacherID:          row.ClassSectionSubjectTeacherID,
		ClassSectionSubjectTeacherSchoolID:    row.ClassSectionSubjectTeacherSchoolID,
		ClassSectionSubjectTeacherSectionID:   row.ClassSectionSubjectTeacherSectionID,
		ClassSectionSubjectTeacherSubjectID:   row.ClassSectionSubjectTeacherSubjectID,
		ClassSectionSubjectTeacherTeacherID:   row.ClassSectionSubjectTeacherTeacherID,
		ClassSectionSubjectTeacherOrderIndex:  row.ClassSectionSubjectTeacherOrderIndex,
		ClassSectionSubjectTeacherSubjectName: row.ClassSectionSubjectTeacherSubjectName,
		ClassSectionSubjectTeacherTeacherName: row.ClassSectionSubjectTeacherTeacherName,
		ClassSectionSubjectTeacherIsActive:    row.ClassSectionSubjectTeacherIsActive,
		ClassSectionSubjectTeacherCreatedAt:   row.ClassSectionSubjectTeacherCreatedAt,
	}
}
