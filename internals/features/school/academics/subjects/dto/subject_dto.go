// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/academics/subjects/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateSubjectRequest struct {
	SubjectCode string  `json:"subject_code" validate:"required,max=40"`
	SubjectName string  `json:"subject_name" validate:"required,max=120"`
	SubjectSlug *string `json:"subject_slug,omitempty" validate:"omitempty,max=160"`
	SubjectDesc *string `json:"subject_desc,omitempty"`
}

func (r *CreateSubjectRequest) Validate(v *validator.Validate) error {
	r.SubjectCode = strings.TrimSpace(r.SubjectCode)
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

func (r *CreateSubjectRequest) ApplyToModel(dst *m.SubjectModel, schoolID uuid.UUID) {
	dst.SubjectSchoolID = schoolID
	dst.SubjectCode = r.SubjectCode
	dst.SubjectName = r.SubjectName
	dst.SubjectSlug = strPtrOrNil(r.SubjectSlug)
	dst.SubjectDesc = r.SubjectDesc
	dst.SubjectIsActive = true
}

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* =======================================================
   Response DTO
   ======================================================= */

type SubjectResponse struct {
	SubjectID       uuid.UUID `json:"subject_id"`
	SubjectSchoolID uuid.UUID `json:"subject_school_id"`
	SubjectCode     string    `json:"subject_code"`
	SubjectName     string    `json:"subject_name"`
	SubjectSlug     *string   `json:"subject_slug,omitempty"`
	SubjectDesc     *string   `json:"subject_desc,omitempty"`
	SubjectIsActive bool      `json:"subject_is_active"`
	SubjectCreated  time.Time `json:"subject_created_at"`
}

func NewSubjectResponse(row *m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:       row.SubjectID,
		SubjectSchoolID: row.SubjectSchoolID,
		SubjectCode:     row.SubjectCode,
		SubjectName:     row.SubjectName,
		SubjectSlug:     row.SubjectSlug,
		SubjectDesc:     row.SubjectDesc,
		SubjectIsActive: row.SubjectIsActive,
		SubjectCreated:  row.SubjectCreatedAt,
	}
}
