// file: internals/features/school/teachers/dto/school_teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/teachers/model"
)

type CreateSchoolTeacherRequest struct {
	SchoolTeacherName   string  `json:"school_teacher_name" validate:"required,max=160"`
	SchoolTeacherTitle  *string `json:"school_teacher_title,omitempty" validate:"omitempty,max=80"`
	SchoolTeacherUserID *string `json:"school_teacher_user_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *CreateSchoolTeacherRequest) Validate(v *validator.Validate) error {
	r.SchoolTeacherName = strings.TrimSpace(r.SchoolTeacherName)
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

func (r *CreateSchoolTeacherRequest) ApplyToModel(dst *m.SchoolTeacherModel, schoolID uuid.UUID) {
	dst.SchoolTeacherSchoolID = schoolID
	dst.SchoolTeacherName = r.SchoolTeacherName
	if r.SchoolTeacherTitle != nil {
		if s := strings.TrimSpace(*r.SchoolTeacherTitle); s != "" {
			dst.SchoolTeacherTitle = &s
		}
	}
	if r.SchoolTeacherUserID != nil {
		if id, err := uuid.Parse(strings.TrimSpace(*r.SchoolTeacherUserID)); err == nil {
			dst.SchoolTeacherUserID = &id
		}
	}
	dst.SchoolTeacherIsActive = true
}

type SchoolTeacherResponse struct {
	SchoolTeacherID       uuid.UUID  `json:"school_teacher_id"`
	SchoolTeacherSchoolID uuid.UUID  `json:"school_teacher_school_id"`
	SchoolTeacherUserID   *uuid.UUID `json:"school_teacher_user_id,omitempty"`
	SchoolTeacherName     string     `json:"school_teacher_name"`
	SchoolTeacherTitle    *string    `json:"school_teacher_title,omitempty"`
	SchoolTeacherIsActive bool       `json:"school_teacher_is_active"`
	SchoolTeacherCreated  time.Time  `json:"school_teacher_created_at"`
}

func NewSchoolTeacherResponse(row *m.SchoolTeacherModel) SchoolTeacherResponse {
	return SchoolTeacherResponse{
		SchoolTeacherID:       row.SchoolTeacherID,
		SchoolTeacherSchoolID: row.SchoolTeacherSchoolID,
		SchoolTeacherUserID:   row.SchoolTeacherUserID,
		SchoolTeacherName:     row.SchoolTeacherName,
		SchoolTeacherTitle:    row.SchoolTeacherTitle,
		SchoolTeacherIsActive: row.SchoolTeacherIsActive,
		SchoolTeacherCreated:  row.SchoolTeacherCreatedAt,
	}
}
