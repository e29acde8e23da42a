// file: internals/features/school/timetable/dto/timetable_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	ttModel "schoolku_backend/internals/features/school/timetable/model"
	"schoolku_backend/internals/features/school/timetable/service"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateTimetableSlotRequest struct {
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	DayOfWeek int       `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime string    `json:"start_time" validate:"required,len=5"`
	EndTime   string    `json:"end_time" validate:"required,len=5"`
	Room      *string   `json:"room,omitempty" validate:"omitempty,max=80"`
}

func (r *CreateTimetableSlotRequest) Validate(v *validator.Validate) error {
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

// ValidateTimetableSlotRequest dry-run cek bentrok. ExcludeSlotID
// diisi saat re-validasi slot yang sedang diedit.
type ValidateTimetableSlotRequest struct {
	CreateTimetableSlotRequest
	ExcludeSlotID *uuid.UUID `json:"exclude_slot_id,omitempty"`
}

type BulkReplaceTimetableRequest struct {
	Items []CreateTimetableSlotRequest `json:"items" validate:"dive"`
}

func (r *BulkReplaceTimetableRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	for i := range r.Items {
		r.Items[i].StartTime = strings.TrimSpace(r.Items[i].StartTime)
		r.Items[i].EndTime = strings.TrimSpace(r.Items[i].EndTime)
	}
	return v.Struct(r)
}

type PutTimetableSettingRequest struct {
	Periods []constants.Period `json:"periods" validate:"required,min=1,dive"`
}

func (r *PutTimetableSettingRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

/* =======================================================
   Response DTOs
   ======================================================= */

type TimetableSlotResponse struct {
	SlotID      uuid.UUID `json:"timetable_slot_id"`
	SchoolID    uuid.UUID `json:"school_id"`
	SectionID   uuid.UUID `json:"section_id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	SectionName string    `json:"section_name"`
	SubjectName string    `json:"subject_name"`
	TeacherName string    `json:"teacher_name"`
	Room        *string   `json:"room,omitempty"`
	DayOfWeek   int       `json:"day_of_week"`
	DayName     string    `json:"day_name"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTimetableSlotResponse(row *ttModel.TimetableSlotModel) TimetableSlotResponse {
	return TimetableSlotResponse{
		SlotID:      row.TimetableSlotID,
		SchoolID:    row.TimetableSlotSchoolID,
		SectionID:   row.TimetableSlotSectionID,
		SubjectID:   row.TimetableSlotSubjectID,
		TeacherID:   row.TimetableSlotTeacherID,
		SectionName: row.TimetableSlotSectionName,
		SubjectName: row.TimetableSlotSubjectName,
		TeacherName: row.TimetableSlotTeacherName,
		Room:        row.TimetableSlotRoom,
		DayOfWeek:   row.TimetableSlotDayOfWeek,
		DayName:     constants.DayNames[row.TimetableSlotDayOfWeek],
		StartTime:   row.TimetableSlotStartTime,
		EndTime:     row.TimetableSlotEndTime,
		CreatedAt:   row.TimetableSlotCreatedAt,
	}
}

func NewTimetableSlotResponses(rows []ttModel.TimetableSlotModel) []TimetableSlotResponse {
	out := make([]TimetableSlotResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewTimetableSlotResponse(&rows[i]))
	}
	return out
}

// ValidateSlotResponse hasil dry-run: report apa adanya + daftar
// pesan siap tampil.
type ValidateSlotResponse struct {
	HasConflict bool                    `json:"has_conflict"`
	Messages    []string                `json:"messages,omitempty"`
	Report      *service.ConflictReport `json:"report"`
}

func NewValidateSlotResponse(report *service.ConflictReport) ValidateSlotResponse {
	return ValidateSlotResponse{
		HasConflict: report.HasConflict(),
		Messages:    report.Messages(),
		Report:      report,
	}
}

type TimetableSettingResponse struct {
	SchoolID  uuid.UUID          `json:"school_id"`
	Periods   []constants.Period `json:"periods"`
	IsDefault bool               `json:"is_default"`
}
