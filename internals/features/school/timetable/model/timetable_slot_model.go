// file: internals/features/school/timetable/model/timetable_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/*
	=========================================================
	  MODEL: timetable_slots
	  Satu baris = satu sel jadwal mingguan (kelas, mapel,
	  guru, hari, jam, ruang) dalam satu tenant.

	  Catatan desain:
	  - HARD delete (tanpa gorm.DeletedAt): lifecycle slot
	    adalah delete-and-recreate; bulk replace menghapus
	    seluruh minggu satu kelas lalu insert ulang.
	  - Unique index (school, section, day, start) menolak
	    duplikat persis di level storage.
	  - Snapshot nama (section/subject/teacher) disimpan di
	    baris supaya pesan konflik tidak butuh join.

=========================================================
*/
type TimetableSlotModel struct {
	// ===== PK
	TimetableSlotID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_slot_id" json:"timetable_slot_id"`

	// ===== Tenant
	TimetableSlotSchoolID uuid.UUID `gorm:"type:uuid;not null;column:timetable_slot_school_id;index:idx_timetable_slot_school" json:"timetable_slot_school_id"`

	// ===== Relations (IDs, semua wajib)
	TimetableSlotSectionID uuid.UUID `gorm:"type:uuid;not null;column:timetable_slot_section_id;uniqueIndex:uq_timetable_slot_section_day_start" json:"timetable_slot_section_id"`
	TimetableSlotSubjectID uuid.UUID `gorm:"type:uuid;not null;column:timetable_slot_subject_id" json:"timetable_slot_subject_id"`
	TimetableSlotTeacherID uuid.UUID `gorm:"type:uuid;not null;column:timetable_slot_teacher_id;index:idx_timetable_slot_teacher_day" json:"timetable_slot_teacher_id"`

	// ===== Pola mingguan (hari 1..7, jam "HH:MM", interval half-open)
	TimetableSlotDayOfWeek int    `gorm:"type:int;not null;column:timetable_slot_day_of_week;uniqueIndex:uq_timetable_slot_section_day_start;index:idx_timetable_slot_teacher_day" json:"timetable_slot_day_of_week"`
	TimetableSlotStartTime string `gorm:"type:varchar(5);not null;column:timetable_slot_start_time;uniqueIndex:uq_timetable_slot_section_day_start" json:"timetable_slot_start_time"`
	TimetableSlotEndTime   string `gorm:"type:varchar(5);not null;column:timetable_slot_end_time" json:"timetable_slot_end_time"`

	// ===== Ruang (free text, NULL = tanpa ruang khusus)
	TimetableSlotRoom *string `gorm:"type:varchar(80);column:timetable_slot_room" json:"timetable_slot_room,omitempty"`

	// ===== Snapshot nama (untuk pesan konflik & tampilan grid)
	TimetableSlotSectionName string `gorm:"type:varchar(160);not null;column:timetable_slot_section_name" json:"timetable_slot_section_name"`
	TimetableSlotSubjectName string `gorm:"type:varchar(160);not null;column:timetable_slot_subject_name" json:"timetable_slot_subject_name"`
	TimetableSlotTeacherName string `gorm:"type:varchar(160);not null;column:timetable_slot_teacher_name" json:"timetable_slot_teacher_name"`

	// ===== Audit
	TimetableSlotCreatedAt time.Time `gorm:"column:timetable_slot_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_slot_created_at"`
	TimetableSlotUpdatedAt time.Time `gorm:"column:timetable_slot_updated_at;type:timestamptz;not null;autoUpdateTime" json:"timetable_slot_updated_at"`
}

func (TimetableSlotModel) TableName() string { return "timetable_slots" }
