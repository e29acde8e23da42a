// file: internals/features/school/timetable/model/timetable_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimetableSettingModel menyimpan layout periode harian per sekolah
// (JSONB array of {label, start_time, end_time, is_break}).
// Kalau belum ada barisnya, layanan fallback ke layout default.
type TimetableSettingModel struct {
	TimetableSettingID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_setting_id" json:"timetable_setting_id"`
	TimetableSettingSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:timetable_setting_school_id"          json:"timetable_setting_school_id"`

	TimetableSettingPeriods datatypes.JSON `gorm:"type:jsonb;not null;column:timetable_setting_periods" json:"timetable_setting_periods"`

	TimetableSettingCreatedAt time.Time `gorm:"column:timetable_setting_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_setting_created_at"`
	TimetableSettingUpdatedAt time.Time `gorm:"column:timetable_setting_updated_at;type:timestamptz;not null;autoUpdateTime" json:"timetable_setting_updated_at"`
}

func (TimetableSettingModel) TableName() string { return "timetable_settings" }
