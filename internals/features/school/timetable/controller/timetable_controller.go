// file: internals/features/school/timetable/controller/timetable_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	subjectModel "schoolku_backend/internals/features/school/academics/subjects/model"
	sectionModel "schoolku_backend/internals/features/school/classes/class_sections/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	d "schoolku_backend/internals/features/school/timetable/dto"
	ttModel "schoolku_backend/internals/features/school/timetable/model"
	"schoolku_backend/internals/features/school/timetable/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.TimetableService
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	var notifier service.ScheduleNotifier
	if configs.RedisURL != "" {
		rn, err := service.NewRedisNotifier(configs.RedisURL)
		if err != nil {
			log.Printf("⚠️ REDIS_URL invalid, notifikasi jadwal pakai log: %v", err)
		} else {
			notifier = rn
		}
	}

	svc := service.NewTimetableService(
		service.NewGormSlotStore(db),
		service.NewGormPoolSource(db),
		service.NewGormLayoutSource(db),
		notifier,
	)
	svc.ValidateOnBulkReplace = configs.TimetableValidateBulk

	return &TimetableController{DB: db, Validate: validator.New(), Service: svc}
}

type pgSQLErr interface{ SQLState() string }

func mapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23P01":
			return http.StatusConflict, "Jadwal bentrok (exclusion violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(http.StatusBadRequest, name+" invalid")
	}
	return id, nil
}

// writeServiceError menerjemahkan error bertipe dari service ke
// response JSON standar.
func (ctl *TimetableController) writeServiceError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validasi gagal",
			map[string]string{vErr.Field: vErr.Reason})
	}
	var cErr *service.ConflictError
	if errors.As(err, &cErr) {
		return helper.ErrorWithDetails(c, http.StatusConflict, "Jadwal bentrok", fiber.Map{
			"messages": cErr.Report.Messages(),
			"report":   cErr.Report,
		})
	}
	if errors.Is(err, service.ErrSlotNotFound) {
		return fiber.NewError(http.StatusNotFound, "Slot jadwal tidak ditemukan")
	}
	var gErr *service.GenerationError
	if errors.As(err, &gErr) {
		return helper.Error(c, http.StatusBadGateway, gErr.Error())
	}
	code, msg := mapPGError(err)
	return helper.Error(c, code, msg)
}

/* =========================
   Snapshot lookups (tenant scope)
   ========================= */

func (ctl *TimetableController) sectionName(schoolID, sectionID uuid.UUID) (string, error) {
	var row sectionModel.ClassSectionModel
	if err := ctl.DB.
		Where("class_section_id = ? AND class_section_school_id = ?", sectionID, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(http.StatusNotFound, "Kelas tidak ditemukan")
		}
		return "", err
	}
	return row.ClassSectionName, nil
}

func (ctl *TimetableController) subjectName(schoolID, subjectID uuid.UUID) (string, error) {
	var row subjectModel.SubjectModel
	if err := ctl.DB.
		Where("subject_id = ? AND subject_school_id = ?", subjectID, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(http.StatusNotFound, "Mapel tidak ditemukan")
		}
		return "", err
	}
	return row.SubjectName, nil
}

func (ctl *TimetableController) teacherName(schoolID, teacherID uuid.UUID) (string, error) {
	var row teacherModel.SchoolTeacherModel
	if err := ctl.DB.
		Where("school_teacher_id = ? AND school_teacher_school_id = ?", teacherID, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(http.StatusNotFound, "Guru tidak ditemukan")
		}
		return "", err
	}
	return row.SchoolTeacherName, nil
}

func (ctl *TimetableController) slotInputFromRequest(schoolID uuid.UUID, req *d.CreateTimetableSlotRequest) (service.SlotInput, error) {
	secName, err := ctl.sectionName(schoolID, req.SectionID)
	if err != nil {
		return service.SlotInput{}, err
	}
	subName, err := ctl.subjectName(schoolID, req.SubjectID)
	if err != nil {
		return service.SlotInput{}, err
	}
	tchName, err := ctl.teacherName(schoolID, req.TeacherID)
	if err != nil {
		return service.SlotInput{}, err
	}
	return service.SlotInput{
		SectionID:   req.SectionID,
		SubjectID:   req.SubjectID,
		TeacherID:   req.TeacherID,
		SectionName: secName,
		SubjectName: subName,
		TeacherName: tchName,
		Room:        req.Room,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

/* =========================
   CreateSlot — POST /timetable-slots
   ========================= */

func (ctl *TimetableController) CreateSlot(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req d.CreateTimetableSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	in, err := ctl.slotInputFromRequest(schoolID, &req)
	if err != nil {
		return err
	}

	slot, err := ctl.Service.AddSlot(c.UserContext(), schoolID, in)
	if err != nil {
		return ctl.writeServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(d.NewTimetableSlotResponse(slot))
}

/* =========================
   ValidateSlot — POST /timetable-slots/validate (dry-run)
   ========================= */

func (ctl *TimetableController) ValidateSlot(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req d.ValidateTimetableSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	in, err := ctl.slotInputFromRequest(schoolID, &req.CreateTimetableSlotRequest)
	if err != nil {
		return err
	}

	report, err := ctl.Service.ValidateSlot(c.UserContext(), schoolID, in, req.ExcludeSlotID)
	if err != nil {
		return ctl.writeServiceError(c, err)
	}
	return helper.Success(c, "Validasi selesai", d.NewValidateSlotResponse(report))
}

/* =========================
   DeleteSlot — DELETE /timetable-slots/:id
   ========================= */

func (ctl *TimetableController) DeleteSlot(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := ctl.Service.DeleteSlot(c.UserContext(), schoolID, id); err != nil {
		return ctl.writeServiceError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

/* =========================
   BulkReplace — PUT /class-sections/:id/timetable
   ========================= */

func (ctl *TimetableController) BulkReplaceSection(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	sectionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req d.BulkReplaceTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	items := make([]service.SlotInput, 0, len(req.Items))
	for i := range req.Items {
		req.Items[i].SectionID = sectionID
		in, err := ctl.slotInputFromRequest(schoolID, &req.Items[i])
		if err != nil {
			return err
		}
		items = append(items, in)
	}

	total, err := ctl.Service.BulkReplaceSection(c.UserContext(), schoolID, sectionID, items)
	if err != nil {
		return ctl.writeServiceError(c, err)
	}
	return helper.Success(c, "Jadwal kelas diganti", fiber.Map{"total_slots": total})
}

/* =========================
   Generate — POST /class-sections/:id/timetable/generate
   ?commit=true untuk langsung simpan (break & Free Period dibuang)
   ========================= */

func (ctl *TimetableController) GenerateSection(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	sectionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	secName, err := ctl.sectionName(schoolID, sectionID)
	if err != nil {
		return err
	}

	cells, err := ctl.Service.GenerateSectionTimetable(c.UserContext(), schoolID, sectionID)
	if err != nil {
		return ctl.writeServiceError(c, err)
	}

	committed := false
	saved := 0
	if strings.EqualFold(c.Query("commit"), "true") {
		saved, err = ctl.Service.CommitCandidates(c.UserContext(), schoolID, sectionID, secName, cells)
		if err != nil {
			return ctl.writeServiceError(c, err)
		}
		committed = true
	}

	return helper.Success(c, "Jadwal berhasil digenerate", fiber.Map{
		"section_id":   sectionID,
		"section_name": secName,
		"committed":    committed,
		"saved_slots":  saved,
		"cells":        cells,
	})
}

/* =========================
   Read views
   ========================= */

// SectionTimetable — GET /class-sections/:id/timetable
func (ctl *TimetableController) SectionTimetable(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	sectionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	store := service.NewGormSlotStore(ctl.DB)
	rows, err := store.ListBySection(c.UserContext(), schoolID, sectionID)
	if err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}
	return helper.Success(c, "OK", d.NewTimetableSlotResponses(rows))
}

// TeacherTimetable — GET /teachers/:id/timetable
func (ctl *TimetableController) TeacherTimetable(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	teacherID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	store := service.NewGormSlotStore(ctl.DB)
	rows, err := store.ListByTeacher(c.UserContext(), schoolID, teacherID)
	if err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}
	return helper.Success(c, "OK", d.NewTimetableSlotResponses(rows))
}

// SchoolTimetable — GET /timetable (grid seluruh sekolah)
func (ctl *TimetableController) SchoolTimetable(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	store := service.NewGormSlotStore(ctl.DB)
	rows, err := store.ListBySchool(c.UserContext(), schoolID)
	if err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}
	return helper.Success(c, "OK", d.NewTimetableSlotResponses(rows))
}

// TeacherWorkload — GET /teachers/:id/workload
func (ctl *TimetableController) TeacherWorkload(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	teacherID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	sum, err := ctl.Service.TeacherWorkload(c.UserContext(), schoolID, teacherID)
	if err != nil {
		return ctl.writeServiceError(c, err)
	}
	return helper.Success(c, "OK", sum)
}

/* =========================
   Settings — GET/PUT /timetable-settings
   ========================= */

func (ctl *TimetableController) GetSetting(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var row ttModel.TimetableSettingModel
	err = ctl.DB.
		Where("timetable_setting_school_id = ?", schoolID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Success(c, "OK", d.TimetableSettingResponse{
			SchoolID:  schoolID,
			Periods:   constants.DefaultPeriodLayout,
			IsDefault: true,
		})
	}
	if err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	var periods []constants.Period
	if err := sonic.Unmarshal(row.TimetableSettingPeriods, &periods); err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", d.TimetableSettingResponse{
		SchoolID: schoolID,
		Periods:  periods,
	})
}

func (ctl *TimetableController) PutSetting(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req d.PutTimetableSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	for i, p := range req.Periods {
		if !service.ValidTimeString(p.StartTime) || !service.ValidTimeString(p.EndTime) ||
			service.MinutesOfDay(p.StartTime) >= service.MinutesOfDay(p.EndTime) {
			return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validasi gagal",
				map[string]string{"periods": "periode #" + strconv.Itoa(i+1) + " punya jam tidak valid"})
		}
	}

	raw, err := sonic.Marshal(req.Periods)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	row := ttModel.TimetableSettingModel{
		TimetableSettingSchoolID: schoolID,
		TimetableSettingPeriods:  datatypes.JSON(raw),
	}
	if err := ctl.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "timetable_setting_school_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"timetable_setting_periods", "timetable_setting_updated_at"}),
		}).
		Create(&row).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	return helper.Success(c, "Layout periode disimpan", d.TimetableSettingResponse{
		SchoolID: schoolID,
		Periods:  req.Periods,
	})
}
