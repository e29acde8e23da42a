// file: internals/features/school/classes/class_section_subject_teachers/controller/class_section_subject_teacher_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/classes/class_section_subject_teachers/dto"
	m "schoolku_backend/internals/features/school/classes/class_section_subject_teachers/model"
	subjectModel "schoolku_backend/internals/features/school/academics/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type CSSTController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCSSTController(db *gorm.DB) *CSSTController {
	return &CSSTController{DB: db, Validate: validator.New()}
}

type pgSQLErr interface{ SQLState() string }

func mapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return http.StatusConflict, "Penugasan ini sudah ada (unique violation)."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(http.StatusBadRequest, name+" invalid")
	}
	return id, nil
}

/* =========================
   List (filter by section)
   ========================= */

func (ctl *CSSTController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	db := ctl.DB.Model(&m.ClassSectionSubjectTeacherModel{}).
		Where("class_section_subject_teacher_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("section_id")); s != "" {
		sid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "section_id invalid")
		}
		db = db.Where("class_section_subject_teacher_section_id = ?", sid)
	}

	var rows []m.ClassSectionSubjectTeacherModel
	if err := db.
		Order("class_section_subject_teacher_subject_id, class_section_subject_teacher_order_index").
		Find(&rows).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	out := make([]d.CSSTResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewCSSTResponse(&rows[i]))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"data": out})
}

/* =========================
   Create (isi snapshot subject & teacher)
   ========================= */

func (ctl *CSSTController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req d.CreateCSSTRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.ClassSectionSubjectTeacherModel
	req.ApplyToModel(&row, schoolID)

	// Snapshot subject (tenant-safe lookup)
	var subj subjectModel.SubjectModel
	if err := ctl.DB.
		Where("subject_id = ? AND subject_school_id = ?", row.ClassSectionSubjectTeacherSubjectID, schoolID).
		First(&subj).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(http.StatusNotFound, "Mapel tidak ditemukan")
		}
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	// Snapshot teacher
	var tch teacherModel.SchoolTeacherModel
	if err := ctl.DB.
		Where("school_teacher_id = ? AND school_teacher_school_id = ?", row.ClassSectionSubjectTeacherTeacherID, schoolID).
		First(&tch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(http.StatusNotFound, "Guru tidak ditemukan")
		}
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	subjSnap, _ := sonic.Marshal(fiber.Map{
		"subject_name": subj.SubjectName,
		"subject_code": subj.SubjectCode,
	})
	tchSnap, _ := sonic.Marshal(fiber.Map{
		"teacher_name":  tch.SchoolTeacherName,
		"teacher_title": tch.SchoolTeacherTitle,
	})
	row.ClassSectionSubjectTeacherSubjectSnapshot = subjSnap
	row.ClassSectionSubjectTeacherTeacherSnapshot = tchSnap

	if err := ctl.DB.Create(&row).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	return c.Status(http.StatusCreated).JSON(d.NewCSSTResponse(&row))
}

/* =========================
   Soft Delete
   ========================= */

func (ctl *CSSTController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctl.DB.
		Where("class_section_subject_teacher_id = ? AND class_section_subject_teacher_school_id = ?", id, schoolID).
		Delete(&m.ClassSectionSubjectTeacherModel{})
	if res.Error != nil {
		code, msg := mapPGError(res.Error)
		return helper.Error(c, code, msg)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(http.StatusNotFound, "Penugasan tidak ditemukan")
	}

	return c.SendStatus(http.StatusNoContent)
}
