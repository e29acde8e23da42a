// file: internals/features/school/teachers/controller/school_teacher_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/teachers/dto"
	m "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type SchoolTeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolTeacherController(db *gorm.DB) *SchoolTeacherController {
	return &SchoolTeacherController{DB: db, Validate: validator.New()}
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
   List
   ========================= */

func (ctl *SchoolTeacherController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&m.SchoolTeacherModel{}).
		Where("school_teacher_school_id = ?", schoolID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("school_teacher_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	var rows []m.SchoolTeacherModel
	if err := db.Order("school_teacher_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	out := make([]d.SchoolTeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewSchoolTeacherResponse(&rows[i]))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data":       out,
		"pagination": helper.BuildPagination(p, total, len(out)),
	})
}

/* =========================
   GetByID
   ========================= */

func (ctl *SchoolTeacherController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var row m.SchoolTeacherModel
	if err := ctl.DB.
		Where("school_teacher_id = ? AND school_teacher_school_id = ?", id, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(http.StatusNotFound, "Guru tidak ditemukan")
		}
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	return c.Status(http.StatusOK).JSON(d.NewSchoolTeacherResponse(&row))
}

/* =========================
   Create
   ========================= */

func (ctl *SchoolTeacherController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req d.CreateSchoolTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.SchoolTeacherModel
	req.ApplyToModel(&row, schoolID)

	if err := ctl.DB.Create(&row).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	return c.Status(http.StatusCreated).JSON(d.NewSchoolTeacherResponse(&row))
}

/* =========================
   Soft Delete
   ========================= */

func (ctl *SchoolTeacherController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctl.DB.
		Where("school_teacher_id = ? AND school_teacher_school_id = ?", id, schoolID).
		Delete(&m.SchoolTeacherModel{})
	if res.Error != nil {
		code, msg := mapPGError(res.Error)
		return helper.Error(c, code, msg)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(http.StatusNotFound, "Guru tidak ditemukan")
	}

	return c.SendStatus(http.StatusNoContent)
}
