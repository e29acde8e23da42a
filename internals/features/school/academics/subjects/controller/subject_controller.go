// file: internals/features/school/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/academics/subjects/dto"
	m "schoolku_backend/internals/features/school/academics/subjects/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// pgSQLErr cocok untuk error pgx (punya SQLState()).
type pgSQLErr interface{ SQLState() string }

func mapPGError(err error) (int, string) {
	// 23505 unique_violation, 23503 foreign_key_violation
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
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(http.StatusBadRequest, name+" invalid")
	}
	return id, nil
}

/* =========================
   List (tenant scope)
   ========================= */

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&m.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("subject_name ILIKE ?", "%"+q+"%")
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		db = db.Where("subject_is_active = ?", strings.EqualFold(active, "true"))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	var rows []m.SubjectModel
	if err := db.Order("subject_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	out := make([]d.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewSubjectResponse(&rows[i]))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data":       out,
		"pagination": helper.BuildPagination(p, total, len(out)),
	})
}

/* =========================
   GetByID
   ========================= */

func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var row m.SubjectModel
	if err := ctl.DB.
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(http.StatusNotFound, "Mapel tidak ditemukan")
		}
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	return c.Status(http.StatusOK).JSON(d.NewSubjectResponse(&row))
}

/* =========================
   Create
   ========================= */

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.SubjectModel
	req.ApplyToModel(&row, schoolID)

	if err := ctl.DB.Create(&row).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.Error(c, code, msg)
	}

	return c.Status(http.StatusCreated).JSON(d.NewSubjectResponse(&row))
}

/* =========================
   Soft Delete
   ========================= */

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctl.DB.
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		Delete(&m.SubjectModel{})
	if res.Error != nil {
		code, msg := mapPGError(res.Error)
		return helper.Error(c, code, msg)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(http.StatusNotFound, "Mapel tidak ditemukan")
	}

	return c.SendStatus(http.StatusNoContent)
}
