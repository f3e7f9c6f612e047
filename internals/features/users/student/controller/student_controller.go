package controller

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authHelper "schoolku_backend/internals/features/users/auth/helper"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	"schoolku_backend/internals/features/users/student/dto"
	"schoolku_backend/internals/features/users/student/model"
	helpers "schoolku_backend/internals/helpers"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ==========================
   CREATE (teacher/admin)
========================== */

// POST /api/students
// Teacher membuat student untuk dirinya sendiri; admin wajib kirim teacher_id.
func (sc *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	principal, ok := authMiddleware.GetPrincipal(c)
	if !ok {
		return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
			helpers.CodeNoToken, "Unauthorized: missing principal")
	}

	// Resolve owning teacher
	var teacherID uuid.UUID
	switch principal.Role() {
	case constants.RoleTeacher:
		teacherID = principal.PrincipalID()
	case constants.RoleAdmin:
		if req.TeacherID == nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "teacher_id wajib diisi untuk admin")
		}
		parsed, err := uuid.Parse(*req.TeacherID)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		teacherID = parsed
	default:
		return helpers.JsonErrorWithCode(c, fiber.StatusForbidden,
			helpers.CodeInsufficientPerm, "Akses ditolak: hanya teacher/admin")
	}

	// Referential check: owning teacher harus staff teacher yang aktif
	okTeacher, err := authRepo.IsActiveTeacher(sc.DB, teacherID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal cek teacher")
	}
	if !okTeacher {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Teacher tidak ditemukan atau tidak aktif")
	}

	passwordHash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	student := model.StudentModel{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		StudentNumber: req.StudentNumber,
		Password:      passwordHash,
		TeacherID:     teacherID,
		ClassName:     req.ClassName,
		IsActive:      true,
	}

	slug, err := helpers.EnsureUniqueSlug(sc.DB, student.FullName(), helpers.SlugOptions{
		Table:       model.StudentModel{}.TableName(),
		SlugColumn:  "slug",
		DefaultBase: "student",
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal generate slug")
	}
	student.Slug = slug

	if err := student.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := authRepo.CreateStudent(sc.DB, &student); err != nil {
		if authRepo.IsDuplicateKeyError(err) {
			return helpers.JsonErrorWithCode(c, fiber.StatusBadRequest,
				helpers.CodeDuplicateResource, "Nomor induk sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat student")
	}

	return helpers.JsonCreated(c, "Student berhasil dibuat", student)
}

/* ==========================
   READ
========================== */

// GET /api/students — teacher lihat miliknya, admin lihat semua
func (sc *StudentController) List(c *fiber.Ctx) error {
	principal, ok := authMiddleware.GetPrincipal(c)
	if !ok {
		return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
			helpers.CodeNoToken, "Unauthorized: missing principal")
	}

	q := sc.DB.Select(model.PublicColumns).Order("created_at DESC")
	switch principal.Role() {
	case constants.RoleAdmin:
		// semua
	case constants.RoleTeacher:
		q = q.Where("teacher_id = ?", principal.PrincipalID())
	default:
		return helpers.JsonErrorWithCode(c, fiber.StatusForbidden,
			helpers.CodeInsufficientPerm, "Akses ditolak: hanya teacher/admin")
	}

	var students []model.StudentModel
	if err := q.Find(&students).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	return helpers.JsonList(c, "ok", students)
}

// GET /api/students/:id — admin semua, teacher pemilik, student dirinya
func (sc *StudentController) GetByID(c *fiber.Ctx) error {
	student, errResp := sc.loadAccessibleStudent(c, true)
	if errResp != nil {
		return errResp(c)
	}
	return helpers.JsonOK(c, "ok", student)
}

// PUT /api/students/:id — teacher pemilik atau admin
func (sc *StudentController) Update(c *fiber.Ctx) error {
	student, errResp := sc.loadAccessibleStudent(c, false)
	if errResp != nil {
		return errResp(c)
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.ClassName != nil {
		updates["class_name"] = *req.ClassName
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := sc.DB.Model(&model.StudentModel{}).
		Where("id = ?", student.ID).
		Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal update student")
	}

	fresh, err := authRepo.FindStudentByID(sc.DB, student.ID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}
	return helpers.JsonUpdated(c, "Student berhasil diperbarui", fresh)
}

/* ==========================
   EMBEDDED LOGS (grades & assignment status)
========================== */

// POST /api/students/:id/grades — append entri nilai (teacher pemilik/admin).
// Append atomic via jsonb concat, tidak read-modify-write.
func (sc *StudentController) AddGrade(c *fiber.Ctx) error {
	student, errResp := sc.loadAccessibleStudent(c, false)
	if errResp != nil {
		return errResp(c)
	}

	var req dto.AddGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	principal, _ := authMiddleware.GetPrincipal(c)
	entry := model.GradeEntry{
		Subject:    req.Subject,
		Score:      req.Score,
		Note:       req.Note,
		RecordedBy: principal.PrincipalID(),
		RecordedAt: time.Now().UTC(),
	}

	if err := sc.appendJSONLog(student.ID, "grades", entry); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helpers.JsonCreated(c, "Nilai berhasil ditambahkan", entry)
}

// POST /api/students/:id/assignment-status — append status tugas
func (sc *StudentController) AddAssignmentStatus(c *fiber.Ctx) error {
	student, errResp := sc.loadAccessibleStudent(c, false)
	if errResp != nil {
		return errResp(c)
	}

	var req dto.AddAssignmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	assignmentID, err := uuid.Parse(req.AssignmentID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "assignment_id tidak valid")
	}

	entry := model.AssignmentStatusEntry{
		AssignmentID: assignmentID,
		Title:        req.Title,
		Status:       req.Status,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := sc.appendJSONLog(student.ID, "assignment_statuses", entry); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan status tugas")
	}
	return helpers.JsonCreated(c, "Status tugas berhasil ditambahkan", entry)
}

func (sc *StudentController) appendJSONLog(studentID uuid.UUID, column string, entry any) error {
	raw, err := json.Marshal([]any{entry})
	if err != nil {
		return err
	}
	return sc.DB.Exec(
		"UPDATE students SET "+column+" = "+column+" || ?::jsonb, updated_at = NOW() WHERE id = ?",
		string(raw), studentID,
	).Error
}

/* ==========================
   Access helper
========================== */

// loadAccessibleStudent: load student dari path param + cek hak akses.
// allowSelf=true mengizinkan student membaca record miliknya sendiri;
// mutasi tetap hanya teacher pemilik atau admin.
func (sc *StudentController) loadAccessibleStudent(c *fiber.Ctx, allowSelf bool) (*model.StudentModel, func(*fiber.Ctx) error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, func(c *fiber.Ctx) error {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
		}
	}

	principal, ok := authMiddleware.GetPrincipal(c)
	if !ok {
		return nil, func(c *fiber.Ctx) error {
			return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
				helpers.CodeNoToken, "Unauthorized: missing principal")
		}
	}

	student, err := authRepo.FindStudentByID(sc.DB, id)
	if err != nil {
		return nil, func(c *fiber.Ctx) error {
			return helpers.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
	}

	allowed := false
	switch principal.Role() {
	case constants.RoleAdmin:
		allowed = true
	case constants.RoleTeacher:
		allowed = student.TeacherID == principal.PrincipalID()
	case constants.RoleStudent:
		allowed = allowSelf && student.ID == principal.PrincipalID()
	}
	if !allowed {
		return nil, func(c *fiber.Ctx) error {
			return helpers.JsonErrorWithCode(c, fiber.StatusForbidden,
				helpers.CodeInsufficientPerm, "Akses ditolak: bukan pemilik resource ini")
		}
	}
	return student, nil
}
