package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	authHelper "schoolku_backend/internals/features/users/auth/helper"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	staffModel "schoolku_backend/internals/features/users/staff/model"
	studentModel "schoolku_backend/internals/features/users/student/model"
	helpers "schoolku_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const logoutSentinel = "logged_out"

func nowUTC() time.Time { return time.Now().UTC() }

// Akun nonaktif = konflik state principal, bukan kurang hak —
// tetap 401 (bukan 403) karena gagalnya di tahap autentikasi.
func rejectDeactivated(c *fiber.Ctx, msg string) error {
	return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
		helpers.CodeAccountDeactivated, msg)
}

/* ==========================
   LOGIN STAFF (email + password)
========================== */

func LoginStaff(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)

	if err := authHelper.ValidateStaffLoginInput(input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Pesan generic — jangan bocorkan apakah email terdaftar
	staff, err := authRepo.FindStaffByEmailWithPassword(db, input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err := authHelper.CheckPasswordHash(staff.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !staff.IsActive {
		return rejectDeactivated(c, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	// Touch last_login (best-effort, jangan gagalkan login)
	now := nowUTC()
	if err := authRepo.UpdateStaffLastLogin(db, staff.ID, now); err != nil {
		log.Printf("[AUTH] update last_login staff gagal: %v", err)
	}
	staff.LastLogin = &now

	return issueSession(c, staff.ID, staff.Role, StaffResponseUser(staff))
}

/* ==========================
   LOGIN STUDENT (nomor induk + password)
========================== */

func LoginStudent(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		StudentNumber string `json:"student_number"`
		Password      string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.StudentNumber = strings.TrimSpace(input.StudentNumber)

	if err := authHelper.ValidateStudentLoginInput(input.StudentNumber, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Pesan generic — enumeration resistance untuk nomor induk
	student, err := authRepo.FindStudentByNumberWithPassword(db, input.StudentNumber)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Nomor induk atau password salah")
	}
	if err := authHelper.CheckPasswordHash(student.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Nomor induk atau password salah")
	}
	if !student.IsActive {
		return rejectDeactivated(c, "Akun Anda telah dinonaktifkan. Hubungi wali kelas.")
	}

	now := nowUTC()
	if err := authRepo.UpdateStudentLastLogin(db, student.ID, now); err != nil {
		log.Printf("[AUTH] update last_login student gagal: %v", err)
	}
	student.LastLogin = &now

	// Enrich: field publik owning teacher (best-effort)
	var teacher *staffModel.StaffModel
	if t, err := authRepo.FindStaffByID(db, student.TeacherID); err == nil {
		teacher = t
	}

	return issueSession(c, student.ID, constants.RoleStudent,
		StudentResponseUser(student, teacher))
}

/* ==========================
   REGISTER STAFF (dev mode only)
========================== */

// RegisterRequest: body registrasi staff. Model tidak bisa dipakai langsung
// untuk parse body karena kolom password di model bertag `json:"-"`.
type RegisterRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
}

func RegisterStaff(db *gorm.DB, c *fiber.Ctx) error {
	// Self-registration hanya untuk development; di production
	// pembuatan staff lewat admin.
	if configs.IsProduction() {
		return helpers.JsonError(c, fiber.StatusForbidden, "Registrasi mandiri dinonaktifkan di production")
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Email disimpan lowercase supaya unique index menangkap
	// duplikat beda kapitalisasi (A@x.com vs a@x.com)
	req.Email = authHelper.NormalizeEmail(req.Email)

	if err := authHelper.ValidateRegisterInput(req.Email, req.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	input := staffModel.StaffModel{
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Phone:      req.Phone,
		Department: req.Department,
		IsActive:   true,
	}

	// Slug unik dari nama lengkap
	slug, err := helpers.EnsureUniqueSlug(db, input.FullName(), helpers.SlugOptions{
		Table:       staffModel.StaffModel{}.TableName(),
		SlugColumn:  "slug",
		DefaultBase: "staff",
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal generate slug")
	}
	input.Slug = slug

	if err := input.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	input.Password = passwordHash

	if err := authRepo.CreateStaff(db, &input); err != nil {
		if authRepo.IsDuplicateKeyError(err) {
			return helpers.JsonErrorWithCode(c, fiber.StatusBadRequest,
				helpers.CodeDuplicateResource, "Email sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create staff")
	}

	return helpers.JsonCreated(c, "Registration successful", StaffResponseUser(&input))
}

/* ==========================
   LOGOUT
========================== */

// Logout hanya menimpa cookie dengan sentinel + expiry beberapa detik
// ke depan. Token bearer tetap valid sampai expired — stateless by design,
// tidak ada blacklist server-side.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     helpers.AccessTokenCookie,
		Value:    logoutSentinel,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: cookieSameSite(),
		Path:     "/",
		Expires:  time.Now().Add(5 * time.Second),
	})
	return helpers.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   ISSUE SESSION (token + cookie + response)
========================== */

func issueSession(c *fiber.Ctx, subjectID uuid.UUID, userType string, respUser fiber.Map) error {
	token, expiresAt, err := IssueToken(subjectID, userType)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	setAuthCookie(c, token, expiresAt)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"token":      token,
		"expires_at": expiresAt,
		"user":       respUser,
	})
}

func setAuthCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	// Cookie expiry mengikuti config; kalau token lebih pendek, ikut token
	expiry := time.Now().Add(configs.CookieExpiry)
	if expiresAt.Before(expiry) {
		expiry = expiresAt
	}
	c.Cookie(&fiber.Cookie{
		Name:     helpers.AccessTokenCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   configs.IsProduction(), // lokal: http, jangan Secure
		SameSite: cookieSameSite(),
		Path:     "/",
		Expires:  expiry,
	})
}

func cookieSameSite() string {
	if configs.IsProduction() {
		return "Strict"
	}
	return "Lax"
}

/* ==========================
   Response user builders
========================== */

func StaffResponseUser(staff *staffModel.StaffModel) fiber.Map {
	resp := fiber.Map{
		"id":         staff.ID,
		"user_type":  staff.Role,
		"first_name": staff.FirstName,
		"last_name":  staff.LastName,
		"email":      staff.Email,
		"is_active":  staff.IsActive,
		"slug":       staff.Slug,
	}
	if staff.LastLogin != nil {
		resp["last_login"] = staff.LastLogin
	}
	if staff.Phone != nil {
		resp["phone"] = *staff.Phone
	}
	if staff.Department != nil {
		resp["department"] = *staff.Department
	}
	return resp
}

func StudentResponseUser(student *studentModel.StudentModel, teacher *staffModel.StaffModel) fiber.Map {
	resp := fiber.Map{
		"id":             student.ID,
		"user_type":      constants.RoleStudent,
		"first_name":     student.FirstName,
		"last_name":      student.LastName,
		"student_number": student.StudentNumber,
		"class_name":     student.ClassName,
		"is_active":      student.IsActive,
		"slug":           student.Slug,
	}
	if student.LastLogin != nil {
		resp["last_login"] = student.LastLogin
	}
	if teacher != nil {
		resp["teacher"] = fiber.Map{
			"id":         teacher.ID,
			"first_name": teacher.FirstName,
			"last_name":  teacher.LastName,
			"email":      teacher.Email,
		}
	}
	return resp
}
