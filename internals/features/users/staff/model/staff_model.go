package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// StaffModel merepresentasikan tabel staffs (teacher & admin dalam satu tabel)
type StaffModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name" validate:"required,min=2,max=50"`
	LastName  string    `gorm:"size:50;not null" json:"last_name" validate:"required,min=2,max=50"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`

	// Password hash TIDAK pernah ikut response dan TIDAK ikut default read —
	// repository harus select eksplisit kalau butuh (lihat auth_repository).
	Password string `gorm:"not null" json:"-"`

	// Role = kind staff: teacher | admin
	Role string `gorm:"type:varchar(20);not null;default:'teacher'" json:"role" validate:"required,oneof=teacher admin"`

	Phone      *string `gorm:"size:15" json:"phone,omitempty" validate:"omitempty,numeric,min=10,max=11"`
	Department *string `gorm:"size:100" json:"department,omitempty"`

	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	Slug      string     `gorm:"size:160;uniqueIndex;not null" json:"slug"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (StaffModel) TableName() string {
	return "staffs"
}

// PublicColumns: kolom yang aman untuk default read (tanpa password)
var PublicColumns = []string{
	"id", "first_name", "last_name", "email", "role", "phone",
	"department", "is_active", "last_login", "slug", "created_at", "updated_at",
}

func (s *StaffModel) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (s *StaffModel) SetDefaultValues() {
	if s.Role == "" {
		s.Role = "teacher"
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (s *StaffModel) Validate() error {
	s.SetDefaultValues()
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " wajib diisi."
			case "email":
				errorMessages[fieldErr.Field()] = "Format email tidak valid."
			case "numeric":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus berupa angka."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter."
			case "oneof":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus salah satu dari " + fieldErr.Param() + "."
			default:
				errorMessages[fieldErr.Field()] = "Format tidak valid."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}
	return err
}

func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
