package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var validate = validator.New()

// GradeEntry: satu entri nilai di log append-only milik student
type GradeEntry struct {
	Subject    string    `json:"subject"`
	Score      float64   `json:"score"`
	Note       string    `json:"note,omitempty"`
	RecordedBy uuid.UUID `json:"recorded_by"`
	RecordedAt time.Time `json:"recorded_at"`
}

// AssignmentStatusEntry: status pengerjaan tugas per student (append-only)
type AssignmentStatusEntry struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"` // assigned | submitted | graded
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentModel merepresentasikan tabel students
type StudentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name" validate:"required,min=2,max=50"`
	LastName  string    `gorm:"size:50;not null" json:"last_name" validate:"required,min=2,max=50"`

	// Nomor induk — unik global, numeric string
	StudentNumber string `gorm:"size:20;uniqueIndex;not null" json:"student_number" validate:"required,numeric,min=4,max=20"`

	// Password hash: tidak pernah diserialisasi, tidak ikut default read
	Password string `gorm:"not null" json:"-"`

	// Owning teacher — referensi ke staffs (kind teacher, harus aktif;
	// dicek saat create, bukan FK constraint)
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id" validate:"required"`

	ClassName string `gorm:"size:50;not null" json:"class_name" validate:"required"`

	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	Slug      string     `gorm:"size:160;uniqueIndex;not null" json:"slug"`

	// Log embedded (JSONB) — append-only, scoped ke student ini
	Grades             datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"grades"`
	AssignmentStatuses datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"assignment_statuses"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}

// PublicColumns: kolom default read (tanpa password)
var PublicColumns = []string{
	"id", "first_name", "last_name", "student_number", "teacher_id",
	"class_name", "is_active", "last_login", "slug", "grades",
	"assignment_statuses", "created_at", "updated_at",
}

func (s *StudentModel) FullName() string {
	return s.FirstName + " " + s.LastName
}

// GradeList decode log nilai dari JSONB
func (s *StudentModel) GradeList() ([]GradeEntry, error) {
	out := make([]GradeEntry, 0)
	if len(s.Grades) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(s.Grades, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignmentStatusList decode log status tugas dari JSONB
func (s *StudentModel) AssignmentStatusList() ([]AssignmentStatusEntry, error) {
	out := make([]AssignmentStatusEntry, 0)
	if len(s.AssignmentStatuses) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(s.AssignmentStatuses, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (s *StudentModel) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " wajib diisi."
			case "numeric":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus berupa angka."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter."
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
