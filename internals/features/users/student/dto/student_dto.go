package dto

// CreateStudentRequest: dibuat oleh teacher (untuk dirinya) atau admin
// (wajib sertakan teacher_id).
type CreateStudentRequest struct {
	FirstName     string  `json:"first_name" validate:"required,min=2,max=50"`
	LastName      string  `json:"last_name" validate:"required,min=2,max=50"`
	StudentNumber string  `json:"student_number" validate:"required,numeric,min=4,max=20"`
	Password      string  `json:"password" validate:"required,min=8"`
	ClassName     string  `json:"class_name" validate:"required,max=50"`
	TeacherID     *string `json:"teacher_id" validate:"omitempty,uuid4"`
}

type UpdateStudentRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=2,max=50"`
	ClassName *string `json:"class_name" validate:"omitempty,max=50"`
	IsActive  *bool   `json:"is_active"`
}

type AddGradeRequest struct {
	Subject string  `json:"subject" validate:"required,max=100"`
	Score   float64 `json:"score" validate:"gte=0,lte=100"`
	Note    string  `json:"note" validate:"omitempty,max=255"`
}

type AddAssignmentStatusRequest struct {
	AssignmentID string `json:"assignment_id" validate:"required,uuid4"`
	Title        string `json:"title" validate:"required,max=150"`
	Status       string `json:"status" validate:"required,oneof=assigned submitted graded"`
}
