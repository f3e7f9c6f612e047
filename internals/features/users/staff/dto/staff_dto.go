package dto

// UpdateStaffRequest: profil yang boleh diubah (self atau admin).
// Email & role tidak ikut — perubahan role urusan admin management terpisah.
type UpdateStaffRequest struct {
	FirstName  *string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName   *string `json:"last_name" validate:"omitempty,min=2,max=50"`
	Phone      *string `json:"phone" validate:"omitempty,numeric,min=10,max=11"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}
