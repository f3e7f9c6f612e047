package staff

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	authHelper "schoolku_backend/internals/features/users/auth/helper"
	"schoolku_backend/internals/features/users/staff/model"
	helpers "schoolku_backend/internals/helpers"
)

type StaffSeed struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func SeedStaffFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file staff:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []StaffSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		data.Email = authHelper.NormalizeEmail(data.Email)

		var existing model.StaffModel
		if err := db.Where("lower(email) = lower(?)", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Staff dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		staff := model.StaffModel{
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Email:     data.Email,
			Password:  hashedPassword,
			Role:      data.Role,
			IsActive:  true,
		}
		if data.Department != "" {
			staff.Department = &data.Department
		}

		slug, err := helpers.EnsureUniqueSlug(db, staff.FullName(), helpers.SlugOptions{
			Table:       model.StaffModel{}.TableName(),
			SlugColumn:  "slug",
			DefaultBase: "staff",
		})
		if err != nil {
			log.Printf("❌ Gagal generate slug untuk '%s': %v", data.Email, err)
			continue
		}
		staff.Slug = slug

		if err := db.Create(&staff).Error; err != nil {
			log.Printf("❌ Gagal insert staff '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ Staff '%s' berhasil ditambahkan.", data.Email)
	}
}
