package student

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	authHelper "schoolku_backend/internals/features/users/auth/helper"
	staffModel "schoolku_backend/internals/features/users/staff/model"
	"schoolku_backend/internals/features/users/student/model"
	helpers "schoolku_backend/internals/helpers"
)

type StudentSeed struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	StudentNumber string `json:"student_number"`
	Password      string `json:"password"`
	ClassName     string `json:"class_name"`
	TeacherEmail  string `json:"teacher_email"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file student:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []StudentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.StudentModel
		if err := db.Where("student_number = ?", data.StudentNumber).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Student dengan nomor induk '%s' sudah ada, dilewati.", data.StudentNumber)
			continue
		}

		// Owning teacher dicari via email dari seed staff
		var teacher staffModel.StaffModel
		if err := db.Where("lower(email) = lower(?) AND role = 'teacher'", data.TeacherEmail).
			First(&teacher).Error; err != nil {
			log.Printf("❌ Teacher '%s' tidak ditemukan untuk student '%s', dilewati.", data.TeacherEmail, data.StudentNumber)
			continue
		}

		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.StudentNumber, err)
			continue
		}

		student := model.StudentModel{
			FirstName:     data.FirstName,
			LastName:      data.LastName,
			StudentNumber: data.StudentNumber,
			Password:      hashedPassword,
			TeacherID:     teacher.ID,
			ClassName:     data.ClassName,
			IsActive:      true,
		}

		slug, err := helpers.EnsureUniqueSlug(db, student.FullName(), helpers.SlugOptions{
			Table:       model.StudentModel{}.TableName(),
			SlugColumn:  "slug",
			DefaultBase: "student",
		})
		if err != nil {
			log.Printf("❌ Gagal generate slug untuk '%s': %v", data.StudentNumber, err)
			continue
		}
		student.Slug = slug

		if err := db.Create(&student).Error; err != nil {
			log.Printf("❌ Gagal insert student '%s': %v", data.StudentNumber, err)
			continue
		}
		log.Printf("✅ Student '%s' berhasil ditambahkan.", data.StudentNumber)
	}
}
