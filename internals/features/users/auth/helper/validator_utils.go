package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeEmail: email unik case-insensitive — selalu simpan lowercase
// supaya unique index di kolom email menangkap duplikat beda kapitalisasi.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ==========================
// Password hashing
// ==========================

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ==========================
// Input validation (jalur auth — sebelum validator struct)
// ==========================

func ValidateStaffLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return errors.New("email dan password wajib diisi")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("format email tidak valid")
	}
	return nil
}

func ValidateStudentLoginInput(studentNumber, password string) error {
	if strings.TrimSpace(studentNumber) == "" || strings.TrimSpace(password) == "" {
		return errors.New("nomor induk dan password wajib diisi")
	}
	for _, r := range studentNumber {
		if r < '0' || r > '9' {
			return errors.New("nomor induk harus berupa angka")
		}
	}
	return nil
}

func ValidateRegisterInput(email, password string) error {
	if !emailRegex.MatchString(email) {
		return errors.New("format email tidak valid")
	}
	return ValidateNewPassword(password)
}

func ValidateNewPassword(password string) error {
	if len(password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	return nil
}
