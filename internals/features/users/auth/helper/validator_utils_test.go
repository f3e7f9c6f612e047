package helper

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "rahasia-banget" {
		t.Fatal("password tidak boleh tersimpan plaintext")
	}
	if err := CheckPasswordHash(hash, "rahasia-banget"); err != nil {
		t.Errorf("password benar ditolak: %v", err)
	}
	if err := CheckPasswordHash(hash, "salah"); err == nil {
		t.Error("password salah harus ditolak")
	}
}

func TestValidateStaffLoginInput(t *testing.T) {
	if err := ValidateStaffLoginInput("budi@schoolku.id", "password123"); err != nil {
		t.Errorf("input valid ditolak: %v", err)
	}
	if err := ValidateStaffLoginInput("", "password123"); err == nil {
		t.Error("email kosong harus ditolak")
	}
	if err := ValidateStaffLoginInput("bukan-email", "password123"); err == nil {
		t.Error("format email salah harus ditolak")
	}
}

func TestValidateStudentLoginInput(t *testing.T) {
	if err := ValidateStudentLoginInput("20240001", "password123"); err != nil {
		t.Errorf("input valid ditolak: %v", err)
	}
	if err := ValidateStudentLoginInput("ABC123", "password123"); err == nil {
		t.Error("nomor induk non-angka harus ditolak")
	}
	if err := ValidateStudentLoginInput("", "password123"); err == nil {
		t.Error("nomor induk kosong harus ditolak")
	}
}

func TestValidateNewPassword(t *testing.T) {
	if err := ValidateNewPassword("1234567"); err == nil {
		t.Error("password < 8 karakter harus ditolak")
	}
	if err := ValidateNewPassword("12345678"); err != nil {
		t.Errorf("password 8 karakter ditolak: %v", err)
	}
}

// Email unik case-insensitive — disimpan lowercase supaya unique index
// menangkap A@x.com vs a@x.com sebagai duplikat.
func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Budi@X.Com", "budi@x.com"},
		{"  admin@Sekolah.sch.id  ", "admin@sekolah.sch.id"},
		{"sudah@lower.com", "sudah@lower.com"},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
