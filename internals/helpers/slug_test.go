package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Budi Santoso", "budi-santoso"},
		{"  Dewi   Lestari  ", "dewi-lestari"},
		{"Kelas 7A!", "kelas-7a"},
		{"---", ""},
		{"", ""},
		{"Ujian--Akhir__Semester", "ujian-akhir-semester"},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCutToLen(t *testing.T) {
	if got := cutToLen("budi-santoso", 4); got != "budi" {
		t.Errorf("cutToLen = %q, want budi", got)
	}
	// Potongan yang berakhir "-" harus di-trim
	if got := cutToLen("budi-santoso", 5); got != "budi" {
		t.Errorf("cutToLen = %q, want budi", got)
	}
	if got := cutToLen("abc", 0); got != "abc" {
		t.Errorf("cutToLen = %q, want abc", got)
	}
}
