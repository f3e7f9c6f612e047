package service

import "testing"

func TestValidPeriod(t *testing.T) {
	for _, ok := range []string{"daily", "weekly", "monthly"} {
		if !ValidPeriod(ok) {
			t.Errorf("ValidPeriod(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"", "hourly", "yearly", "Daily"} {
		if ValidPeriod(bad) {
			t.Errorf("ValidPeriod(%q) = true, want false", bad)
		}
	}
}

// Tiap period harus punya pasangan trunc + format — kalau tidak,
// query rollup jalan dengan argumen kosong
func TestBucketTablesConsistent(t *testing.T) {
	for period := range bucketFormats {
		if _, ok := bucketTruncs[period]; !ok {
			t.Errorf("period %q ada format tapi tidak ada trunc", period)
		}
	}
	for period := range bucketTruncs {
		if _, ok := bucketFormats[period]; !ok {
			t.Errorf("period %q ada trunc tapi tidak ada format", period)
		}
	}
}
