package utils

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:         "0.00",
		12.5:      "12.50",
		1234:      "1,234.00",
		1234567.5: "1,234,567.50",
		-2500:     "-2,500.00",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("  ")
	if err != nil || got != nil {
		t.Fatalf("blank date should be nil, got %v err %v", got, err)
	}
	got, err = ParseOptionalDate("2025-02-03")
	if err != nil || got == nil || FormatDate(*got) != "2025-02-03" {
		t.Fatalf("unexpected parse result %v err %v", got, err)
	}
	if _, err := ParseOptionalDate("03/02/2025"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
