package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-01", Date{2024, time.January, 1}, false},
		{"2024-02-29", Date{2024, time.February, 29}, false},
		{"2023-02-29", Date{}, true},
		{"2024-1-1", Date{}, true},
		{"", Date{}, true},
		{"2024-01-01T00:00:00Z", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDateNext(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-01", "2024-01-02"},
		{"2024-01-31", "2024-02-01"},
		{"2024-02-28", "2024-02-29"},
		{"2023-02-28", "2023-03-01"},
		{"2024-12-31", "2025-01-01"},
	}

	for _, tt := range tests {
		if got := MustParseDate(tt.in).Next().String(); got != tt.want {
			t.Errorf("%s.Next() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDateCompare(t *testing.T) {
	a := MustParseDate("2024-01-31")
	b := MustParseDate("2024-02-01")

	if !a.Before(b) || a.After(b) {
		t.Errorf("%s should be before %s", a, b)
	}
	if a.Compare(a) != 0 || !a.Equal(a) {
		t.Error("date should equal itself")
	}
	if MaxDate(a, b) != b || MaxDate(b, a) != b {
		t.Error("MaxDate should return the later date")
	}
}

func TestDaysUntil(t *testing.T) {
	a := MustParseDate("2024-02-27")
	b := MustParseDate("2024-03-02")
	if got := a.DaysUntil(b); got != 4 {
		t.Errorf("DaysUntil = %d, want 4", got)
	}
	if got := b.DaysUntil(a); got != -4 {
		t.Errorf("DaysUntil reversed = %d, want -4", got)
	}
	// Wider than time.Duration can hold.
	lo, hi := MustParseDate("0001-01-01"), MustParseDate("9999-12-31")
	if got := lo.DaysUntil(hi); got != 3652058 {
		t.Errorf("DaysUntil full range = %d, want 3652058", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := MustParseDate("2024-07-04")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2024-07-04"` {
		t.Errorf("Marshal = %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("Unmarshal = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"not a date"`), &back); err == nil {
		t.Error("Unmarshal should reject malformed dates")
	}
}
