package calendar

import (
	"encoding/json"
	"testing"
)

func ev(title, start, end string) Event {
	return Event{Title: title, Start: MustParseDate(start), End: MustParseDate(end)}
}

func TestEventDays(t *testing.T) {
	tests := []struct {
		name string
		e    Event
		want int
	}{
		{"single day", ev("a", "2024-01-01", "2024-01-01"), 1},
		{"three days", ev("a", "2024-01-01", "2024-01-03"), 3},
		{"across month", ev("a", "2024-01-30", "2024-02-02"), 4},
		{"reversed", ev("a", "2024-01-03", "2024-01-01"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Days(); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEventOverlaps(t *testing.T) {
	a := ev("a", "2024-01-01", "2024-01-03")

	tests := []struct {
		name string
		o    Event
		want bool
	}{
		{"shares last day", ev("b", "2024-01-03", "2024-01-05"), true},
		{"adjacent", ev("b", "2024-01-04", "2024-01-05"), false},
		{"contained", ev("b", "2024-01-02", "2024-01-02"), true},
		{"reversed range", ev("b", "2024-01-02", "2024-01-01"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.o); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.o.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps() is not symmetric")
			}
		})
	}
}

func TestCertaintyText(t *testing.T) {
	tests := []struct {
		in      string
		want    Certainty
		wantErr bool
	}{
		{"Sure", Sure, false},
		{"Possible", Possible, false},
		{"possible", Possible, false},
		{" SURE ", Sure, false},
		{"Maybe", Sure, true},
		{"", Sure, true},
	}

	for _, tt := range tests {
		got, err := ParseCertainty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCertainty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCertainty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEventJSON(t *testing.T) {
	in := `{"title":"Trip","start":"2024-01-01","end":"2024-01-03","certainty":"Possible"}`

	var e Event
	if err := json.Unmarshal([]byte(in), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if e.Title != "Trip" || e.Certainty != Possible || e.Days() != 3 {
		t.Errorf("decoded %+v", e)
	}

	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != in {
		t.Errorf("Marshal = %s, want %s", out, in)
	}
}
