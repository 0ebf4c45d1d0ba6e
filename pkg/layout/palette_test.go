package layout

import "testing"

func TestColorAt(t *testing.T) {
	if got := ColorAt(nil, 0); got != DefaultPalette[0] {
		t.Errorf("ColorAt(nil, 0) = %s", got)
	}
	if got := ColorAt(nil, len(DefaultPalette)); got != DefaultPalette[0] {
		t.Errorf("ColorAt should wrap, got %s", got)
	}
	if got := ColorAt([]string{"#111", "#222"}, 3); got != "#222" {
		t.Errorf("ColorAt(custom, 3) = %s, want #222", got)
	}
}

func TestValidatePalette(t *testing.T) {
	tests := []struct {
		palette []string
		wantErr bool
	}{
		{DefaultPalette, false},
		{[]string{"#abc", "#ABCDEF"}, false},
		{nil, false},
		{[]string{"red"}, true},
		{[]string{"#abcd"}, true},
		{[]string{"AAE9E5"}, true},
	}

	for _, tt := range tests {
		err := ValidatePalette(tt.palette)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePalette(%v) error = %v, wantErr %v", tt.palette, err, tt.wantErr)
		}
	}
}
