package concept

import "testing"

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"45 min", 45},
		{"45min", 45},
		{"2 hours", 120},
		{"1 hour", 60},
		{"1 hr", 60},
		{"About 30 Min of reading", 30},
		{"90 minutes", 90},
		{"", DefaultEstimateMinutes},
		{"garbage", DefaultEstimateMinutes},
		{"soon", DefaultEstimateMinutes},
	}

	for _, tt := range tests {
		if got := ParseTimeToMinutes(tt.in); got != tt.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatMinutesToTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0 min"},
		{45, "45 min"},
		{59, "59 min"},
		{60, "1 hour"},
		{90, "1h 30min"},
		{120, "2 hours"},
		{150, "2h 30min"},
	}

	for _, tt := range tests {
		if got := FormatMinutesToTime(tt.in); got != tt.want {
			t.Errorf("FormatMinutesToTime(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyRank(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{Beginner, 1},
		{Intermediate, 2},
		{Advanced, 3},
		{Difficulty("Expert"), 2},
		{Difficulty(""), 2},
	}

	for _, tt := range tests {
		if got := tt.d.Rank(); got != tt.want {
			t.Errorf("Rank(%q) = %d, want %d", tt.d, got, tt.want)
		}
	}
}
