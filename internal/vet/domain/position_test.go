package domain

import "testing"

func TestParsePosition(t *testing.T) {
	cases := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"exact", PositionExact, false},
		{"ExAcT", PositionExact, false},
		{"any", PositionAny, false},
		{" ANY ", PositionAny, false},
		{"beginswith", PositionBeginsWith, false},
		{"BeginsWith", PositionBeginsWith, false},
		{"", PositionExact, false},
		{"endswith", 0, true},
		{"contains", 0, true},
	}

	for _, tc := range cases {
		got, err := ParsePosition(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParsePosition(%q) expected error, got nil", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePosition(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePosition(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPosition_String(t *testing.T) {
	cases := []struct {
		pos      Position
		expected string
	}{
		{PositionExact, "exact"},
		{PositionAny, "any"},
		{PositionBeginsWith, "beginswith"},
		{Position(42), "Position(42)"},
	}

	for _, tc := range cases {
		got := tc.pos.String()
		if got != tc.expected {
			t.Errorf("Position(%d).String() = %q, want %q", tc.pos, got, tc.expected)
		}
	}
}
