package convert

import "testing"

func TestResolveQuality(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"high", 20},
		{"medium", 23},
		{"low", 28},
		{"", 23},
		{"unknown", 23},
		{" High ", 20},
	}

	for _, tc := range cases {
		if got := ResolveQuality(tc.label); got != tc.want {
			t.Errorf("ResolveQuality(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}
