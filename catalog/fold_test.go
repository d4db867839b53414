package catalog

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"José", "jose"},
		{"GARCÍA MÁRQUEZ", "garcia marquez"},
		{"Cien años de soledad", "cien anos de soledad"},
		{"Distopía", "distopia"},
		{"plain ascii", "plain ascii"},
	}

	for _, tc := range cases {
		if got := Fold(tc.in); got != tc.want {
			t.Errorf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
