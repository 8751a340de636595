package poi

import "testing"

func TestJoinAddress(t *testing.T) {
	cases := []struct {
		name  string
		parts []string
		want  string
	}{
		{"all present", []string{"323", "Jefferson St", "Lafayette", "LA"}, "323, Jefferson St, Lafayette, LA"},
		{"gaps skipped", []string{"", "Jefferson St", "", "LA"}, "Jefferson St, LA"},
		{"all absent", []string{"", "", ""}, ""},
		{"whitespace only", []string{"  ", "Main St"}, "Main St"},
	}

	for _, tc := range cases {
		if got := JoinAddress(tc.parts...); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
