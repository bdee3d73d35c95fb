package termcolor

import "testing"

func TestDetectProfile(t *testing.T) {
	cases := []struct {
		env  Env
		want Profile
	}{
		{Env{"COLORTERM": "truecolor"}, ProfileTrueColor},
		{Env{"COLORTERM": "24bit", "TERM": "xterm-256color"}, ProfileTrueColor},
		{Env{"TERM": "xterm-256color"}, ProfileANSI256},
		{Env{"TERM": "xterm"}, ProfileBasic8},
		{nil, ProfileBasic8},
	}
	for _, tc := range cases {
		if got := DetectProfile(tc.env); got != tc.want {
			t.Fatalf("DetectProfile(%v) = %v, want %v", tc.env, got, tc.want)
		}
	}
}

func TestDetectScheme(t *testing.T) {
	cases := []struct {
		env  Env
		want Scheme
	}{
		{Env{"COLORFGBG": "7;0"}, SchemeDark},
		{Env{"COLORFGBG": "15;7"}, SchemeLight},
		{Env{"COLORFGBG": "0;default;15"}, SchemeLight},
		{Env{"COLORFGBG": "15;"}, SchemeLight},
		{Env{"COLORFGBG": "junk", "TERM": "xterm-light"}, SchemeLight},
		{nil, SchemeDark},
	}
	for _, tc := range cases {
		if got := DetectScheme(tc.env); got != tc.want {
			t.Fatalf("DetectScheme(%v) = %v, want %v", tc.env, got, tc.want)
		}
	}
}
