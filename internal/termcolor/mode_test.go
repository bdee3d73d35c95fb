package termcolor

import (
	"os"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  ColorMode
		err   bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{" Always ", ModeAlways, false},
		{"NEVER", ModeNever, false},
		{"sometimes", ModeAuto, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.input)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseMode(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
}

func TestDetectModeEnvironmentOverrides(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	cases := []struct {
		name string
		env  Env
		want ColorMode
	}{
		{"no env on a pipe", nil, ModeNever},
		{"NO_COLOR", Env{"NO_COLOR": "1"}, ModeNever},
		{"CLICOLOR=0", Env{"CLICOLOR": "0"}, ModeNever},
		{"CLICOLOR_FORCE", Env{"CLICOLOR_FORCE": "1"}, ModeAlways},
		{"FORCE_COLOR=2", Env{"FORCE_COLOR": "2"}, ModeAlways},
		{"FORCE_COLOR=0", Env{"FORCE_COLOR": "0"}, ModeNever},
		{"NO_COLOR beats force", Env{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, ModeNever},
		{"dumb beats force", Env{"TERM": "dumb", "FORCE_COLOR": "1"}, ModeNever},
	}
	for _, tc := range cases {
		if got := DetectMode(w, tc.env); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
	if got := DetectMode(nil, Env{"FORCE_COLOR": "1"}); got != ModeNever {
		t.Fatalf("nil file should never be colored, got %v", got)
	}
}

func TestEnvFromAndShouldColor(t *testing.T) {
	src := map[string]string{"NO_COLOR": "1", "HOME": "/home/x", "COLORTERM": "truecolor"}
	env := EnvFrom(func(k string) string { return src[k] })
	if _, ok := env["HOME"]; ok {
		t.Fatalf("unrelated variables should be skipped: %v", env)
	}
	if env["NO_COLOR"] != "1" || env["COLORTERM"] != "truecolor" {
		t.Fatalf("color variables missing: %v", env)
	}
	if len(EnvFrom(nil)) != 0 {
		t.Fatal("nil getenv should yield an empty map")
	}

	var buf strings.Builder
	if !ShouldColor(ModeAlways, &buf, env) {
		t.Fatal("ModeAlways should enable colors for any writer")
	}
	if ShouldColor(ModeAuto, &buf, Env{"FORCE_COLOR": "1"}) {
		t.Fatal("auto mode must not color non-file writers")
	}
	if ShouldColor(ModeNever, os.Stdout, nil) {
		t.Fatal("ModeNever should disable colors")
	}
}
