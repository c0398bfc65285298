package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/google/subcommands"
)

func newCommander() *subcommands.Commander {
	c := subcommands.NewCommander(flag.NewFlagSet("tasa", flag.ContinueOnError), "tasa")
	Register(c)
	return c
}

func TestIsCommand(t *testing.T) {
	c := newCommander()
	for _, name := range []string{"status", "list", "add", "modify", "delete", "convert", "topic"} {
		if !IsCommand(c, name) {
			t.Errorf("IsCommand(%q) = false, want true", name)
		}
	}
	if IsCommand(c, "hello") {
		t.Errorf("IsCommand(hello) = true, want false")
	}
}

func TestCompletion(t *testing.T) {
	root := Completion(newCommander())

	convert, ok := root.Sub["convert"]
	if !ok {
		t.Fatal("convert is not completed")
	}
	for _, name := range []string{"i", "id", "s", "on", "short"} {
		if _, ok := convert.Flags[name]; !ok {
			t.Errorf("convert flag -%s is not completed", name)
		}
	}
	if _, ok := root.Sub["delete"].Flags["r"]; ok {
		t.Errorf("delete has no -r flag")
	}
}

func TestPredictLabels(t *testing.T) {
	_, file := setupTest(t)
	writeRates(t, file, threeRates)

	got := predictLabels("ID: 2")
	want := []string{"ID: 2 | 2025-10-13 | Tasa: 36.20"}
	if !slices.Equal(got, want) {
		t.Errorf("predictLabels() = %q, want %q", got, want)
	}
	if all := predictLabels(""); len(all) != 3 {
		t.Errorf("predictLabels(\"\") returned %d labels, want 3", len(all))
	}
}

func TestPredictLabelsDoesNotCreateFile(t *testing.T) {
	_, file := setupTest(t)
	if got := predictLabels(""); len(got) != 0 {
		t.Errorf("predictLabels() = %q, want none", got)
	}
	if _, err := os.Stat(file); err == nil {
		t.Errorf("completion created the rates file")
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script is a shell script")
	}
	setupTest(t)

	bin := t.TempDir()
	out := filepath.Join(t.TempDir(), "out.txt")
	script := "#!/bin/sh\necho \"$TASA_FILE $TASA_BASE $TASA_QUOTE $1\" > \"$2\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(bin, "tasa-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)

	found, code := RunExtension("hello", []string{"world", out})
	if !found {
		t.Fatal("extension tasa-hello not found")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := rateFile + " USD EUR world\n"; string(got) != want {
		t.Errorf("extension received %q, want %q", got, want)
	}

	if found, _ := RunExtension("missing", nil); found {
		t.Errorf("RunExtension(missing) found an extension")
	}
}

func TestParsePositiveRate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"36.5", "36.5", false},
		{"36,5", "36.5", false},
		{"1", "1", false},
		{"", "", true},
		{"abc", "", true},
		{"0", "", true},
		{"-2", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePositiveRate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePositiveRate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("parsePositiveRate(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
