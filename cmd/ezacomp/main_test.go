package main

import (
	"testing"

	"github.com/eza-community/ezacomp"
)

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no arguments", nil, 2},
		{"unknown command", []string{"bogus"}, 2},
		{"generate with unsupported shell", []string{"generate", "--shell", "tcsh"}, 2},
		{"suggest without a line", []string{"suggest"}, 2},
		{"help", []string{"help"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestKnownShell(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		if !knownShell(shell) {
			t.Errorf("knownShell(%q) = false", shell)
		}
	}
	if knownShell("tcsh") {
		t.Error(`knownShell("tcsh") = true`)
	}
}

func TestFlagLabel(t *testing.T) {
	tests := []struct {
		flag *ezacomp.Flag
		want string
	}{
		{&ezacomp.Flag{Long: "all", Short: "a", TypeOf: ezacomp.Standalone}, "-a, --all"},
		{&ezacomp.Flag{Long: "git-ignore", TypeOf: ezacomp.Standalone}, "--git-ignore"},
		{&ezacomp.Flag{Long: "sort", Short: "s", TypeOf: ezacomp.Single}, "-s, --sort=..."},
	}

	for _, tt := range tests {
		if got := flagLabel(tt.flag); got != tt.want {
			t.Errorf("flagLabel(--%s) = %q, want %q", tt.flag.Long, got, tt.want)
		}
	}
}
