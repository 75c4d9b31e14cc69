package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/minigrep/internal/cmd"
)

func TestRootCommandWiring(t *testing.T) {
	rootCmd := cmd.NewRootCommand()
	if rootCmd.Version == "" {
		t.Error("Version should not be empty")
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out.String(), cmd.Version) {
		t.Errorf("version output = %q, want it to contain %q", out.String(), cmd.Version)
	}
}
