package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	inTempDir(t)
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	if !strings.Contains(out, "space-engineer version dev") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestLevelsCommand(t *testing.T) {
	out := execute(t, "levels")
	for _, want := range []string{"Level1", "BossLevel", "enemies_destroyed >= 25", "4 níveis válidos"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRankingCommand(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "ranking.db")
	out := execute(t, "ranking", "--dialect", "sqlite", "--dsn", dsn)
	if !strings.Contains(out, "Nenhuma pontuação registrada") {
		t.Errorf("empty board expected:\n%s", out)
	}

	out = execute(t, "ranking", "--dialect", "sqlite", "--dsn", dsn, "--clear")
	if !strings.Contains(out, "Ranking limpo.") {
		t.Errorf("clear not reported:\n%s", out)
	}
}
