package cli

import (
	"bytes"
	"strings"
	"testing"

	localuuid "github.com/kchason/CDO-Utility-Local-UUID"
	"github.com/google/uuid"
)

func runGen(t *testing.T, args ...string) string {
	t.Helper()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"gen"}, args...))

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute gen: %v", err)
	}

	return buf.String()
}

func parseLines(t *testing.T, out string, wantVersion int) []string {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, line := range lines {
		parsed, err := uuid.Parse(line)
		if err != nil {
			t.Fatalf("expected valid uuid line, got %q: %v", line, err)
		}
		if int(parsed.Version()) != wantVersion {
			t.Fatalf("expected version %d uuid, got version %d", wantVersion, parsed.Version())
		}
	}
	return lines
}

func TestGenRandomByDefault(t *testing.T) {
	t.Setenv(localuuid.EnvNonRandomBase, "")

	first := parseLines(t, runGen(t, "-n", "3"), 4)
	second := parseLines(t, runGen(t, "-n", "3"), 4)

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 lines per run, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] == second[i] {
			t.Fatalf("random runs must not repeat, got %q twice", first[i])
		}
	}
}

func TestGenReproducibleWithBase(t *testing.T) {
	t.Setenv(localuuid.EnvNonRandomBase, t.TempDir())

	first := runGen(t, "-n", "5")
	second := runGen(t, "-n", "5")

	if first != second {
		t.Fatalf("expected identical sequences, got:\n%s\nvs\n%s", first, second)
	}
	parseLines(t, first, 5)
}

func TestGenRejectsInvalidCount(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"gen", "-n", "0"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for count 0")
	}
}
