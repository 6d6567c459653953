package varbench

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// captureStdout runs f while capturing everything written to os.Stdout.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()
	f()
	w.Close()
	os.Stdout = old
	return <-outC
}

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
		if c.Name() == "list" {
			// list should have subcommands 'suites' and 'commands'
			sub := map[string]bool{}
			for _, sc := range c.Commands() {
				sub[sc.Name()] = true
			}
			if !sub["suites"] || !sub["commands"] {
				t.Fatalf("list subcommands missing: %v", sub)
			}
		}
	}
	for _, want := range []string{"run", "demo", "list", "tui"} {
		if !have[want] {
			t.Fatalf("missing subcommand %s", want)
		}
	}
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Short == "" || cmd.Long == "" {
			t.Fatalf("command %s missing Short/Long", cmd.Name())
		}
		for _, sc := range cmd.Commands() {
			if sc.Name() == "help" || sc.Name() == "completion" {
				continue
			}
			check(sc)
		}
	}
	check(rootCmd)
}

func TestListCommands_PrintsTree(t *testing.T) {
	out := captureStdout(t, func() {
		listAllCommands(rootCmd)
	})
	if !strings.Contains(out, "varbench run") {
		t.Fatalf("expected command path in output, got: %s", out)
	}
	if !strings.Contains(out, "varbench list suites") {
		t.Fatalf("expected nested command path in output, got: %s", out)
	}
}

func TestListSuites_PrintsAll(t *testing.T) {
	out := captureStdout(t, func() {
		listSuitesCmd.Run(listSuitesCmd, nil)
	})
	for _, want := range []string{"append-growth", "string-concat", "parallel-sum", "file-lines"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected suite %q in output, got: %s", want, out)
		}
	}
}
