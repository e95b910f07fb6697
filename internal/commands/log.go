package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/runlog"
)

func newLogCommand() *cobra.Command {
	var repoDir, runID string
	var last bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show what past import runs did",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, repoDir)
			if err != nil {
				return err
			}
			return runLog(cmd.OutOrStdout(), ws, runID, last)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&runID, "run", "", "only show this run")
	cmd.Flags().BoolVar(&last, "last", false, "only show the most recent run")
	cmd.MarkFlagsMutuallyExclusive("run", "last")

	return cmd
}

func runLog(out io.Writer, ws *workspace, runID string, last bool) error {
	entries, err := runlog.Read(ws.path(ws.cfg.Paths.RunLog))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No import runs recorded.")
		return nil
	}

	var runs []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.RunID] {
			seen[e.RunID] = true
			runs = append(runs, e.RunID)
		}
	}

	switch {
	case runID != "":
		if !seen[runID] {
			return fmt.Errorf("no run %q in %s", runID, ws.cfg.Paths.RunLog)
		}
		runs = []string{runID}
	case last:
		runs = runs[len(runs)-1:]
	}

	heading := color.New(color.Bold)
	for i, id := range runs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		run := runlog.ByRun(entries, id)
		heading.Fprintf(out, "Run %s", id)
		fmt.Fprintf(out, "  %s\n", run[0].Timestamp.Local().Format(time.DateTime))
		for _, e := range run {
			printLogEntry(out, e)
		}
	}
	return nil
}

func printLogEntry(out io.Writer, e runlog.Entry) {
	src := filepath.Base(e.Source)
	switch e.Action {
	case runlog.ActionClassified:
		color.New(color.FgGreen).Fprintf(out, "  %-10s", e.Action)
		fmt.Fprintf(out, "  %s -> %s (%d rows, %d issue(s))\n", src, filepath.Base(e.Output), e.Rows, e.Issues)
	case runlog.ActionSkipped:
		color.New(color.FgYellow).Fprintf(out, "  %-10s", e.Action)
		fmt.Fprintf(out, "  %s: %s\n", src, e.Details)
	default:
		fmt.Fprintf(out, "  %-10s  %s -> %s\n", e.Action, src, e.Output)
	}
}
