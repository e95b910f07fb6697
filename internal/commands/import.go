package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/categorizer"
	"github.com/expenses-dev/expenses/internal/gitops"
	"github.com/expenses-dev/expenses/internal/importer"
	"github.com/expenses-dev/expenses/internal/logging"
	"github.com/expenses-dev/expenses/internal/runlog"
	"github.com/expenses-dev/expenses/internal/statements"
)

type importOptions struct {
	archive      bool
	nameByPeriod bool
}

func newImportCommand() *cobra.Command {
	var repoDir string
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Classify every export in the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, repoDir)
			if err != nil {
				return err
			}
			return runImport(cmd.OutOrStdout(), ws, opts, time.Now())
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().BoolVar(&opts.archive, "archive", false, "move imported exports to the processed directory")
	cmd.Flags().BoolVar(&opts.nameByPeriod, "name-by-period", false, "name output files after the statement month")

	return cmd
}

func runImport(out io.Writer, ws *workspace, opts importOptions, now time.Time) error {
	cat, err := ws.categorizer()
	if err != nil {
		return err
	}

	files, err := importer.Scan(ws.path(ws.cfg.Paths.Import))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "Nothing to import.")
		return nil
	}

	store, err := ws.statements()
	if err != nil {
		return err
	}

	runID := runlog.NewRunID()
	log := logging.WithRun(ws.log, runID)
	log.Info().Int("files", len(files)).Msg("import started")

	run := &importRun{id: runID, now: now, out: out, log: log}
	importErr := run.importFiles(ws, cat, store, files, opts)

	// Append even when importFiles failed part way.
	if err := runlog.Append(ws.path(ws.cfg.Paths.RunLog), run.entries); err != nil {
		log.Warn().Err(err).Msg("failed to write run log")
	}
	if importErr != nil {
		return importErr
	}

	if ws.cfg.Git.AutoCommit && run.imported > 0 {
		if err := commitImport(ws, runID, run.imported); err != nil {
			return err
		}
	}

	log.Info().Int("imported", run.imported).Int("skipped", run.skipped).Msg("import finished")
	fmt.Fprintf(out, "Imported %d, skipped %d (run %s)\n", run.imported, run.skipped, runID)
	return nil
}

// importRun collects the run log entries and counters of one import.
type importRun struct {
	id       string
	now      time.Time
	out      io.Writer
	log      zerolog.Logger
	entries  []runlog.Entry
	imported int
	skipped  int
}

func (r *importRun) record(e runlog.Entry) {
	e.Timestamp = r.now
	e.RunID = r.id
	r.entries = append(r.entries, e)
}

func (r *importRun) importFiles(ws *workspace, cat *categorizer.Categorizer, store *statements.Service, files []importer.FileInfo, opts importOptions) error {
	for _, f := range files {
		batch, err := importer.ParseFile(f.Path, ws.parseOptions())
		if err != nil {
			r.log.Warn().Err(err).Str("file", f.Name).Msg("skipping export")
			r.record(runlog.Entry{Source: f.Path, Action: runlog.ActionSkipped, Details: err.Error()})
			color.New(color.FgYellow).Fprintf(r.out, "skip  %s: %v\n", f.Name, skipReason(err))
			r.skipped++
			continue
		}

		classified := cat.ClassifyBatch(batch)
		name := importer.ClassifiedName(f.Path)
		if opts.nameByPeriod {
			name = statements.PeriodFileName(classified, r.now)
		}

		written, err := store.Save(classified, name)
		if err != nil {
			return fmt.Errorf("saving %s: %w", f.Name, err)
		}

		entry := runlog.Entry{
			Source:  f.Path,
			Action:  runlog.ActionClassified,
			Rows:    len(classified.Transactions),
			Issues:  len(classified.Issues),
			Output:  written,
			Details: issueSummary(classified.Issues),
		}
		r.record(entry)
		r.log.Info().Str("file", f.Name).Str("output", written).Int("rows", entry.Rows).Int("issues", entry.Issues).Msg("export classified")
		color.New(color.FgGreen).Fprintf(r.out, "ok    %s -> %s (%d rows)\n", f.Name, written, entry.Rows)
		r.imported++

		if opts.archive {
			dst, err := importer.Archive(f.Path, ws.path(ws.cfg.Paths.Processed))
			if err != nil {
				return err
			}
			r.record(runlog.Entry{Source: f.Path, Action: runlog.ActionArchived, Output: dst})
		}
	}
	return nil
}

func commitImport(ws *workspace, runID string, imported int) error {
	if !gitops.IsRepo(ws.root) {
		ws.log.Warn().Str("dir", ws.root).Msg("git.auto_commit is set but the workspace is not a git repository")
		return nil
	}
	changed, err := gitops.HasChanges(ws.root)
	if err != nil || !changed {
		return err
	}
	hash, err := gitops.CommitAll(ws.root, fmt.Sprintf("import: %d statement(s)\n\nRun: %s", imported, runID), gitAuthor(ws.cfg))
	if err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	ws.log.Info().Str("commit", hash).Msg("import committed")
	return nil
}

func skipReason(err error) string {
	var mal *importer.MalformedInputError
	if errors.As(err, &mal) {
		return "no header with Buchungsdatum and Betrag (€) found"
	}
	return err.Error()
}

// issueSummary joins row issues for the run log, capped to keep rows readable.
func issueSummary(issues []error) string {
	const maxIssues = 3
	msgs := make([]string, 0, maxIssues)
	for i, err := range issues {
		if i == maxIssues {
			msgs = append(msgs, fmt.Sprintf("+%d more", len(issues)-maxIssues))
			break
		}
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
