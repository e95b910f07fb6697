package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/categorizer"
	"github.com/expenses-dev/expenses/internal/config"
	"github.com/expenses-dev/expenses/internal/importer"
	"github.com/expenses-dev/expenses/internal/logging"
	"github.com/expenses-dev/expenses/internal/statements"
)

// workspace bundles what every command needs from an expenses directory.
type workspace struct {
	root string
	cfg  *config.Config
	log  zerolog.Logger
}

func openWorkspace(cmd *cobra.Command, repoDir string) (*workspace, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadWorkspace(root)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return &workspace{root: root, cfg: cfg, log: log.With().Str("cmd", cmd.Name()).Logger()}, nil
}

func (w *workspace) path(p string) string {
	return config.Resolve(w.root, p)
}

func (w *workspace) parseOptions() importer.Options {
	return importer.Options{
		SkipOffsets:        w.cfg.Parse.SkipOffsets,
		ZeroMissingAmounts: w.cfg.Compat.ZeroMissingAmounts,
	}
}

// lexicon loads the category lexicon. Commands fail on error before
// touching any statement file.
func (w *workspace) lexicon() (*categorizer.Lexicon, error) {
	lex, err := categorizer.LoadLexicon(w.path(w.cfg.Paths.Lexicon))
	if err != nil {
		return nil, fmt.Errorf("loading category lexicon: %w", err)
	}
	return lex, nil
}

func (w *workspace) categorizer() (*categorizer.Categorizer, error) {
	lex, err := w.lexicon()
	if err != nil {
		return nil, err
	}
	return categorizer.New(lex, w.log), nil
}

func (w *workspace) statements() (*statements.Service, error) {
	return statements.Load(w.path(w.cfg.Paths.Classified), w.parseOptions(), w.log)
}
