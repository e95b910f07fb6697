package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/expenses-dev/expenses/internal/categorizer"
	"github.com/expenses-dev/expenses/internal/config"
	"github.com/expenses-dev/expenses/internal/gitops"
)

func gitAuthor(cfg *config.Config) gitops.Author {
	return gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
}

func newInitCommand() *cobra.Command {
	var force, useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new expenses workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, force, useGit)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing expenses.yaml and lexicon")
	cmd.Flags().BoolVar(&useGit, "git", false, "track the workspace in git and commit after each import")

	return cmd
}

func runInit(out io.Writer, dir string, force, useGit bool) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	cfg := config.Default()
	cfg.Git.AutoCommit = useGit

	// Create directory structure.
	dirs := []string{
		filepath.Dir(cfg.Paths.Lexicon),
		cfg.Paths.Import,
		cfg.Paths.Processed,
		cfg.Paths.Classified,
		filepath.Dir(cfg.Paths.RunLog),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write expenses.yaml.
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the starter lexicon.
	if err := categorizer.SaveLexicon(filepath.Join(dir, cfg.Paths.Lexicon), categorizer.DefaultLexicon()); err != nil {
		return fmt.Errorf("writing lexicon: %w", err)
	}

	// Write .gitignore.
	gitignore := ".env\nimport/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if useGit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return err
			}
		}
		hash, err := gitops.CommitAll(dir, "init: expenses workspace", gitAuthor(cfg))
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Fprintf(out, "Initialized expenses workspace at %s (%s)\n", dir, hash)
	} else {
		fmt.Fprintf(out, "Initialized expenses workspace at %s\n", dir)
	}
	fmt.Fprintf(out, "Drop bank exports into %s and run `expenses import`.\n", filepath.Join(dir, cfg.Paths.Import))
	return nil
}
