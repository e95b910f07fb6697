// Package statements keeps the working set of classified statement files
// in one directory.
package statements

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/expenses-dev/expenses/internal/importer"
	"github.com/expenses-dev/expenses/internal/model"
	"github.com/expenses-dev/expenses/internal/summary"
)

// Skipped records a file that could not be loaded.
type Skipped struct {
	Source string
	Err    error
}

// Service holds one batch per statement file, ordered by earliest booking date.
type Service struct {
	dir     string
	opts    importer.Options
	log     zerolog.Logger
	batches []*model.Batch
	skipped []Skipped
}

// Load parses every CSV file in dir. Files that fail to parse are
// skipped with a warning; the rest make up the working set.
func Load(dir string, opts importer.Options, log zerolog.Logger) (*Service, error) {
	s := &Service{
		dir:  dir,
		opts: opts,
		log:  log.With().Str("component", "statements").Str("dir", dir).Logger(),
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the directory backing the working set.
func (s *Service) Dir() string { return s.dir }

// Batches returns the loaded batches in display order.
func (s *Service) Batches() []*model.Batch {
	return append([]*model.Batch(nil), s.batches...)
}

// Skipped returns the files dropped by the last Refresh.
func (s *Service) Skipped() []Skipped {
	return append([]Skipped(nil), s.skipped...)
}

// Get returns the batch loaded from source. source may be a full path or a
// base name inside the directory.
func (s *Service) Get(source string) (*model.Batch, bool) {
	i := s.indexOf(source)
	if i < 0 {
		return nil, false
	}
	return s.batches[i], true
}

// Refresh rescans the directory and replaces the whole working set.
func (s *Service) Refresh() error {
	files, err := importer.Scan(s.dir)
	if err != nil {
		return fmt.Errorf("scanning statements: %w", err)
	}

	batches := make([]*model.Batch, 0, len(files))
	var skipped []Skipped
	for _, f := range files {
		b, err := importer.ParseFile(f.Path, s.opts)
		if err != nil {
			s.log.Warn().Err(err).Str("file", f.Name).Msg("skipping statement")
			skipped = append(skipped, Skipped{Source: f.Path, Err: err})
			continue
		}
		if len(b.Issues) > 0 {
			s.log.Debug().Str("file", f.Name).Int("issues", len(b.Issues)).Msg("statement has row issues")
		}
		batches = append(batches, b)
	}
	summary.SortBatches(batches)

	s.batches = batches
	s.skipped = skipped
	s.log.Debug().Int("loaded", len(batches)).Int("skipped", len(skipped)).Msg("statements loaded")
	return nil
}

// Reload re-parses one file and replaces its batch wholesale.
func (s *Service) Reload(source string) (*model.Batch, error) {
	i := s.indexOf(source)
	if i < 0 {
		return nil, fmt.Errorf("statement %s not loaded", source)
	}

	b, err := importer.ParseFile(s.batches[i].Source, s.opts)
	if err != nil {
		return nil, fmt.Errorf("reloading %s: %w", source, err)
	}

	batches := append([]*model.Batch(nil), s.batches...)
	batches[i] = b
	summary.SortBatches(batches)
	s.batches = batches
	return b, nil
}

// Save writes a classified batch into the directory under name, or under
// PeriodFileName when name is empty. A file already in the working set is
// reloaded in place; a new one triggers a full refresh.
// It returns the written path.
func (s *Service) Save(b *model.Batch, name string) (string, error) {
	if name == "" {
		name = PeriodFileName(b, time.Now())
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating statements dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := importer.WriteFile(path, b); err != nil {
		return "", err
	}
	if s.indexOf(path) >= 0 {
		if _, err := s.Reload(path); err != nil {
			return "", err
		}
		return path, nil
	}
	if err := s.Refresh(); err != nil {
		return "", err
	}
	return path, nil
}

// PeriodFileName names a classified file after the first row's booking date,
// e.g. "2025_January_classified.csv". Without a first-row date it falls back
// to "classified_2025_10_19.csv" using now.
func PeriodFileName(b *model.Batch, now time.Time) string {
	if len(b.Transactions) > 0 && b.Transactions[0].HasDate() {
		d := b.Transactions[0].BookingDate
		return fmt.Sprintf("%d_%s_classified.csv", d.Year(), d.Month())
	}
	return "classified_" + now.Format("2006_01_02") + ".csv"
}

func (s *Service) indexOf(source string) int {
	for i, b := range s.batches {
		if b.Source == source || filepath.Base(b.Source) == source {
			return i
		}
	}
	return -1
}
