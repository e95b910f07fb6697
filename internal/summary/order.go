package summary

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/expenses-dev/expenses/internal/model"
)

// SortBatches orders batches by earliest booking date, ascending.
// Batches without any date go last. Equal keys keep their input order.
func SortBatches(batches []*model.Batch) {
	type key struct {
		t  time.Time
		ok bool
	}
	keys := make(map[*model.Batch]key, len(batches))
	for _, b := range batches {
		t, ok := b.EarliestDate()
		keys[b] = key{t, ok}
	}

	sort.SliceStable(batches, func(i, j int) bool {
		ki, kj := keys[batches[i]], keys[batches[j]]
		if ki.ok != kj.ok {
			return ki.ok
		}
		return ki.t.Before(kj.t)
	})
}

// TabLabel derives a short display label from a statement file name:
// "giro_2025_01_classified.csv" becomes "giro 2025".
func TabLabel(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	parts := strings.Split(base, "_")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, " ")
}
