package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"shopassist/internal/model"

	"github.com/rs/zerolog/log"
)

// ErrNoItemColumn is returned when a table has no item-identifying column
var ErrNoItemColumn = errors.New("catalog has no item column")

// Source provides the raw product table
type Source interface {
	Name() string
	Load(ctx context.Context) (*model.Table, error)
}

// CSVSource reads the catalog from a CSV file with a header row
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSV-backed source
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Name implements Source
func (s *CSVSource) Name() string {
	return "csv:" + s.Path
}

// Load implements Source
func (s *CSVSource) Load(ctx context.Context) (*model.Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return ReadCSV(ctx, f)
}

// ReadCSV parses a CSV stream whose first record is the header
func ReadCSV(ctx context.Context, r io.Reader) (*model.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	table := &model.Table{Columns: header}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog record: %w", err)
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}

// Load builds an index from the first source that yields a usable table.
// When every source fails the demo table is served instead.
func Load(ctx context.Context, sources ...Source) *Index {
	for _, src := range sources {
		if src == nil {
			continue
		}
		table, err := src.Load(ctx)
		if err != nil {
			log.Warn().Err(err).Str("source", src.Name()).Msg("Catalog source unavailable")
			continue
		}
		idx := NewIndex(table, src.Name(), false)
		if !idx.HasRole(model.RoleItem) {
			log.Warn().Err(ErrNoItemColumn).Str("source", src.Name()).Strs("columns", idx.Columns()).Msg("Catalog source rejected")
			continue
		}
		log.Info().
			Str("source", src.Name()).
			Int("rows", idx.Len()).
			Interface("roles", idx.Roles()).
			Msg("✅ Catalog loaded")
		return idx
	}

	log.Warn().Msg("⚠️  No catalog source available, serving built-in demo catalog")
	return NewDemoIndex()
}
