package loader

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/munival-go/internal/errors"
	"github.com/wagiedev/munival-go/internal/record"
)

// Sources locates the two input tables.
type Sources struct {
	MunicipalityPath string
	ValidatorPath    string
	Encoding         Encoding
}

// Tables holds the loaded municipality and validator tables.
type Tables struct {
	Municipalities *record.MunicipalityTable
	Validators     *record.ValidatorTable
}

// Load reads both sources concurrently. It fails if either source fails;
// no partially loaded Tables value is ever returned.
func Load(ctx context.Context, logger *slog.Logger, src Sources) (*Tables, error) {
	var tables Tables

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := LoadMunicipalities(gCtx, logger, src.MunicipalityPath, src.Encoding)
		if err != nil {
			return err
		}

		tables.Municipalities = t

		return nil
	})

	g.Go(func() error {
		t, err := LoadValidators(gCtx, logger, src.ValidatorPath, src.Encoding)
		if err != nil {
			return err
		}

		tables.Validators = t

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &tables, nil
}

// LoadMunicipalities reads the municipality table from path.
func LoadMunicipalities(
	ctx context.Context,
	logger *slog.Logger,
	path string,
	enc Encoding,
) (*record.MunicipalityTable, error) {
	var table *record.MunicipalityTable

	err := readFile(ctx, path, enc, func(r io.Reader) error {
		var err error
		table, err = ReadMunicipalities(r)

		return err
	})
	if err != nil {
		logger.Error("failed to load municipalities", "path", path, "error", err)

		return nil, &errors.LoadError{Source: errors.SourceMunicipalities, Path: path, Err: err}
	}

	logger.Info("municipalities loaded", "path", path, "count", table.Len())

	return table, nil
}

// LoadValidators reads the validator table from path.
func LoadValidators(
	ctx context.Context,
	logger *slog.Logger,
	path string,
	enc Encoding,
) (*record.ValidatorTable, error) {
	var table *record.ValidatorTable

	err := readFile(ctx, path, enc, func(r io.Reader) error {
		var err error
		table, err = ReadValidators(r)

		return err
	})
	if err != nil {
		logger.Error("failed to load validators", "path", path, "error", err)

		return nil, &errors.LoadError{Source: errors.SourceValidators, Path: path, Err: err}
	}

	logger.Info("validator rows loaded",
		"path", path,
		"rows", table.Total(),
		"municipalities", table.Len(),
	)

	return table, nil
}

func readFile(ctx context.Context, path string, enc Encoding, parse func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := NewReader(f, enc)
	if err != nil {
		return err
	}

	return parse(r)
}
