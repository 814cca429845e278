package munival

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadError_Formatting(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("permission denied")
	err := &LoadError{Source: SourceValidators, Path: "PresetFiles/TFIX105.txt", Err: inner}

	require.Contains(t, err.Error(), "validators")
	require.Contains(t, err.Error(), "PresetFiles/TFIX105.txt")
	require.Contains(t, err.Error(), "permission denied")
	require.ErrorIs(t, err, inner)
}

func TestErrors_ImplementMunivalError(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		&LoadError{Source: SourceMunicipalities, Err: os.ErrNotExist},
		&ArgumentError{Name: "validator"},
	} {
		var me MunivalError
		require.ErrorAs(t, err, &me)
		require.True(t, me.IsMunivalError())
	}
}

func TestOpen_MissingFileIsLoadError(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "TACES06.TXT")

	_, err := Open(context.Background(),
		WithMunicipalityFile(missing),
		WithValidatorFile(filepath.Join("testdata", "TFIX105.txt")),
	)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, SourceMunicipalities, loadErr.Source)
	require.Equal(t, missing, loadErr.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_UnknownEncoding(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), WithEncoding("ebcdic"))
	require.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	c := NewCatalog(nil, nil)

	_, err := c.Find("   ")
	require.ErrorIs(t, err, ErrEmptyQuery)

	_, err = StaticCatalog{}.Catalog(context.Background())
	require.True(t, errors.Is(err, ErrNotLoaded))
}
