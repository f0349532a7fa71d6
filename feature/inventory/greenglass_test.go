package inventory

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sharedprint/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultConfig = Config{IDColumn: "Bib Record Number", Delimiter: ","}

func TestLoad(t *testing.T) {
	listing := "Title,Bib Record Number,Holdings\n" +
		"Ways of seeing,778,1\n" +
		"\"Design, as art\",912,2\n" +
		"Ways of seeing,778,1\n"

	ids, err := Load(strings.NewReader(listing), defaultConfig)
	require.NoError(t, err)
	assert.Equal(t, reconcile.NewSet("778", "912"), ids)
}

func TestLoad_ByteOrderMark(t *testing.T) {
	listing := "\uFEFFBib Record Number,Title\n101,A\n"

	ids, err := Load(strings.NewReader(listing), defaultConfig)
	require.NoError(t, err)
	assert.True(t, ids.Has("101"))
}

func TestLoad_CustomColumnAndDelimiter(t *testing.T) {
	listing := "id;title\n5;x\n6;y\n"

	ids, err := Load(strings.NewReader(listing), Config{IDColumn: "id", Delimiter: ";"})
	require.NoError(t, err)
	assert.Equal(t, reconcile.NewSet("5", "6"), ids)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		cfg     Config
		isErr   error
		contain string
	}{
		{"Missing column", "Title,Record\nA,1\n", defaultConfig, ErrMissingColumn, "Bib Record Number"},
		{"Empty listing", "", defaultConfig, ErrMissingColumn, "empty"},
		{"Short row", "Title,Bib Record Number\nA\n", defaultConfig, nil, "line 2"},
		{"Bad delimiter", "a\n", Config{IDColumn: "a", Delimiter: ";;"}, nil, "single character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.listing), tt.cfg)
			require.Error(t, err)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
			assert.Contains(t, err.Error(), tt.contain)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenglass.csv")
	require.NoError(t, os.WriteFile(path, []byte("Bib Record Number\n1\n2\n"), 0o644))

	ids, err := LoadFile(context.Background(), nil, path, defaultConfig)
	require.NoError(t, err)
	assert.Equal(t, 2, ids.Len())

	_, err = LoadFile(context.Background(), nil, filepath.Join(t.TempDir(), "missing.csv"), defaultConfig)
	assert.Error(t, err)
}
