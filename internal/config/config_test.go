package config_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babel-tcc/kwtables/internal/config"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"kwtables.yml": &fstest.MapFile{Data: []byte("workers: 4\nlanguages: [pt, es]\nskip:\n  - \"natural-languages/*/draft-*.json\"\n")},
	}

	cfg, err := config.Load(fsys, config.DefaultFileName)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"pt", "es"}, cfg.Languages)
	assert.Equal(t, []string{"natural-languages/*/draft-*.json"}, cfg.Skip)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(fstest.MapFS{}, config.DefaultFileName)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, cfg)
}

func TestParseInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("workers: [not an int"))
	require.Error(t, err)
}

func TestParseNegativeWorkers(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("workers: -2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}
