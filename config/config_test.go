package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmerlath/config"
	"github.com/katalvlaran/kmerlath/encoder"
	"github.com/katalvlaran/kmerlath/rhtraits"
	"github.com/katalvlaran/kmerlath/spacer"
)

func TestDefault(t *testing.T) {
	p := config.Default()
	require.NoError(t, p.Validate())
	e, err := p.NewEncoder()
	require.NoError(t, err)
	assert.Equal(t, rhtraits.DNA, e.Mode())
	assert.Equal(t, 64, e.Width())
	assert.Equal(t, 31, e.Spacer().Length())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	p := config.Params{
		Mode:   "protein_3bit",
		K:      12,
		Skips:  []int{0, 3},
		Window: 40,
		Width:  128,
		Score:  "hash",
		Seed:   99,
	}
	require.NoError(t, p.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	e, err := got.NewEncoder()
	require.NoError(t, err)
	assert.Equal(t, rhtraits.Protein8, e.Mode())
	assert.Equal(t, 40, e.Window())
	assert.Equal(t, 15, e.Spacer().Length())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.toml")
	require.NoError(t, os.WriteFile(path, []byte("k = 21\nwindow = 50\n"), 0o644))
	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 21, p.K)
	assert.Equal(t, 50, p.Window)
	assert.Equal(t, "DNA", p.Mode)
	assert.Equal(t, 64, p.Width)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("kk = 3\n"), 0o644))
	_, err = config.Load(unknown)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("k = 40\n"), 0o644))
	_, err = config.Load(bad)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, encoder.ErrSpanTooLarge)
}

func TestValidate(t *testing.T) {
	for name, tc := range map[string]struct {
		mutate func(*config.Params)
		want   error
	}{
		"mode":  {func(p *config.Params) { p.Mode = "RNA" }, rhtraits.ErrUnknownMode},
		"score": {func(p *config.Params) { p.Score = "best" }, encoder.ErrUnknownScore},
		"width": {func(p *config.Params) { p.Width = 16 }, encoder.ErrWidth},
		"skips": {func(p *config.Params) { p.Skips = []int{-1} }, spacer.ErrNegativeSkip},
		"k":     {func(p *config.Params) { p.K = 0 }, spacer.ErrSpan},
	} {
		p := config.Default()
		tc.mutate(&p)
		err := p.Validate()
		assert.ErrorIs(t, err, config.ErrInvalid, name)
		assert.ErrorIs(t, err, tc.want, name)
	}
}

func TestSaveDocumentsEveryField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, config.Default().Save(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(b)
	for _, c := range []string{
		"# Residue-handling mode",
		"# Retained symbols per seed",
		"# Gaps after each retained symbol",
		"# Minimizer window in bases",
		"# Key width in bits",
		"# Minimizer order",
		"# Seed of the hash score",
	} {
		assert.Contains(t, text, c)
	}
}
