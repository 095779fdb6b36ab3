package examples_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/perspective-retraites/internal/examples"
	"github.com/iwvelando/perspective-retraites/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestApplyOverrides(t *testing.T) {
	store := testutil.NewStore(t, nil)
	doc := `
values:
  smic: 22000
  rafale: 1.1e8
  inconnu: 12
`
	report, err := examples.ApplyOverrides(zaptest.NewLogger(t), store, strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"rafale", "smic"}, report.Applied)
	assert.Equal(t, []string{"inconnu"}, report.Skipped)

	ex, _ := store.Lookup("smic")
	assert.Equal(t, 22_000.0, ex.Value)
	ex, _ = store.Lookup("rafale")
	assert.Equal(t, 1.1e8, ex.Value)
}

func TestApplyOverridesEmptyDocument(t *testing.T) {
	store := testutil.NewStore(t, nil)

	report, err := examples.ApplyOverrides(nil, store, strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.Empty(t, report.Skipped)
}

func TestApplyOverridesInvalidDocument(t *testing.T) {
	store := testutil.NewStore(t, nil)

	_, err := examples.ApplyOverrides(nil, store, strings.NewReader("values: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode example overrides")
}

func TestLoadOverridesFile(t *testing.T) {
	store := testutil.NewStore(t, nil)
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("values:\n  baguette: 1.3\n"), 0o600))

	report, err := examples.LoadOverridesFile(zaptest.NewLogger(t), store, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"baguette"}, report.Applied)

	ex, _ := store.Lookup("baguette")
	assert.Equal(t, 1.3, ex.Value)
}

func TestLoadOverridesFileMissing(t *testing.T) {
	store := testutil.NewStore(t, nil)

	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.yaml")} {
		report, err := examples.LoadOverridesFile(nil, store, path)
		require.NoError(t, err)
		assert.Empty(t, report.Applied)
	}
}
