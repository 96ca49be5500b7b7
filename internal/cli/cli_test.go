package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kryva/kryva/internal/catalog"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "kryva "+Version+"\n", out)
}

func TestCatalog_All(t *testing.T) {
	out, err := run(t, "catalog")

	require.NoError(t, err)
	for _, name := range catalog.Names() {
		assert.Contains(t, out, name)
	}
}

func TestCatalog_OneList(t *testing.T) {
	out, err := run(t, "catalog", catalog.ListLearningStyles)

	require.NoError(t, err)
	assert.Contains(t, out, "Practice problems")
	assert.NotContains(t, out, catalog.ListSemesters)
}

func TestCatalog_JSON(t *testing.T) {
	out, err := run(t, "catalog", catalog.ListStressLevels, "--json")
	require.NoError(t, err)

	var got map[string][]catalog.Option
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, catalog.StressLevels(), got[catalog.ListStressLevels])
}

func TestCatalog_UnknownList(t *testing.T) {
	_, err := run(t, "catalog", "colours")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown list")
}

func TestTerms_Raw(t *testing.T) {
	out, err := run(t, "terms", "--raw")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Terms of Service"))
}

func TestTerms_Rendered(t *testing.T) {
	out, err := run(t, "terms", "--width", "60")

	require.NoError(t, err)
	assert.Contains(t, out, "Terms of Service")
}
