package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedoc-inc/nearmiss/types"
)

func TestRequiredKeys(t *testing.T) {
	keys := RequiredKeys()
	assert.Len(t, keys, 89)
	assert.Contains(t, keys, "situation_30")
	assert.Contains(t, keys, "body_35")
	assert.Contains(t, keys, KeyComments)
	assert.NotContains(t, keys, "injury_6")

	seen := map[string]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	en, err := c.Texts(types.English)
	require.NoError(t, err)
	assert.Equal(t, "Other:", en["situation_30"])

	fr, err := c.Texts(types.French)
	require.NoError(t, err)
	assert.Equal(t, "Œil droit", fr["body_2"])

	de, err := c.Texts(types.German)
	require.NoError(t, err)
	v, ok := de.Get(KeyPDFTitle)
	assert.True(t, ok)
	assert.Contains(t, v, "Beinaheunfall")
}

func TestParse(t *testing.T) {
	in := "# comment\ntitle = Report\n\npdf_title = A = B\r\n"
	texts, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "Report", texts["title"])
	assert.Equal(t, "A = B", texts["pdf_title"])

	_, err = Parse(strings.NewReader("title=Report\n"))
	require.Error(t, err)
	assert.True(t, types.IsConfigurationError(err))
}

func TestParseYAML(t *testing.T) {
	texts, err := ParseYAML(strings.NewReader("title: Report\nbody_1: Head\n"))
	require.NoError(t, err)
	assert.Equal(t, Texts{"title": "Report", "body_1": "Head"}, texts)

	empty, err := ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseYAML(strings.NewReader("- a\n- b\n"))
	assert.True(t, types.IsConfigurationError(err))
}

func TestValidateLanguage_MissingKey(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	en, err := c.Texts(types.English)
	require.NoError(t, err)
	broken := Texts{}
	for k, v := range en {
		broken[k] = v
	}
	delete(broken, "body_17")
	c.Set(types.English, broken)

	err = c.ValidateLanguage(types.English)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	rErr, ok := types.AsReportError(err)
	require.True(t, ok)
	assert.Equal(t, "body_17", rErr.Context["key"])

	_, err = c.Texts(types.English)
	assert.Error(t, err)
	assert.Error(t, c.Validate())

	_, err = New().Texts(types.French)
	assert.True(t, types.IsConfigurationError(err))
}

func writeTexts(t *testing.T, path string, texts Texts, yamlFormat bool) {
	t.Helper()
	var b strings.Builder
	for k, v := range texts {
		if yamlFormat {
			b.WriteString(k + ": \"" + v + "\"\n")
		} else {
			b.WriteString(k + " = " + v + "\n")
		}
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
}

func TestLoadDir(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	dir := t.TempDir()
	for _, lang := range types.Languages() {
		texts, err := def.Texts(lang)
		require.NoError(t, err)
		if lang == types.German {
			writeTexts(t, filepath.Join(dir, "de.yaml"), texts, true)
		} else {
			writeTexts(t, filepath.Join(dir, string(lang)+".txt"), texts, false)
		}
	}

	c, err := LoadDir(dir, false)
	require.NoError(t, err)
	de, err := c.Texts(types.German)
	require.NoError(t, err)
	assert.Equal(t, "Rechter Fuß", de["body_20"])

	require.NoError(t, os.Remove(filepath.Join(dir, "fr.txt")))
	_, err = LoadDir(dir, false)
	assert.True(t, types.IsConfigurationError(err))
}
