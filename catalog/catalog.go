// Package catalog holds the localized texts of the report template.
package catalog

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/benedoc-inc/nearmiss/types"
)

//go:embed texts/*.txt
var builtinTexts embed.FS

// Texts maps a semantic key to its localized string for one language.
type Texts map[string]string

// Get returns the text for key.
func (t Texts) Get(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// Catalog maps each language to its texts. It is read-only once loaded.
type Catalog struct {
	texts map[types.Language]Texts
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{texts: make(map[types.Language]Texts)}
}

// Set installs the texts of one language.
func (c *Catalog) Set(lang types.Language, texts Texts) {
	c.texts[lang] = texts
}

// Texts returns the texts of lang after checking every required key is
// present.
func (c *Catalog) Texts(lang types.Language) (Texts, error) {
	if err := c.ValidateLanguage(lang); err != nil {
		return nil, err
	}
	return c.texts[lang], nil
}

// ValidateLanguage reports the first required key missing for lang.
func (c *Catalog) ValidateLanguage(lang types.Language) error {
	texts, ok := c.texts[lang]
	if !ok {
		return types.NewReportErrorf(types.ErrCodeConfiguration, "no texts for language %q", lang).
			WithContext("language", string(lang))
	}
	for _, key := range RequiredKeys() {
		if _, ok := texts[key]; !ok {
			return MissingKey(lang, key)
		}
	}
	return nil
}

// Validate checks every supported language.
func (c *Catalog) Validate() error {
	for _, lang := range types.Languages() {
		if err := c.ValidateLanguage(lang); err != nil {
			return err
		}
	}
	return nil
}

// MissingKey is the configuration error for an absent text key.
func MissingKey(lang types.Language, key string) *types.ReportError {
	return types.NewReportErrorf(types.ErrCodeConfiguration, "text key %q missing for language %q", key, lang).
		WithContext("language", string(lang)).
		WithContext("key", key)
}

// Parse reads the "key = value" text format, one entry per line. Blank
// lines and lines starting with '#' are skipped.
func Parse(r io.Reader) (Texts, error) {
	texts := make(Texts)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, types.NewReportErrorf(types.ErrCodeConfiguration, "line %d: expected \"key = value\"", lineNo).
				WithContext("line", lineNo)
		}
		texts[strings.TrimSpace(key)] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, types.WrapError(types.ErrCodeConfiguration, "reading texts", err)
	}
	return texts, nil
}

// ParseYAML reads a flat YAML mapping of key to text.
func ParseYAML(r io.Reader) (Texts, error) {
	texts := make(Texts)
	if err := yaml.NewDecoder(r).Decode(&texts); err != nil {
		if err == io.EOF {
			return texts, nil
		}
		return nil, types.WrapError(types.ErrCodeConfiguration, "parsing YAML texts", err)
	}
	return texts, nil
}

// LoadDir loads <lang>.yaml, <lang>.yml or <lang>.txt for every supported
// language found in dir, then validates the result.
func LoadDir(dir string, verbose bool) (*Catalog, error) {
	c := New()
	for _, lang := range types.Languages() {
		texts, path, err := loadLanguage(dir, lang)
		if err != nil {
			return nil, err
		}
		if verbose {
			log.Printf("Loaded %d texts for %s from %s", len(texts), lang, path)
		}
		c.Set(lang, texts)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadLanguage(dir string, lang types.Language) (Texts, string, error) {
	for _, ext := range []string{".yaml", ".yml", ".txt"} {
		path := filepath.Join(dir, string(lang)+ext)
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, path, types.PathError(types.ErrCodeConfiguration, path, err)
		}
		var texts Texts
		if ext == ".txt" {
			texts, err = Parse(f)
		} else {
			texts, err = ParseYAML(f)
		}
		f.Close()
		if err != nil {
			if rErr, ok := types.AsReportError(err); ok {
				rErr.WithContext("path", path)
			}
			return nil, path, err
		}
		return texts, path, nil
	}
	return nil, "", types.NewReportErrorf(types.ErrCodeConfiguration, "no texts for language %q in %s", lang, dir).
		WithContext("language", string(lang))
}

// Default returns the built-in French, English and German texts.
func Default() (*Catalog, error) {
	c := New()
	for _, lang := range types.Languages() {
		name := fmt.Sprintf("texts/%s.txt", lang)
		f, err := builtinTexts.Open(name)
		if err != nil {
			return nil, types.PathError(types.ErrCodeConfiguration, name, err)
		}
		texts, err := Parse(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		c.Set(lang, texts)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
