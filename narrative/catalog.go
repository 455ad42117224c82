// Package narrative resolves fault codes to localized human-readable
// text. The built-in catalogs are embedded at build time; an override
// directory can layer replacement or additional catalogs on top and is
// reloadable at runtime.
package narrative

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/apcheck/fault"
)

//go:embed catalogs/*.yaml
var embedded embed.FS

// fallbackTag is the language every lookup falls back to. The English
// catalog is the only one required to be complete.
var fallbackTag = language.English

// Catalog holds the narrative tables for every loaded language. It is
// safe for concurrent lookup and reload.
type Catalog struct {
	mu        sync.RWMutex
	languages map[language.Tag]map[fault.Code]string
	tags      []language.Tag
	matcher   language.Matcher
	overrides string
}

// Load builds a Catalog from the embedded language files.
func Load() (*Catalog, error) {
	c := &Catalog{languages: make(map[language.Tag]map[fault.Code]string)}
	if err := c.loadFS(embedded, "catalogs"); err != nil {
		return nil, err
	}
	if _, ok := c.languages[fallbackTag]; !ok {
		return nil, fmt.Errorf("embedded catalogs are missing the %s fallback", fallbackTag)
	}
	c.rebuildMatcher()
	return c, nil
}

// ApplyOverrides merges every *.yaml catalog in dir over the loaded
// tables. The file name (minus extension) names the language. Called
// again after a reload; replaced entries win, everything else keeps its
// embedded text.
func (c *Catalog) ApplyOverrides(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read override directory: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrides = dir
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read override catalog: %w", err)
		}
		if err := c.mergeCatalog(entry.Name(), data); err != nil {
			return err
		}
	}
	c.rebuildMatcher()
	return nil
}

// Reload re-applies the override directory, if one was set.
func (c *Catalog) Reload() error {
	c.mu.RLock()
	dir := c.overrides
	c.mu.RUnlock()
	if dir == "" {
		return nil
	}
	return c.ApplyOverrides(dir)
}

// Lookup returns a fault.Lookup resolving codes in the language best
// matching pref, falling back to English for anything untranslated.
func (c *Catalog) Lookup(pref language.Tag) fault.Lookup {
	// Match returns a synthesized tag; the index into the ordered tag
	// list is what identifies the catalog to use.
	c.mu.RLock()
	_, i, _ := c.matcher.Match(pref)
	tag := c.tags[i]
	c.mu.RUnlock()

	return func(code fault.Code) (string, bool) {
		c.mu.RLock()
		defer c.mu.RUnlock()
		if text, ok := c.languages[tag][code]; ok {
			return text, true
		}
		if text, ok := c.languages[fallbackTag][code]; ok {
			return text, true
		}
		return "", false
	}
}

// LookupLanguage is Lookup for a BCP 47 tag in string form. An
// unparsable tag falls back to English.
func (c *Catalog) LookupLanguage(name string) fault.Lookup {
	tag, err := language.Parse(name)
	if err != nil {
		tag = fallbackTag
	}
	return c.Lookup(tag)
}

// Languages returns the loaded language tags in unspecified order.
func (c *Catalog) Languages() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tags := make([]language.Tag, 0, len(c.languages))
	for tag := range c.languages {
		tags = append(tags, tag)
	}
	return tags
}

func (c *Catalog) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, entry := range entries {
		data, err := fs.ReadFile(fsys, filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if err := c.mergeCatalog(entry.Name(), data); err != nil {
			return err
		}
	}
	return nil
}

// mergeCatalog parses one language file into the table. Callers hold
// the write lock.
func (c *Catalog) mergeCatalog(filename string, data []byte) error {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	tag, err := language.Parse(name)
	if err != nil {
		return fmt.Errorf("catalog %s does not name a language: %w", filename, err)
	}

	var entries map[fault.Code]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse catalog %s: %w", filename, err)
	}

	table := c.languages[tag]
	if table == nil {
		table = make(map[fault.Code]string, len(entries))
		c.languages[tag] = table
	}
	for code, text := range entries {
		table[code] = text
	}
	return nil
}

// rebuildMatcher must run whenever the language set changes. English
// first so it is the matcher's default. Callers hold the write lock
// (or run before the catalog is shared).
func (c *Catalog) rebuildMatcher() {
	tags := []language.Tag{fallbackTag}
	for tag := range c.languages {
		if tag != fallbackTag {
			tags = append(tags, tag)
		}
	}
	c.tags = tags
	c.matcher = language.NewMatcher(tags)
}
