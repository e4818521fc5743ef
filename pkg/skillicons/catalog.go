// Package skillicons holds the icon catalog, the user's ordered selection,
// the display settings and the pure functions that turn them into
// skillicons.dev URLs and markup.
package skillicons

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/itchyny/gojq"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// IconID identifies one icon on the icon service, e.g. "js" or "docker".
type IconID string

// DefaultCatalogQuery extracts ids from a plain JSON/YAML list.
const DefaultCatalogQuery = ".[]"

var (
	ErrEmptyIconID     = errors.New("icon id must not be empty")
	ErrNonStringIconID = errors.New("catalog query produced a non-string value")
)

//go:embed catalog.json
var defaultCatalogJSON []byte

// Catalog is the fixed, ordered universe of icon ids. It never changes after
// construction.
type Catalog struct {
	ids   []IconID
	index map[IconID]struct{}
}

// NewCatalog builds a catalog from ids, keeping the first occurrence of any
// duplicate. Empty ids are rejected.
func NewCatalog(ids []IconID) (*Catalog, error) {
	c := &Catalog{
		ids:   make([]IconID, 0, len(ids)),
		index: make(map[IconID]struct{}, len(ids)),
	}
	for i, id := range ids {
		if strings.TrimSpace(string(id)) == "" {
			return nil, errors.Wrapf(ErrEmptyIconID, "catalog entry %d", i)
		}
		if _, dup := c.index[id]; dup {
			continue
		}
		c.index[id] = struct{}{}
		c.ids = append(c.ids, id)
	}
	return c, nil
}

// DefaultCatalog returns the catalog shipped with the binary.
func DefaultCatalog() (*Catalog, error) {
	var doc any
	if err := json.Unmarshal(defaultCatalogJSON, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded catalog")
	}
	return catalogFromDocument(doc, DefaultCatalogQuery)
}

// LoadCatalog reads a JSON or YAML document and extracts icon ids from it
// with a jq query. An empty query means DefaultCatalogQuery.
//
// For example the query `.icons[].id` reads
//
//	{"icons": [{"id": "go"}, {"id": "rust"}]}
func LoadCatalog(path, query string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog")
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog %s", path)
	}

	return catalogFromDocument(doc, query)
}

func catalogFromDocument(doc any, query string) (*Catalog, error) {
	if query == "" {
		query = DefaultCatalogQuery
	}

	jqQuery, err := gojq.Parse(query)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog query %q", query)
	}

	var ids []IconID
	iter := jqQuery.Run(doc)
	for {
		result, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := result.(error); isErr {
			return nil, errors.Wrap(err, "catalog query failed")
		}
		s, isString := result.(string)
		if !isString {
			return nil, errors.Wrapf(ErrNonStringIconID, "got %v", result)
		}
		ids = append(ids, IconID(s))
	}

	return NewCatalog(ids)
}

// IDs returns a copy of the catalog entries in catalog order.
func (c *Catalog) IDs() []IconID {
	out := make([]IconID, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of icons in the catalog.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Contains reports whether id is part of the catalog.
func (c *Catalog) Contains(id IconID) bool {
	_, ok := c.index[id]
	return ok
}
