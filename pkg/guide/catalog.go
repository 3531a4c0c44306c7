package guide

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoMatch        = errors.New("no guide matches selection")
	ErrDuplicateGuide = errors.New("duplicate guide id")
)

// Selector picks a guide. ID wins when set; otherwise every non-empty field
// must match (case-insensitive).
type Selector struct {
	ID     string `json:"guide_id" query:"guide_id"`
	Crop   string `json:"crop" query:"crop"`
	Region string `json:"region" query:"region"`
	Soil   string `json:"soil" query:"soil"`
}

func (s Selector) matches(g *Guide) bool {
	if s.ID != "" {
		return g.ID == s.ID
	}
	eq := func(want, have string) bool { return want == "" || strings.EqualFold(want, have) }
	return eq(s.Crop, g.Crop) && eq(s.Region, g.Region) && eq(s.Soil, g.Soil)
}

// Catalog is the set of guides a server offers. The first guide is the
// default for new sessions.
type Catalog struct {
	guides []*Guide
	byID   map[string]*Guide
}

func NewCatalog(guides ...*Guide) (*Catalog, error) {
	if len(guides) == 0 {
		return nil, errors.New("guide catalog is empty")
	}
	c := &Catalog{byID: make(map[string]*Guide, len(guides))}
	for _, g := range guides {
		if _, dup := c.byID[g.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGuide, g.ID)
		}
		c.byID[g.ID] = g
		c.guides = append(c.guides, g)
	}
	return c, nil
}

func (c *Catalog) Default() *Guide { return c.guides[0] }

func (c *Catalog) Get(id string) (*Guide, bool) {
	g, ok := c.byID[id]
	return g, ok
}

// Filter returns the guides matching sel in catalog order.
func (c *Catalog) Filter(sel Selector) []*Guide {
	out := make([]*Guide, 0, len(c.guides))
	for _, g := range c.guides {
		if sel.matches(g) {
			out = append(out, g)
		}
	}
	return out
}

// Match returns the first guide matching sel.
func (c *Catalog) Match(sel Selector) (*Guide, error) {
	if found := c.Filter(sel); len(found) > 0 {
		return found[0], nil
	}
	return nil, fmt.Errorf("%w: %+v", ErrNoMatch, sel)
}

// LoadDir loads every guide file in dir (not recursive), in file name order.
// Files with other extensions are ignored.
func LoadDir(dir string) ([]*Guide, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load guides from %s: %w", dir, err)
	}
	var out []*Guide
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".csv", ".xlsx":
		default:
			continue
		}
		g, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}
