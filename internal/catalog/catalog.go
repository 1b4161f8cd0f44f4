package catalog

import (
	"fmt"
	"sort"
	"strings"

	"justdeliver-dispatch/internal/domain"
)

// Catalog is the immutable set of cities dispositions are drawn from.
// It is safe for concurrent use: nothing mutates it after New returns.
type Catalog struct {
	cities []domain.CityRecord
	byName map[string]int
}

// New validates records and builds a Catalog holding its own copy of them.
func New(records []domain.CityRecord) (*Catalog, error) {
	c := &Catalog{
		cities: make([]domain.CityRecord, 0, len(records)),
		byName: make(map[string]int, len(records)),
	}
	for i, r := range records {
		r.RealName = strings.TrimSpace(r.RealName)
		r.Country = strings.TrimSpace(r.Country)
		if r.RealName == "" {
			return nil, fmt.Errorf("city #%d: empty name", i)
		}
		if r.Country == "" {
			return nil, fmt.Errorf("city %q: empty country", r.RealName)
		}
		if r.Tag == "" {
			r.Tag = domain.TagBase
		}
		if !r.Tag.Valid() {
			return nil, fmt.Errorf("city %q: unknown modification tag %q", r.RealName, r.Tag)
		}
		if _, dup := c.byName[r.RealName]; dup {
			return nil, fmt.Errorf("city %q: duplicate entry", r.RealName)
		}
		r.Companies = cleanCompanies(r.Companies)
		c.byName[r.RealName] = len(c.cities)
		c.cities = append(c.cities, r)
	}
	return c, nil
}

func cleanCompanies(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of cities.
func (c *Catalog) Len() int { return len(c.cities) }

// Lookup returns the city with the given name.
func (c *Catalog) Lookup(name string) (domain.CityRecord, bool) {
	i, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return domain.CityRecord{}, false
	}
	return c.cities[i], true
}

// Eligible returns the cities of country that pass the filter.
// domain.RandomCountry matches every country.
func (c *Catalog) Eligible(country string, f domain.ModificationFilter) []domain.CityRecord {
	country = strings.TrimSpace(country)
	anyCountry := country == "" || strings.EqualFold(country, domain.RandomCountry)

	out := make([]domain.CityRecord, 0)
	for _, city := range c.cities {
		if !f.Allows(city.Tag) {
			continue
		}
		if !anyCountry && !strings.EqualFold(city.Country, country) {
			continue
		}
		out = append(out, city)
	}
	return out
}

// Countries returns the sorted distinct countries that have at least one city passing the filter.
func (c *Catalog) Countries(f domain.ModificationFilter) []string {
	seen := make(map[string]struct{})
	for _, city := range c.cities {
		if f.Allows(city.Tag) {
			seen[city.Country] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
