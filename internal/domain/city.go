package domain

import "strings"

// ModificationTag marks the map region a city belongs to.
type ModificationTag string

// List of possible modification tags
const (
	TagBase     ModificationTag = "base"
	TagExtended ModificationTag = "extended"
)

// Valid checks if the ModificationTag is valid
func (t ModificationTag) Valid() bool {
	return t == TagBase || t == TagExtended
}

// RandomCountry requests a city from any country.
const RandomCountry = "random"

// AnyCompany is used for a leg whose city has no affiliated freight companies.
const AnyCompany = "Any"

// CityRecord is a single City Catalog entry.
type CityRecord struct {
	RealName  string
	Country   string
	Tag       ModificationTag
	Companies []string
}

// ModificationFilter selects which modification tags are eligible.
// Without Extended only base cities qualify; with Extended base and extended cities do.
type ModificationFilter struct {
	Extended bool
}

// Allows reports whether a city with the given tag passes the filter.
func (f ModificationFilter) Allows(tag ModificationTag) bool {
	switch tag {
	case TagBase:
		return true
	case TagExtended:
		return f.Extended
	default:
		return false
	}
}

// ParseModificationFilter builds a filter from the set of requested tags.
// Unknown tags are ignored.
func ParseModificationFilter(tags []string) ModificationFilter {
	var f ModificationFilter
	for _, t := range tags {
		if ModificationTag(strings.ToLower(strings.TrimSpace(t))) == TagExtended {
			f.Extended = true
		}
	}
	return f
}
