package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"justdeliver-dispatch/internal/domain"
)

// cityDTO is the on-disk shape of a catalog entry.
type cityDTO struct {
	RealName  string   `json:"real_name" yaml:"real_name"`
	Country   string   `json:"country" yaml:"country"`
	Mod       string   `json:"mod" yaml:"mod"`
	Companies []string `json:"companies" yaml:"companies"`
}

func (d cityDTO) toDomain() domain.CityRecord {
	return domain.CityRecord{
		RealName:  d.RealName,
		Country:   d.Country,
		Tag:       domain.ModificationTag(strings.ToLower(strings.TrimSpace(d.Mod))),
		Companies: d.Companies,
	}
}

// Load reads a catalog file. The format is chosen by extension: .yaml/.yml or JSON otherwise.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(raw)
	default:
		return ParseJSON(raw)
	}
}

// ParseJSON builds a Catalog from a JSON array of cities.
func ParseJSON(raw []byte) (*Catalog, error) {
	var dtos []cityDTO
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dtos); err != nil {
		return nil, fmt.Errorf("decode catalog json: %w", err)
	}
	return fromDTOs(dtos)
}

// ParseYAML builds a Catalog from a YAML sequence of cities.
func ParseYAML(raw []byte) (*Catalog, error) {
	var dtos []cityDTO
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&dtos); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}
	return fromDTOs(dtos)
}

func fromDTOs(dtos []cityDTO) (*Catalog, error) {
	records := make([]domain.CityRecord, 0, len(dtos))
	for _, d := range dtos {
		records = append(records, d.toDomain())
	}
	return New(records)
}
