package generator

import (
	"context"
	"fmt"
	"math/rand/v2"

	"justdeliver-dispatch/internal/apperr"
	"justdeliver-dispatch/internal/domain"
)

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Generator samples disposition routes from the City Catalog.
type Generator struct {
	catalog  cityCatalog
	accepted acceptedLookup
	rnd      Rand
}

// New creates a Generator. A nil rnd uses the process-wide math/rand/v2 source,
// which is safe for concurrent use; an injected Rand must be too if shared.
func New(c cityCatalog, accepted acceptedLookup, rnd Rand) *Generator {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Generator{catalog: c, accepted: accepted, rnd: rnd}
}

// Route resolves the loading and unloading legs of req.
// Loading and unloading cities are drawn independently, so both legs may name the same city.
func (g *Generator) Route(ctx context.Context, req domain.AssignmentRequest) (domain.Route, error) {
	loading, err := g.loadingCity(ctx, req)
	if err != nil {
		return domain.Route{}, err
	}
	unloading, err := g.pick(req.UnloadingCountry, req.Filter)
	if err != nil {
		return domain.Route{}, fmt.Errorf("unloading city: %w", err)
	}
	return domain.Route{
		LoadingCity:      loading.RealName,
		LoadingCompany:   g.company(loading),
		UnloadingCity:    unloading.RealName,
		UnloadingCompany: g.company(unloading),
	}, nil
}

func (g *Generator) loadingCity(ctx context.Context, req domain.AssignmentRequest) (domain.CityRecord, error) {
	if !req.AutoLoadingCity {
		city, err := g.pick(req.LoadingCountry, req.Filter)
		if err != nil {
			return domain.CityRecord{}, fmt.Errorf("loading city: %w", err)
		}
		return city, nil
	}
	if g.accepted == nil {
		return domain.CityRecord{}, apperr.ErrAutoLoadingCityNotFound
	}
	last, err := g.accepted.MostRecentAccepted(ctx)
	if err != nil {
		return domain.CityRecord{}, fmt.Errorf("most recent accepted disposition: %w", err)
	}
	if last == nil {
		return domain.CityRecord{}, apperr.ErrAutoLoadingCityNotFound
	}
	city, ok := g.catalog.Lookup(last.UnloadingCity)
	if !ok {
		return domain.CityRecord{}, fmt.Errorf("%w: %q is not in the catalog", apperr.ErrAutoLoadingCityNotFound, last.UnloadingCity)
	}
	return city, nil
}

func (g *Generator) pick(country string, f domain.ModificationFilter) (domain.CityRecord, error) {
	candidates := g.catalog.Eligible(country, f)
	if len(candidates) == 0 {
		return domain.CityRecord{}, fmt.Errorf("%w: country %q extended=%t", apperr.ErrEmptyCandidateSet, country, f.Extended)
	}
	return candidates[g.rnd.IntN(len(candidates))], nil
}

func (g *Generator) company(city domain.CityRecord) string {
	if len(city.Companies) == 0 {
		return domain.AnyCompany
	}
	return city.Companies[g.rnd.IntN(len(city.Companies))]
}
