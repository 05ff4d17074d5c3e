package countries

import (
	_ "embed"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/agusnobile/checkout-verification/core/cache"
	"github.com/agusnobile/checkout-verification/locale"
)

//go:embed data/countriesMock.json
var countriesMock []byte

// Country is a selectable destination in the verification form.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Loader produces the full country list. The default loader reads the
// embedded dataset; tests and future backends swap their own in.
type Loader func() ([]Country, error)

// regionCodes maps a region to the country codes served for it.
var regionCodes = map[locale.Region][]string{
	locale.RegionLATAM:        {"AR", "BR", "MX", "CO", "CL", "PE", "UY"},
	locale.RegionEurope:       {"ES", "IT", "FR", "DE"},
	locale.RegionNorthAmerica: {"US", "CA"},
}

const defaultTTL = time.Hour

// Service serves the country list with a fixed-window cache in front of
// the loader, so the dataset is read at most once per hour.
type Service struct {
	cache *cache.TTL[[]Country]
	load  Loader
}

// Option configures a Service.
type Option func(*Service)

// WithLoader replaces the default embedded-data loader.
func WithLoader(load Loader) Option {
	return func(s *Service) {
		if load != nil {
			s.load = load
		}
	}
}

// WithTTL overrides the cache validity window.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache.NewTTL[[]Country](ttl)
	}
}

// NewService creates a country service backed by the embedded dataset.
func NewService(opts ...Option) *Service {
	s := &Service{
		cache: cache.NewTTL[[]Country](defaultTTL),
		load:  loadEmbedded,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func loadEmbedded() ([]Country, error) {
	var list []Country
	if err := json.Unmarshal(countriesMock, &list); err != nil {
		return nil, fmt.Errorf("parse countries data: %w", err)
	}
	return list, nil
}

// List returns all countries, served from cache when valid.
func (s *Service) List(ctx context.Context) ([]Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if list, ok := s.cache.Get(); ok {
		return list, nil
	}

	list, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	s.cache.Set(list)
	return list, nil
}

// ByRegion returns the countries served for a region. An empty region
// returns the full list; an unknown region returns an empty list.
func (s *Service) ByRegion(ctx context.Context, region string) ([]Country, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	if region == "" {
		return all, nil
	}

	wanted := map[string]bool{}
	for _, code := range regionCodes[locale.Region(strings.ToUpper(region))] {
		wanted[code] = true
	}

	filtered := make([]Country, 0, len(wanted))
	for _, c := range all {
		if wanted[c.Code] {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Invalidate discards the cached list so the next read hits the loader.
func (s *Service) Invalidate() {
	s.cache.Invalidate()
}

// Ping verifies the dataset is loadable. Used as a readiness probe.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.List(ctx)
	return err
}

// SetClock replaces the cache time source. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.cache.SetClock(now)
}
