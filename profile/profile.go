// Package profile serves the stored user data that prefills the
// verification form. The dataset is a fixture today; the Loader seam is
// where a real user store plugs in.
package profile

import (
	_ "embed"
	"context"
	"encoding/json"
	"fmt"
)

//go:embed data/usersMock.json
var usersMock []byte

// User is the stored profile shown to the user for confirmation.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Country string `json:"country"`
}

// FormValues returns the profile as form field values keyed by field name.
func (u User) FormValues() map[string]string {
	return map[string]string{
		"name":    u.Name,
		"email":   u.Email,
		"address": u.Address,
		"country": u.Country,
	}
}

// Loader produces the current user's profile.
type Loader func() (User, error)

// Service resolves the profile for the verification flow. Fetch
// failures are returned as-is; the form degrades to empty fields
// rather than retrying.
type Service struct {
	load Loader
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

// NewService creates a profile service backed by the embedded dataset.
func NewService(opts ...Option) *Service {
	s := &Service{load: loadEmbedded}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func loadEmbedded() (User, error) {
	var u User
	if err := json.Unmarshal(usersMock, &u); err != nil {
		return User{}, fmt.Errorf("parse user data: %w", err)
	}
	return u, nil
}

// Current returns the stored profile for the requesting user.
func (s *Service) Current(ctx context.Context) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	return s.load()
}
