// Package config provides type-safe environment variable loading with
// per-type caching. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads .env files on first use and parses environment
// variables into struct fields via the caarlos0/env library:
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cacheMu    sync.RWMutex
	cache      = make(map[reflect.Type]any)
)

// Load parses environment variables into the given struct pointer. Each
// struct type is parsed once per process; later calls return the cached
// value, so two loads of the same type always agree.
func Load(v any) error {
	// Missing .env files are fine; real environments set variables directly.
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("config: target must be a non-nil pointer, got %T", v)
	}

	t := rv.Elem().Type()

	cacheMu.RLock()
	cached, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		rv.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(v); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", t, err)
	}

	cacheMu.Lock()
	cache[t] = rv.Elem().Interface()
	cacheMu.Unlock()

	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup where
// a missing required variable should stop the process.
func MustLoad(v any) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
