package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusnobile/checkout-verification/core/config"
)

type testConfig struct {
	Name string `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
	Port int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
}

type otherConfig struct {
	Flag bool `env:"CONFIG_TEST_FLAG" envDefault:"true"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("caches per type", func(t *testing.T) {
		var first testConfig
		require.NoError(t, config.Load(&first))

		// Environment changes after the first load are invisible.
		t.Setenv("CONFIG_TEST_NAME", "changed")

		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("distinct types cached independently", func(t *testing.T) {
		var cfg otherConfig
		require.NoError(t, config.Load(&cfg))
		assert.True(t, cfg.Flag)
	})

	t.Run("rejects non-pointer targets", func(t *testing.T) {
		err := config.Load(testConfig{})
		assert.Error(t, err)
	})
}
