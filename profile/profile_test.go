package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusnobile/checkout-verification/profile"
)

func TestServiceCurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("embedded dataset", func(t *testing.T) {
		t.Parallel()

		svc := profile.NewService()
		user, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Juan Pérez", user.Name)
		assert.Equal(t, "juan.perez@example.com", user.Email)
		assert.Equal(t, "AR", user.Country)
	})

	t.Run("custom loader", func(t *testing.T) {
		t.Parallel()

		svc := profile.NewService(profile.WithLoader(func() (profile.User, error) {
			return profile.User{Name: "Ana", Country: "BR"}, nil
		}))
		user, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)
	})

	t.Run("loader error surfaces without retry", func(t *testing.T) {
		t.Parallel()

		var calls int
		loadErr := errors.New("store unavailable")
		svc := profile.NewService(profile.WithLoader(func() (profile.User, error) {
			calls++
			return profile.User{}, loadErr
		}))

		_, err := svc.Current(ctx)
		require.ErrorIs(t, err, loadErr)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		svc := profile.NewService()
		_, err := svc.Current(canceled)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestUserFormValues(t *testing.T) {
	t.Parallel()

	u := profile.User{Name: "Ana", Email: "a@b.co", Address: "Calle 1", Country: "MX"}
	values := u.FormValues()
	assert.Equal(t, map[string]string{
		"name":    "Ana",
		"email":   "a@b.co",
		"address": "Calle 1",
		"country": "MX",
	}, values)
}
