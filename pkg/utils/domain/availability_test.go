package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRoll(v float64) func() float64 {
	return func() float64 { return v }
}

func TestNormalizeDomain(t *testing.T) {
	tests := map[string]string{
		"example.com":                   "example.com",
		"  Example.COM ":                "example.com",
		"https://www.example.com/path":  "example.com",
		"http://WWW.Example.com/":       "example.com",
		"www.shop.co.uk":                "shop.co.uk",
		"https://example.com:443/a?b=c": "example.com",
		"example.com.":                  "example.com",
	}
	for in, want := range tests {
		got, err := NormalizeDomain(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "   ", "localhost", "http://", "bad..domain"} {
		_, err := NormalizeDomain(in)
		assert.ErrorIs(t, err, ErrInvalidDomain, in)
	}
}

func TestSimulatorWellKnownAlwaysTaken(t *testing.T) {
	sim := NewSimulatorWithRoll(fixedRoll(0.99))

	for _, d := range []string{"google.com", "https://www.facebook.com", "wikipedia.org"} {
		got, err := sim.CheckAvailability(context.Background(), d)
		require.NoError(t, err)
		assert.False(t, got.Available, d)
		assert.Equal(t, SourceSimulation, got.Source)
	}
}

func TestSimulatorHeuristic(t *testing.T) {
	ctx := context.Background()

	taken, err := NewSimulatorWithRoll(fixedRoll(0.69)).CheckAvailability(ctx, "brandnew.com")
	require.NoError(t, err)
	assert.False(t, taken.Available)

	free, err := NewSimulatorWithRoll(fixedRoll(0.7)).CheckAvailability(ctx, "brandnew.com")
	require.NoError(t, err)
	assert.True(t, free.Available)

	free, err = NewSimulatorWithRoll(fixedRoll(0.59)).CheckAvailability(ctx, "brandnew.io")
	require.NoError(t, err)
	assert.True(t, free.Available)

	taken, err = NewSimulatorWithRoll(fixedRoll(0.6)).CheckAvailability(ctx, "brandnew.io")
	require.NoError(t, err)
	assert.False(t, taken.Available)
}

func TestSimulatorErrors(t *testing.T) {
	sim := NewSimulator()

	_, err := sim.CheckAvailability(context.Background(), "nodot")
	var availErr *AvailabilityError
	require.True(t, errors.As(err, &availErr))
	assert.Equal(t, SourceSimulation, availErr.Source)
	assert.ErrorIs(t, err, ErrInvalidDomain)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.CheckAvailability(ctx, "example.com")
	assert.ErrorIs(t, err, context.Canceled)
}
