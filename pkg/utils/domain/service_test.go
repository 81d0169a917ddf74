package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func(ctx context.Context, domain string) (Availability, error)

func (f checkerFunc) CheckAvailability(ctx context.Context, domain string) (Availability, error) {
	return f(ctx, domain)
}

type fakeSimilar struct {
	domains []string
	err     error
	calls   []SimilarRequest
}

func (f *fakeSimilar) SimilarDomains(_ context.Context, req SimilarRequest) ([]string, error) {
	f.calls = append(f.calls, req)
	return f.domains, f.err
}

func TestServiceCheckWellKnown(t *testing.T) {
	svc := NewService(NewSimulator(), nil)

	got := svc.Check(context.Background(), CheckRequest{Domain: "facebook.com"})
	assert.False(t, got.IsAvailable)
	require.NotEmpty(t, got.Alternatives)
	assert.LessOrEqual(t, len(got.Alternatives), MaxAlternatives)
	assert.NotContains(t, got.Alternatives, "facebook.com")
	for _, alt := range got.Alternatives {
		assert.Contains(t, alt, "facebook")
	}
}

func TestServiceCheckAvailable(t *testing.T) {
	svc := NewService(NewSimulatorWithRoll(fixedRoll(0.1)), nil)

	got := svc.Check(context.Background(), CheckRequest{Domain: "brandnew.io"})
	assert.True(t, got.IsAvailable)
	assert.NotNil(t, got.Alternatives)
	assert.Empty(t, got.Alternatives)
}

func TestServiceCheckDegradesOnFailure(t *testing.T) {
	failing := checkerFunc(func(context.Context, string) (Availability, error) {
		return Availability{}, errors.New("registrar down")
	})
	panicking := checkerFunc(func(context.Context, string) (Availability, error) {
		panic("boom")
	})

	for name, checker := range map[string]Checker{"error": failing, "panic": panicking} {
		t.Run(name, func(t *testing.T) {
			got := NewService(checker, nil).Check(context.Background(), CheckRequest{Domain: "example.com"})
			assert.False(t, got.IsAvailable)
			assert.NotNil(t, got.Alternatives)
			assert.Empty(t, got.Alternatives)
		})
	}

	got := NewService(NewSimulator(), nil).Check(context.Background(), CheckRequest{Domain: "nodot"})
	assert.False(t, got.IsAvailable)
	assert.Empty(t, got.Alternatives)
}

func TestServiceCheckAIAlternatives(t *testing.T) {
	similar := &fakeSimilar{domains: []string{"friendbook.com", "palspace.io"}}
	svc := NewService(NewSimulator(), similar)

	got := svc.Check(context.Background(), CheckRequest{
		Domain:      "facebook.com",
		Description: "A social network for close friends",
		Tone:        "Funny",
		Provider:    "deepseek",
	})

	assert.False(t, got.IsAvailable)
	assert.Equal(t, []string{
		"facebook.net", "facebook.org", "facebook.co", "facebook.ai",
		"friendbook.com", "palspace.io",
		"facebook.io", "facebook.app",
	}, got.Alternatives)

	require.Len(t, similar.calls, 1)
	assert.Equal(t, SimilarRequest{
		Domain:      "facebook.com",
		Description: "A social network for close friends",
		Tone:        "Funny",
		Provider:    "deepseek",
	}, similar.calls[0])
}

func TestServiceCheckAIFailureKeepsBasic(t *testing.T) {
	similar := &fakeSimilar{err: errors.New("quota")}
	svc := NewService(NewSimulator(), similar)

	got := svc.Check(context.Background(), CheckRequest{Domain: "google.com", Description: "A search engine for recipes"})
	assert.False(t, got.IsAvailable)

	basic, err := GenerateAlternatives("google.com")
	require.NoError(t, err)
	assert.Equal(t, basic, got.Alternatives)
}

func TestServiceCheckSkipsAIWithoutDescription(t *testing.T) {
	similar := &fakeSimilar{domains: []string{"x.com"}}
	NewService(NewSimulator(), similar).Check(context.Background(), CheckRequest{Domain: "google.com"})
	assert.Empty(t, similar.calls)
}
