package domain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// MaxAlternatives bounds every alternatives list.
const MaxAlternatives = 8

const defaultExtension = "com"

var (
	alternativeExtensions = []string{"com", "net", "org", "co", "ai", "io", "app", "xyz"}
	alternativePrefixes   = []string{"get", "my", "the", "use", "try"}
	alternativeSuffixes   = []string{"app", "hq", "pro", "hub", "co", "io"}
)

// SplitDomain returns the registrable label and the public suffix of a
// normalized domain, e.g. "shop" and "co.uk" for "blog.shop.co.uk".
func SplitDomain(domain string) (base, suffix string, err error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	suffix, _ = publicsuffix.PublicSuffix(domain)
	if suffix == "" || suffix == domain {
		return "", "", fmt.Errorf("%w: %s has no registrable name", ErrInvalidDomain, domain)
	}

	rest := strings.TrimSuffix(domain, "."+suffix)
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		rest = rest[i+1:]
	}
	if rest == "" {
		return "", "", fmt.Errorf("%w: %s has no registrable name", ErrInvalidDomain, domain)
	}
	return rest, suffix, nil
}

// GenerateAlternatives proposes up to MaxAlternatives variants of a taken
// domain: other extensions, prefixed and suffixed names, then numbered names.
func GenerateAlternatives(domain string) ([]string, error) {
	base, suffix, err := SplitDomain(domain)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, ext := range alternativeExtensions {
		if ext != suffix {
			candidates = append(candidates, base+"."+ext)
		}
	}
	for _, prefix := range alternativePrefixes {
		candidates = append(candidates, prefix+base+"."+defaultExtension)
	}
	for _, suffixWord := range alternativeSuffixes {
		candidates = append(candidates, base+suffixWord+"."+defaultExtension)
	}
	for i := 1; i <= 3; i++ {
		candidates = append(candidates, base+strconv.Itoa(i)+"."+defaultExtension)
	}

	return dedupe(candidates, strings.ToLower(domain), MaxAlternatives), nil
}

// BlendAlternatives mixes the first half of the deterministic list with the
// first AI-sourced domains. Slots the AI list cannot fill are taken from the
// rest of the deterministic list.
func BlendAlternatives(original string, basic, ai []string) []string {
	half := MaxAlternatives / 2

	var combined []string
	combined = append(combined, head(basic, half)...)

	var cleaned []string
	for _, d := range ai {
		if name, err := NormalizeDomain(d); err == nil {
			cleaned = append(cleaned, name)
		}
	}
	combined = append(combined, head(cleaned, half)...)
	if len(basic) > half {
		combined = append(combined, basic[half:]...)
	}

	return dedupe(combined, strings.ToLower(original), MaxAlternatives)
}

func head(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func dedupe(list []string, exclude string, limit int) []string {
	seen := map[string]struct{}{exclude: {}}
	out := make([]string, 0, limit)
	for _, d := range list {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
		if len(out) == limit {
			break
		}
	}
	return out
}
