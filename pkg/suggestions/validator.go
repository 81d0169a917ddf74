package suggestions

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse means the provider output holds no usable JSON array.
	ErrParse = errors.New("failed to parse domain suggestions from AI response")
	// ErrValidation means a JSON array was found but no record passed the shape checks.
	ErrValidation = errors.New("no valid domain suggestions generated")
)

// maxArrayScans caps how many '[' positions are tried in free-form output.
const maxArrayScans = 64

// ParseSuggestions extracts the suggestion records from raw provider output.
// The whole text is tried as a JSON array first; otherwise the first embedded
// array with at least one decodable record is used. Records that do not
// decode into a DomainSuggestion are dropped.
func ParseSuggestions(raw string) ([]DomainSuggestion, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrParse
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		return decodeRecords(items), nil
	}

	var first []DomainSuggestion
	found := false
	scans := 0
	for i := 0; i < len(raw) && scans < maxArrayScans; i++ {
		if raw[i] != '[' {
			continue
		}
		scans++

		dec := json.NewDecoder(strings.NewReader(raw[i:]))
		var candidate []json.RawMessage
		if err := dec.Decode(&candidate); err != nil {
			continue
		}
		records := decodeRecords(candidate)
		if len(records) > 0 {
			return records, nil
		}
		if !found {
			first, found = records, true
		}
		// Resume after this array.
		i += int(dec.InputOffset()) - 1
	}
	if !found {
		return nil, ErrParse
	}
	return first, nil
}

func decodeRecords(items []json.RawMessage) []DomainSuggestion {
	out := make([]DomainSuggestion, 0, len(items))
	for _, item := range items {
		var s DomainSuggestion
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ValidateSuggestions keeps only suggestions with a non-empty name, domain
// and rationale and a known style. An empty result is ErrValidation.
func ValidateSuggestions(in []DomainSuggestion) ([]DomainSuggestion, error) {
	out := make([]DomainSuggestion, 0, len(in))
	for _, s := range in {
		s.Name = strings.TrimSpace(s.Name)
		s.Domain = strings.TrimSpace(s.Domain)
		s.Rationale = strings.TrimSpace(s.Rationale)
		s.Style = strings.TrimSpace(s.Style)

		if s.Name == "" || s.Domain == "" || s.Rationale == "" || !ValidStyle(s.Style) {
			continue
		}
		// Availability is only ever set by the service, never by a provider.
		s.IsAvailable = nil
		s.Alternatives = nil
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrValidation
	}
	return out, nil
}

// Extract runs ParseSuggestions and ValidateSuggestions on raw output.
func Extract(raw string) ([]DomainSuggestion, error) {
	parsed, err := ParseSuggestions(raw)
	if err != nil {
		return nil, err
	}
	valid, err := ValidateSuggestions(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w (%d records parsed)", err, len(parsed))
	}
	return valid, nil
}
