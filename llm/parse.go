package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrNoJSON indicates no JSON object could be located in the text.
	ErrNoJSON = errors.New("no JSON object found in response")

	// ErrMissingBid indicates the JSON object lacks a numeric bid field.
	ErrMissingBid = errors.New("response did not contain a numeric 'bid' or 'bid_amount'")
)

// ParsedBid is the structured suggestion extracted from collaborator text.
type ParsedBid struct {
	Bid              float64
	Reasoning        string
	NewShadingFactor *float64
}

// ExtractJSON locates a JSON object embedded anywhere in free text, taking
// the slice from the first '{' to the last '}'. Models frequently wrap their
// JSON in prose or code fences, so the surrounding text is ignored.
func ExtractJSON(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("%w: %q", ErrNoJSON, truncate(text, 120))
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}
	return data, nil
}

// ParseBid extracts a bid suggestion from raw collaborator text. The bid
// field ("bid", alias "bid_amount") is required and must be a finite number;
// a present-but-incomplete JSON object is a hard parse failure by design,
// because a wrong silent bid is worse than a loud one. Reasoning and
// new_shading_factor are optional.
func ParseBid(raw string) (ParsedBid, error) {
	data, err := ExtractJSON(raw)
	if err != nil {
		return ParsedBid{}, err
	}

	bidVal, ok := data["bid"]
	if !ok {
		bidVal, ok = data["bid_amount"]
	}
	if !ok {
		return ParsedBid{}, ErrMissingBid
	}

	bid, ok := bidVal.(float64)
	if !ok || math.IsNaN(bid) || math.IsInf(bid, 0) {
		return ParsedBid{}, fmt.Errorf("%w: got %v", ErrMissingBid, bidVal)
	}

	parsed := ParsedBid{Bid: bid}
	if reasoning, ok := data["reasoning"].(string); ok {
		parsed.Reasoning = reasoning
	}
	if factor, ok := data["new_shading_factor"].(float64); ok {
		parsed.NewShadingFactor = &factor
	}
	return parsed, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
