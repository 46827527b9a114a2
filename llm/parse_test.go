package llm

import (
	"errors"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestParseBid_PlainJSON(t *testing.T) {
	parsed, err := ParseBid(`{"bid": 0.72, "reasoning": "shaded below value"}`)

	check.NoError(t, err)
	check.Equal(t, 0.72, parsed.Bid)
	check.Equal(t, "shaded below value", parsed.Reasoning)
	check.Nil(t, parsed.NewShadingFactor)
}

func TestParseBid_EmbeddedInProse(t *testing.T) {
	raw := "Sure! Here is my bid:\n```json\n{\"bid\": 0.45}\n```\nGood luck."

	parsed, err := ParseBid(raw)

	check.NoError(t, err)
	check.Equal(t, 0.45, parsed.Bid)
}

func TestParseBid_BidAmountAlias(t *testing.T) {
	parsed, err := ParseBid(`{"bid_amount": 0.3}`)

	check.NoError(t, err)
	check.Equal(t, 0.3, parsed.Bid)
}

func TestParseBid_NewShadingFactor(t *testing.T) {
	parsed, err := ParseBid(`{"bid": 0.4, "new_shading_factor": 0.85}`)

	check.NoError(t, err)
	check.NotNil(t, parsed.NewShadingFactor)
	check.Equal(t, 0.85, *parsed.NewShadingFactor)
}

func TestParseBid_NoJSON(t *testing.T) {
	_, err := ParseBid("I will bid half my value.")

	check.Error(t, err)
	check.True(t, errors.Is(err, ErrNoJSON))
}

func TestParseBid_MissingBidField(t *testing.T) {
	_, err := ParseBid(`{"reasoning": "thinking about it"}`)

	check.Error(t, err)
	check.True(t, errors.Is(err, ErrMissingBid))
}

func TestParseBid_NonNumericBid(t *testing.T) {
	_, err := ParseBid(`{"bid": "high"}`)

	check.Error(t, err)
	check.True(t, errors.Is(err, ErrMissingBid))
}

func TestParseBid_MalformedJSON(t *testing.T) {
	_, err := ParseBid(`{"bid": 0.5`)

	check.Error(t, err)
	check.True(t, errors.Is(err, ErrNoJSON))
}

func TestExtractJSON_FirstBraceToLastBrace(t *testing.T) {
	data, err := ExtractJSON(`prefix {"a": {"b": 1}} suffix`)

	check.NoError(t, err)
	check.NotNil(t, data["a"])
}
