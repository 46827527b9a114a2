package agents

import (
	"encoding/json"
	"fmt"

	"github.com/auctionlab/bidsim/core"
)

const sharedInstructions = `You are a bidding agent in a repeated sealed-bid
second-price (Vickrey) auction. Each round every bidder receives a private
value and submits one sealed bid; the highest bid wins and pays the
second-highest bid. Respond with a single JSON object and nothing else.`

const heuristicPersona = `You follow a shading heuristic: you bid a fixed
fraction of your private value. You may adjust the suggested bid slightly if
the round history supports it. Reply as JSON:
{"bid": <number>, "reasoning": "<one sentence>"}`

const adaptivePersona = `You tune the shading factor of a heuristic bidder.
Given the bid history of completed rounds, propose a new shading factor
between 0.7 and 0.95. Reply as JSON:
{"new_shading_factor": <number>, "reasoning": "<one sentence>"}`

const strategicPersona = `You are a strategic bidder. A best-response
calculator has already estimated the utility-maximizing bid against the
modeled opponents; treat it as a strong recommendation. Reply as JSON:
{"bid": <number>, "reasoning": "<one sentence>"}`

func historyText(history []core.BidRecord) string {
	if len(history) == 0 {
		return "No history available."
	}
	encoded, err := json.Marshal(history)
	if err != nil {
		return "No history available."
	}
	return string(encoded)
}

func buildHeuristicPrompt(req core.BidRequest, fallbackBid, shadingFactor float64) string {
	return fmt.Sprintf(`%s

%s

bidder_id: %q
private_value: %v
shading_factor: %v
suggested_fallback_bid: %v
history: %s`,
		sharedInstructions, heuristicPersona,
		req.BidderID, req.PrivateValue, shadingFactor, fallbackBid, historyText(req.History))
}

func buildAdaptivePrompt(req core.BidRequest, currentFactor float64) string {
	return fmt.Sprintf(`%s

%s

bidder_id: %q
current_shading_factor: %v
history: %s`,
		sharedInstructions, adaptivePersona,
		req.BidderID, currentFactor, historyText(req.History))
}

func buildStrategicPrompt(req core.BidRequest, rec core.BestResponse) string {
	return fmt.Sprintf(`%s

%s

bidder_id: %q
private_value: %v
best_response_recommendation:
  best_bid: %v
  expected_utility: %v
history: %s`,
		sharedInstructions, strategicPersona,
		req.BidderID, req.PrivateValue, rec.BestBid, rec.ExpectedUtility, historyText(req.History))
}
