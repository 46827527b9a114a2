package core

// Mechanism identifiers accepted in AuctionConfig.
const (
	MechanismSecondPrice = "second_price"
	MechanismFirstPrice  = "first_price" // recognized but not implemented
)

// DistributionUniform is the only supported value distribution.
const DistributionUniform = "uniform"

// AuctionConfig is the immutable configuration for a simulation run.
type AuctionConfig struct {
	NumBidders        int     `json:"num_bidders"`
	MinValue          float64 `json:"min_value"`
	MaxValue          float64 `json:"max_value"`
	ReservePrice      float64 `json:"reserve_price"`
	Mechanism         string  `json:"mechanism"`
	ValueDistribution string  `json:"value_distribution"`
	RandomSeed        *int64  `json:"random_seed,omitempty"`
}

// DefaultConfig returns a second-price auction config with values on [0,1].
func DefaultConfig(numBidders int) AuctionConfig {
	return AuctionConfig{
		NumBidders:        numBidders,
		MinValue:          0.0,
		MaxValue:          1.0,
		ReservePrice:      0.0,
		Mechanism:         MechanismSecondPrice,
		ValueDistribution: DistributionUniform,
	}
}

// BidRequest is the per-bidder, per-round message sent by the auctioneer.
// The History slice is a snapshot of completed rounds only; the round in
// progress is never visible to any bidder.
type BidRequest struct {
	AuctionID    string        `json:"auction_id"`
	RoundIndex   int           `json:"round_index"`
	Config       AuctionConfig `json:"auction_config"`
	BidderID     string        `json:"bidder_id"`
	PrivateValue float64       `json:"private_value"`
	History      []BidRecord   `json:"history,omitempty"`
}

// BidResponse is a bidder's answer to a BidRequest. Bid must be finite;
// negative bids are carried through resolution unchanged.
type BidResponse struct {
	AuctionID  string  `json:"auction_id"`
	RoundIndex int     `json:"round_index"`
	BidderID   string  `json:"bidder_id"`
	Bid        float64 `json:"bid"`
	Reasoning  string  `json:"reasoning,omitempty"`
	RawText    string  `json:"raw_text,omitempty"`
}

// AuctionOutcome is the result of one resolved round. WinnerID is empty when
// no sale occurred. The three maps are keyed by exactly the round's bidder set.
type AuctionOutcome struct {
	AuctionID     string             `json:"auction_id"`
	RoundIndex    int                `json:"round_index"`
	WinnerID      string             `json:"winner_id,omitempty"`
	ClearingPrice float64            `json:"clearing_price"`
	Revenue       float64            `json:"revenue"`
	Bids          map[string]float64 `json:"bids"`
	Values        map[string]float64 `json:"values"`
	Payoffs       map[string]float64 `json:"payoffs"`
}

// BidRecord is one bidder's entry in the append-only round history. WinnerID
// is backfilled once the round resolves. Field names follow the plotting
// contract consumed by the external visualizer.
type BidRecord struct {
	Round       int     `json:"round"`
	AgentID     string  `json:"agent_id"`
	AgentType   string  `json:"agent_type"`
	Bid         float64 `json:"bid"`
	SecretValue float64 `json:"secret_value"`
	WinnerID    string  `json:"winner_id,omitempty"`
}

// SimulationSummary aggregates a completed run.
type SimulationSummary struct {
	Config                AuctionConfig      `json:"config"`
	NumRounds             int                `json:"num_rounds"`
	MeanRevenue           float64            `json:"mean_revenue"`
	MeanUtilityPerBidder  map[string]float64 `json:"mean_utility_per_bidder"`
	DistributionOfWinners map[string]float64 `json:"distribution_of_winners"`
	RevenueSeries         []float64          `json:"revenue_series,omitempty"`
}
