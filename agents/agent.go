// Package agents contains the bidding strategies and the auctioneer that
// coordinates a round. Strategies are pure numeric rules optionally refined
// by the text-generation collaborator; all of them degrade to the numeric
// rule when the collaborator is unavailable.
package agents

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/auctionlab/bidsim/core"
)

// Agent type labels carried in bid history records for the plotting contract.
const (
	TypeHeuristic = "Heuristic"
	TypeStrategic = "Strategic"
)

// Bidder is the polymorphic bidding capability. GetBid must return either a
// finite bid or an error; collaborator failures are handled inside the
// strategy and never propagate.
type Bidder interface {
	ID() string
	Type() string
	GetBid(ctx context.Context, req core.BidRequest) (core.BidResponse, error)
}

// Registry manages a named collection of bidders that can be looked up at
// runtime. It is safe for concurrent use.
type Registry struct {
	bidders map[string]Bidder
	mu      sync.RWMutex
}

// NewRegistry returns an empty, ready-to-use Registry.
func NewRegistry() *Registry {
	return &Registry{bidders: make(map[string]Bidder)}
}

// Register adds a bidder under its own ID, replacing any previous entry.
func (r *Registry) Register(b Bidder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bidders[b.ID()] = b
}

// Get retrieves a bidder by ID. It returns an error when the ID is not
// registered.
func (r *Registry) Get(id string) (Bidder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bidders[id]
	if !ok {
		return nil, fmt.Errorf("bidder %q: not registered", id)
	}
	return b, nil
}

// List returns all registered bidders sorted by ID, giving callers a
// deterministic iteration order.
func (r *Registry) List() []Bidder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.bidders))
	for id := range r.bidders {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Bidder, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.bidders[id])
	}
	return out
}
