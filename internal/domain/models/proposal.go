package models

import (
	"math/big"
	"slices"
	"time"
)

// TokenID identifies a single membership credential unit
type TokenID uint64

// ProposalStatus represents the lifecycle phase of a proposal. It is
// derived from the deadline and the executed flag rather than stored.
type ProposalStatus string

const (
	// ProposalStatusVoting means the voting window is still open
	ProposalStatusVoting ProposalStatus = "VOTING"
	// ProposalStatusExecutable means the window closed but nobody
	// executed the proposal yet
	ProposalStatusExecutable ProposalStatus = "EXECUTABLE"
	// ProposalStatusExecuted means the proposal was settled
	ProposalStatusExecuted ProposalStatus = "EXECUTED"
)

// ProposalOutcome records what execution decided
type ProposalOutcome string

const (
	OutcomePurchased ProposalOutcome = "PURCHASED"
	OutcomeDefeated  ProposalOutcome = "DEFEATED"
	OutcomeTied      ProposalOutcome = "TIED"
)

// Proposal represents a purchase proposal record
type Proposal struct {
	// Core identification
	ID           uint64 `json:"id"`           // dense, sequential from 0
	TargetItemID string `json:"targetItemId"` // catalog item to buy

	// Provenance
	Creator   string    `json:"creator"` // EIP-55 hex address
	CreatedAt time.Time `json:"createdAt"`
	Deadline  time.Time `json:"deadline"`

	// Tally
	YayWeight uint64 `json:"yayWeight"`
	NayWeight uint64 `json:"nayWeight"`

	// Credential units already counted on this proposal. Kept sorted so
	// the persisted form is deterministic.
	VotedTokenIDs []TokenID `json:"votedTokenIds"`

	// Ballot audit trail
	Votes []VoteRecord `json:"votes,omitempty"`

	// Execution details (when executed)
	Executed      bool            `json:"executed"`
	ExecutedAt    *time.Time      `json:"executedAt,omitempty"`
	Outcome       ProposalOutcome `json:"outcome,omitempty"`
	PurchasePrice *big.Int        `json:"purchasePrice,omitempty"`
}

// Status derives the lifecycle phase at a given instant. Voting stays
// open strictly before the deadline; the proposal becomes executable at
// the deadline itself.
func (p *Proposal) Status(now time.Time) ProposalStatus {
	switch {
	case p.Executed:
		return ProposalStatusExecuted
	case !now.Before(p.Deadline):
		return ProposalStatusExecutable
	default:
		return ProposalStatusVoting
	}
}

// HasVoted reports whether a credential unit was already counted
func (p *Proposal) HasVoted(id TokenID) bool {
	_, found := slices.BinarySearch(p.VotedTokenIDs, id)
	return found
}

// MarkVoted records credential units as counted, keeping the set sorted
// and free of duplicates
func (p *Proposal) MarkVoted(ids ...TokenID) {
	p.VotedTokenIDs = append(p.VotedTokenIDs, ids...)
	slices.Sort(p.VotedTokenIDs)
	p.VotedTokenIDs = slices.Compact(p.VotedTokenIDs)
}

// Clone returns a deep copy so callers can mutate their own view
func (p *Proposal) Clone() *Proposal {
	clone := *p
	clone.VotedTokenIDs = slices.Clone(p.VotedTokenIDs)
	clone.Votes = make([]VoteRecord, len(p.Votes))
	for i, v := range p.Votes {
		clone.Votes[i] = v
		clone.Votes[i].TokenIDs = slices.Clone(v.TokenIDs)
	}
	if p.ExecutedAt != nil {
		at := *p.ExecutedAt
		clone.ExecutedAt = &at
	}
	if p.PurchasePrice != nil {
		clone.PurchasePrice = new(big.Int).Set(p.PurchasePrice)
	}
	return &clone
}

// Passed reports whether the tally favors the purchase. A tie does not
// pass.
func (p *Proposal) Passed() bool {
	return p.YayWeight > p.NayWeight
}

// Tied reports whether yay and nay weight are equal
func (p *Proposal) Tied() bool {
	return p.YayWeight == p.NayWeight
}

// TotalWeight returns the combined counted weight
func (p *Proposal) TotalWeight() uint64 {
	return p.YayWeight + p.NayWeight
}
