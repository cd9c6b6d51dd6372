package models

import "time"

// VoteChoice is the direction of a cast ballot
type VoteChoice string

const (
	VoteYay VoteChoice = "YAY"
	VoteNay VoteChoice = "NAY"
)

// VoteRecord is an audit entry for a single cast ballot. Weight equals
// the number of credential units the ballot newly counted.
type VoteRecord struct {
	Voter    string     `json:"voter"` // EIP-55 hex address
	Choice   VoteChoice `json:"choice"`
	Weight   uint64     `json:"weight"`
	TokenIDs []TokenID  `json:"tokenIds"`
	CastAt   time.Time  `json:"castAt"`
}
