package models

import "time"

// Credential is one membership credential unit and its current holder.
// Holding at least one unit makes an address a member; each unit
// carries exactly one vote of weight per proposal.
type Credential struct {
	TokenID  TokenID   `json:"tokenId"`
	Owner    string    `json:"owner"` // EIP-55 hex address
	MintedAt time.Time `json:"mintedAt"`
}
