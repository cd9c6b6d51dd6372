package models

import (
	"math/big"
	"time"
)

// LedgerKind classifies a treasury ledger entry
type LedgerKind string

const (
	LedgerDeposit    LedgerKind = "DEPOSIT"
	LedgerWithdrawal LedgerKind = "WITHDRAWAL"
	LedgerPurchase   LedgerKind = "PURCHASE"
)

// LedgerEntry is one append-only movement of treasury funds
type LedgerEntry struct {
	Seq          uint64     `json:"seq"`
	Kind         LedgerKind `json:"kind"`
	Counterparty string     `json:"counterparty"` // depositor/recipient address, or item ID for purchases
	Amount       *big.Int   `json:"amount"`
	ProposalID   *uint64    `json:"proposalId,omitempty"` // set for PURCHASE entries
	At           time.Time  `json:"at"`
}

// Treasury is the pooled fund state
type Treasury struct {
	Balance *big.Int      `json:"balance"`
	Ledger  []LedgerEntry `json:"ledger"`
}

// NewTreasury returns an empty treasury
func NewTreasury() *Treasury {
	return &Treasury{
		Balance: new(big.Int),
		Ledger:  []LedgerEntry{},
	}
}

// CanCover reports whether the balance covers an amount
func (t *Treasury) CanCover(amount *big.Int) bool {
	return t.Balance.Cmp(amount) >= 0
}

// Clone returns a deep copy so callers can mutate their own view
func (t *Treasury) Clone() *Treasury {
	clone := &Treasury{
		Balance: new(big.Int).Set(t.Balance),
		Ledger:  make([]LedgerEntry, len(t.Ledger)),
	}
	for i, e := range t.Ledger {
		clone.Ledger[i] = e
		clone.Ledger[i].Amount = new(big.Int).Set(e.Amount)
		if e.ProposalID != nil {
			id := *e.ProposalID
			clone.Ledger[i].ProposalID = &id
		}
	}
	return clone
}

// Record appends a ledger entry and applies it to the balance. Deposits
// credit the balance; withdrawals and purchases debit it.
func (t *Treasury) Record(kind LedgerKind, counterparty string, amount *big.Int, proposalID *uint64, at time.Time) *LedgerEntry {
	entry := LedgerEntry{
		Seq:          uint64(len(t.Ledger)) + 1,
		Kind:         kind,
		Counterparty: counterparty,
		Amount:       new(big.Int).Set(amount),
		ProposalID:   proposalID,
		At:           at,
	}
	if kind == LedgerDeposit {
		t.Balance = new(big.Int).Add(t.Balance, amount)
	} else {
		t.Balance = new(big.Int).Sub(t.Balance, amount)
	}
	t.Ledger = append(t.Ledger, entry)
	return &t.Ledger[len(t.Ledger)-1]
}
