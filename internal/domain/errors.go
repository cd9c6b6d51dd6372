package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// Sentinel errors for governance operations
var (
	// ErrNotMember is returned when the caller holds no membership credential
	ErrNotMember = errors.New("not a member")

	// ErrNotAdmin is returned when an admin-only operation is attempted by
	// anyone other than the configured administrator
	ErrNotAdmin = errors.New("not the administrator")

	// ErrItemNotAvailable is returned when the targeted catalog item is not
	// currently purchasable
	ErrItemNotAvailable = errors.New("item not available")

	// ErrProposalNotFound is returned when a proposal ID doesn't exist
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrDeadlineExceeded is returned when voting after the proposal's
	// voting window has closed
	ErrDeadlineExceeded = errors.New("voting deadline exceeded")

	// ErrDeadlineNotExceeded is returned when executing a proposal whose
	// voting window is still open
	ErrDeadlineNotExceeded = errors.New("voting deadline not exceeded")

	// ErrAlreadyExecuted is returned when a proposal was executed before
	ErrAlreadyExecuted = errors.New("proposal already executed")

	// ErrAlreadyVoted is returned when every credential unit the caller
	// holds has already been counted on the proposal
	ErrAlreadyVoted = errors.New("already voted")

	// ErrInsufficientFunds is returned when the treasury balance cannot
	// cover the purchase price. Unlike the other failures this one is
	// transient: the same execute call can succeed once more deposits
	// arrive.
	ErrInsufficientFunds = errors.New("insufficient treasury funds")

	// ErrItemNotFound is returned when an item reference matches nothing
	// in the marketplace catalog
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidAddress is returned when an actor address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount is returned when a funds amount is missing, zero or
	// negative
	ErrInvalidAmount = errors.New("invalid amount")
)

type NoItemsMatchErr struct {
	Query string
}

func (e NoItemsMatchErr) Error() string {
	return fmt.Sprintf("no catalog items match query: %s", e.Query)
}

type AmbiguousItemErr struct {
	Query   string
	Matches []*models.Item
}

func (e AmbiguousItemErr) Error() string {
	// Sort items by ID for consistent output
	sortedItems := make([]*models.Item, len(e.Matches))
	copy(sortedItems, e.Matches)

	sort.Slice(sortedItems, func(i, j int) bool {
		return sortedItems[i].ID < sortedItems[j].ID
	})

	suggestions := lo.Map(sortedItems, func(item *models.Item, _ int) string {
		return fmt.Sprintf("  - %s (%s)", item.ID, item.Name)
	})

	return fmt.Sprintf("multiple catalog items match %q - use the exact item ID to disambiguate:\n%s",
		e.Query, strings.Join(suggestions, "\n"))
}
