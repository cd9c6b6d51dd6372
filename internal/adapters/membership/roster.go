package membership

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// DefaultRosterFile is used when agora.toml does not name one
const DefaultRosterFile = "roster.yaml"

// rosterFile is the YAML schema of the membership roster
type rosterFile struct {
	NextTokenID uint64        `yaml:"nextTokenId"`
	Credentials []rosterEntry `yaml:"credentials"`
}

type rosterEntry struct {
	TokenID  uint64    `yaml:"tokenId"`
	Owner    string    `yaml:"owner"`
	MintedAt time.Time `yaml:"mintedAt"`
}

// Roster is a file-backed credential registry. It answers the same
// questions the credential token contract answers on chain: who holds
// how many units, and which ones.
type Roster struct {
	path string
	log  *slog.Logger
	mu   sync.RWMutex
	file rosterFile
}

// NewRoster loads the membership roster named by the project config
func NewRoster(cfg *config.RuntimeConfig, log *slog.Logger) (*Roster, error) {
	name := DefaultRosterFile
	if cfg.ProjectConfig != nil && cfg.ProjectConfig.Governance.Roster != "" {
		name = cfg.ProjectConfig.Governance.Roster
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.ProjectRoot, name)
	}

	r := &Roster{
		path: path,
		log:  log.With("component", "Roster"),
		file: rosterFile{NextTokenID: 1},
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	return r, nil
}

// load reads the roster file. A missing file is an empty roster.
func (r *Roster) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(data, &r.file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(r.path), err)
	}
	if r.file.NextTokenID == 0 {
		r.file.NextTokenID = 1
	}

	// Keep the sequence strictly ahead of every issued unit
	for _, c := range r.file.Credentials {
		if c.TokenID >= r.file.NextTokenID {
			r.file.NextTokenID = c.TokenID + 1
		}
	}

	r.log.Debug("loaded roster", "credentials", len(r.file.Credentials), "nextTokenId", r.file.NextTokenID)

	return nil
}

// save writes the roster file
func (r *Roster) save() error {
	data, err := yaml.Marshal(r.file)
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, r.path)
}

// ownedBy reports whether an entry belongs to the owner. Addresses in a
// hand-edited roster may not be EIP-55 normalized, so compare loosely.
func ownedBy(entry rosterEntry, owner common.Address) bool {
	return strings.EqualFold(entry.Owner, owner.Hex())
}

// BalanceOf counts the credential units an address holds
func (r *Roster) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var balance uint64
	for _, c := range r.file.Credentials {
		if ownedBy(c, owner) {
			balance++
		}
	}

	return balance, nil
}

// TokenOfOwnerByIndex enumerates an owner's units ordered by token ID
func (r *Roster) TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index uint64) (models.TokenID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []uint64
	for _, c := range r.file.Credentials {
		if ownedBy(c, owner) {
			owned = append(owned, c.TokenID)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i] < owned[j] })

	if index >= uint64(len(owned)) {
		return 0, fmt.Errorf("owner %s has %d credentials, index %d out of range", owner.Hex(), len(owned), index)
	}

	return models.TokenID(owned[index]), nil
}

// ListCredentials returns every issued credential ordered by token ID
func (r *Roster) ListCredentials(ctx context.Context) ([]*models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Credential, 0, len(r.file.Credentials))
	for _, c := range r.file.Credentials {
		result = append(result, &models.Credential{
			TokenID:  models.TokenID(c.TokenID),
			Owner:    c.Owner,
			MintedAt: c.MintedAt,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TokenID < result[j].TokenID })

	return result, nil
}

// Mint issues a new credential unit to an owner
func (r *Roster) Mint(ctx context.Context, owner common.Address, at time.Time) (*models.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := rosterEntry{
		TokenID:  r.file.NextTokenID,
		Owner:    owner.Hex(),
		MintedAt: at,
	}
	r.file.Credentials = append(r.file.Credentials, entry)
	r.file.NextTokenID++

	if err := r.save(); err != nil {
		r.file.Credentials = r.file.Credentials[:len(r.file.Credentials)-1]
		r.file.NextTokenID--
		return nil, err
	}

	r.log.Debug("minted credential", "tokenId", entry.TokenID, "owner", entry.Owner)

	return &models.Credential{
		TokenID:  models.TokenID(entry.TokenID),
		Owner:    entry.Owner,
		MintedAt: entry.MintedAt,
	}, nil
}

// Transfer moves a credential unit to a new holder
func (r *Roster) Transfer(ctx context.Context, id models.TokenID, newOwner common.Address) (*models.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.file.Credentials {
		if r.file.Credentials[i].TokenID != uint64(id) {
			continue
		}

		previous := r.file.Credentials[i].Owner
		r.file.Credentials[i].Owner = newOwner.Hex()

		if err := r.save(); err != nil {
			r.file.Credentials[i].Owner = previous
			return nil, err
		}

		r.log.Debug("transferred credential", "tokenId", id, "from", previous, "to", newOwner.Hex())

		return &models.Credential{
			TokenID:  id,
			Owner:    r.file.Credentials[i].Owner,
			MintedAt: r.file.Credentials[i].MintedAt,
		}, nil
	}

	return nil, fmt.Errorf("credential #%d not found", id)
}

var _ usecase.MembershipRegistry = (*Roster)(nil)
var _ usecase.RosterManager = (*Roster)(nil)
