package market

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// DefaultCatalogFile is used when agora.toml does not name one
const DefaultCatalogFile = "catalog.yaml"

// catalogFile is the YAML schema of the marketplace catalog. The price
// is a decimal string so amounts beyond int64 survive round-trips.
type catalogFile struct {
	Price string        `yaml:"price"`
	Items []catalogItem `yaml:"items"`
}

type catalogItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Available   bool   `yaml:"available"`
}

// Catalog is a file-backed marketplace. It exposes the same surface the
// marketplace contract exposes on chain: one posted price for every
// item, per-item availability, and a purchase that delists the item.
type Catalog struct {
	path  string
	log   *slog.Logger
	mu    sync.RWMutex
	file  catalogFile
	price *big.Int
}

// NewCatalog loads the catalog named by the project config. A missing
// file loads as an empty catalog; operations on it fail individually.
func NewCatalog(cfg *config.RuntimeConfig, log *slog.Logger) (*Catalog, error) {
	name := DefaultCatalogFile
	if cfg.ProjectConfig != nil && cfg.ProjectConfig.Marketplace.Catalog != "" {
		name = cfg.ProjectConfig.Marketplace.Catalog
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.ProjectRoot, name)
	}

	c := &Catalog{
		path: path,
		log:  log.With("component", "Catalog"),
	}

	if err := c.load(); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return c, nil
}

// load reads the catalog file
func (c *Catalog) load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(data, &c.file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(c.path), err)
	}

	if raw := strings.TrimSpace(c.file.Price); raw != "" {
		price, ok := new(big.Int).SetString(raw, 10)
		if !ok || price.Sign() < 0 {
			return fmt.Errorf("invalid price %q in %s", raw, filepath.Base(c.path))
		}
		c.price = price
	}

	c.log.Debug("loaded catalog", "items", len(c.file.Items), "price", c.file.Price)

	return nil
}

// save writes the catalog file
func (c *Catalog) save() error {
	data, err := yaml.Marshal(c.file)
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, c.path)
}

// GetPrice returns the marketplace-wide posted price
func (c *Catalog) GetPrice(ctx context.Context) (*big.Int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.price == nil {
		return nil, fmt.Errorf("no posted price - check %s", filepath.Base(c.path))
	}

	return new(big.Int).Set(c.price), nil
}

// Available reports whether an item can currently be bought. An unknown
// item is an error, a delisted one is just unavailable.
func (c *Catalog) Available(ctx context.Context, itemID string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.file.Items {
		if item.ID == itemID {
			return item.Available, nil
		}
	}

	return false, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
}

// Purchase pays for an item at the posted price and delists it
func (c *Catalog) Purchase(ctx context.Context, itemID string, amount *big.Int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.price == nil {
		return fmt.Errorf("no posted price - check %s", filepath.Base(c.path))
	}
	if amount == nil || amount.Cmp(c.price) != 0 {
		return fmt.Errorf("payment %s does not match posted price %s", amount, c.price)
	}

	for i := range c.file.Items {
		if c.file.Items[i].ID != itemID {
			continue
		}
		if !c.file.Items[i].Available {
			return fmt.Errorf("%w: %s", domain.ErrItemNotAvailable, itemID)
		}

		c.file.Items[i].Available = false

		if err := c.save(); err != nil {
			c.file.Items[i].Available = true
			return err
		}

		c.log.Debug("purchased item", "item", itemID, "amount", amount.String())

		return nil
	}

	return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
}

// ListItems returns the catalog ordered by item ID
func (c *Catalog) ListItems(ctx context.Context) ([]*models.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*models.Item, 0, len(c.file.Items))
	for _, item := range c.file.Items {
		result = append(result, &models.Item{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.Available,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

var _ usecase.Marketplace = (*Catalog)(nil)
