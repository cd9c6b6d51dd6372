package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// InitProject handles project initialization
type InitProject struct {
	fileWriter FileWriter
	progress   ProgressSink
}

// NewInitProject creates a new init project use case
func NewInitProject(fileWriter FileWriter, progress ProgressSink) *InitProject {
	return &InitProject{
		fileWriter: fileWriter,
		progress:   progress,
	}
}

// InitProjectParams contains parameters for project initialization
type InitProjectParams struct {
	// Admin is fixed into agora.toml; it never changes afterwards
	Admin common.Address
	// VotingWindow overrides the default "5m" when non-empty; must be a
	// valid Go duration string
	VotingWindow string
}

// InitProjectResult contains the result of project initialization
type InitProjectResult struct {
	RegistryCreated    bool
	AgoraTomlCreated   bool
	RosterCreated      bool
	CatalogCreated     bool
	EnvExampleCreated  bool
	AlreadyInitialized bool
	Steps              []InitStep
}

// InitStep represents a step in the initialization process
type InitStep struct {
	Name    string
	Success bool
	Message string
	Error   error
}

// Execute initializes an agora project in the current directory
func (i *InitProject) Execute(ctx context.Context, params InitProjectParams) (*InitProjectResult, error) {
	result := &InitProjectResult{
		Steps: []InitStep{},
	}

	if params.Admin == (common.Address{}) {
		err := fmt.Errorf("an administrator address is required (use --admin)")
		result.Steps = append(result.Steps, InitStep{
			Name:    "Validate Administrator",
			Success: false,
			Error:   err,
		})
		return result, err
	}
	result.Steps = append(result.Steps, InitStep{
		Name:    "Validate Administrator",
		Success: true,
		Message: fmt.Sprintf("Administrator set to %s", params.Admin.Hex()),
	})

	// Create registry
	step := i.createRegistry(ctx)
	result.Steps = append(result.Steps, step)
	if step.Success {
		result.RegistryCreated = true
		if step.Message == "Registry files already exist in .agora/" {
			result.AlreadyInitialized = true
		}
	} else {
		return result, step.Error
	}

	// Create agora.toml
	step = i.createAgoraToml(ctx, params)
	result.Steps = append(result.Steps, step)
	if step.Success {
		result.AgoraTomlCreated = true
	}

	// Create membership roster
	step = i.createRoster(ctx)
	result.Steps = append(result.Steps, step)
	if step.Success {
		result.RosterCreated = true
	}

	// Create marketplace catalog
	step = i.createCatalog(ctx)
	result.Steps = append(result.Steps, step)
	if step.Success {
		result.CatalogCreated = true
	}

	// Create example environment
	step = i.createExampleEnvironment(ctx)
	result.Steps = append(result.Steps, step)
	if step.Success {
		result.EnvExampleCreated = true
	}

	return result, nil
}

func (i *InitProject) createRegistry(ctx context.Context) InitStep {
	// Create .agora directory
	if err := i.fileWriter.EnsureDirectory(ctx, ".agora"); err != nil {
		return InitStep{
			Name:    "Create Registry",
			Success: false,
			Error:   fmt.Errorf("failed to create .agora directory: %w", err),
		}
	}

	// Check if registry files already exist
	exists, err := i.fileWriter.FileExists(ctx, ".agora/proposals.json")
	if err != nil {
		return InitStep{
			Name:    "Create Registry",
			Success: false,
			Error:   fmt.Errorf("failed to check registry: %w", err),
		}
	}

	if exists {
		return InitStep{
			Name:    "Create Registry",
			Success: true,
			Message: "Registry files already exist in .agora/",
		}
	}

	// Create empty registry files
	registryFiles := map[string]string{
		".agora/proposals.json": "{}",
		".agora/treasury.json":  `{"balance":0,"ledger":[]}`,
		".agora/state.json":     `{"nextProposalId":0,"version":1}`,
	}

	for filename, content := range registryFiles {
		if err := i.fileWriter.WriteFile(ctx, filename, content); err != nil {
			return InitStep{
				Name:    "Create Registry",
				Success: false,
				Error:   fmt.Errorf("failed to create %s: %w", filename, err),
			}
		}
	}

	return InitStep{
		Name:    "Create Registry",
		Success: true,
		Message: "Created governance registry in .agora/",
	}
}

func (i *InitProject) createAgoraToml(ctx context.Context, params InitProjectParams) InitStep {
	// Only create agora.toml if it doesn't exist
	exists, err := i.fileWriter.FileExists(ctx, "agora.toml")
	if err != nil {
		return InitStep{
			Name:    "Create agora.toml",
			Success: false,
			Error:   fmt.Errorf("failed to check agora.toml: %w", err),
		}
	}

	if exists {
		return InitStep{
			Name:    "Create agora.toml",
			Success: true,
			Message: "agora.toml already exists",
		}
	}

	window := params.VotingWindow
	if window == "" {
		window = "5m"
	}

	agoraToml := fmt.Sprintf(`# agora.toml - collective configuration
#
# The administrator is fixed here once and never changes. Only this
# address can withdraw treasury funds or mint credentials.

[governance]
admin = "%s"

# How long new proposals accept ballots.
voting_window = "%s"

# Acting address when --from is not given. Supports ${VAR} expansion
# from the environment or .env files.
# default_sender = "${AGORA_SENDER}"

# Membership roster file (credential token holdings).
roster = "roster.yaml"

[marketplace]
# Catalog of items the treasury can buy.
catalog = "catalog.yaml"
`, params.Admin.Hex(), window)

	if err := i.fileWriter.WriteFile(ctx, "agora.toml", agoraToml); err != nil {
		return InitStep{
			Name:    "Create agora.toml",
			Success: false,
			Error:   fmt.Errorf("failed to create agora.toml: %w", err),
		}
	}

	return InitStep{
		Name:    "Create agora.toml",
		Success: true,
		Message: "Created agora.toml with governance config",
	}
}

func (i *InitProject) createRoster(ctx context.Context) InitStep {
	exists, err := i.fileWriter.FileExists(ctx, "roster.yaml")
	if err != nil {
		return InitStep{
			Name:    "Create Roster",
			Success: false,
			Error:   fmt.Errorf("failed to check roster.yaml: %w", err),
		}
	}

	if exists {
		return InitStep{
			Name:    "Create Roster",
			Success: true,
			Message: "roster.yaml already exists",
		}
	}

	roster := `# Membership roster: one entry per credential unit.
# Holding at least one unit makes an address a member; each unit
# carries one vote of weight per proposal.
#
# Grow it with: agora roster mint --owner 0x...

nextTokenId: 1
credentials: []
`

	if err := i.fileWriter.WriteFile(ctx, "roster.yaml", roster); err != nil {
		return InitStep{
			Name:    "Create Roster",
			Success: false,
			Error:   fmt.Errorf("failed to create roster.yaml: %w", err),
		}
	}

	return InitStep{
		Name:    "Create Roster",
		Success: true,
		Message: "Created empty roster.yaml",
	}
}

func (i *InitProject) createCatalog(ctx context.Context) InitStep {
	exists, err := i.fileWriter.FileExists(ctx, "catalog.yaml")
	if err != nil {
		return InitStep{
			Name:    "Create Catalog",
			Success: false,
			Error:   fmt.Errorf("failed to check catalog.yaml: %w", err),
		}
	}

	if exists {
		return InitStep{
			Name:    "Create Catalog",
			Success: true,
			Message: "catalog.yaml already exists",
		}
	}

	catalog := `# Marketplace catalog. The price applies marketplace-wide; items
# become unavailable once purchased.

price: 10

items:
  - id: sample-item
    name: Sample Item
    description: Replace with the goods your collective buys
    available: true
`

	if err := i.fileWriter.WriteFile(ctx, "catalog.yaml", catalog); err != nil {
		return InitStep{
			Name:    "Create Catalog",
			Success: false,
			Error:   fmt.Errorf("failed to create catalog.yaml: %w", err),
		}
	}

	return InitStep{
		Name:    "Create Catalog",
		Success: true,
		Message: "Created catalog.yaml with a sample item",
	}
}

func (i *InitProject) createExampleEnvironment(ctx context.Context) InitStep {
	// Only create .env.example if it doesn't exist
	exists, err := i.fileWriter.FileExists(ctx, ".env.example")
	if err != nil {
		return InitStep{
			Name:    "Create Environment Example",
			Success: false,
			Error:   fmt.Errorf("failed to check .env.example: %w", err),
		}
	}

	if exists {
		return InitStep{
			Name:    "Create Environment Example",
			Success: true,
			Message: ".env.example already exists",
		}
	}

	envExample := `# agora Configuration

# Address you act as when --from is not given
AGORA_SENDER=

# Log level: debug, info, warn, error
AGORA_LOG_LEVEL=
`

	if err := i.fileWriter.WriteFile(ctx, ".env.example", envExample); err != nil {
		return InitStep{
			Name:    "Create Environment Example",
			Success: false,
			Error:   fmt.Errorf("failed to create .env.example: %w", err),
		}
	}

	return InitStep{
		Name:    "Create Environment Example",
		Success: true,
		Message: "Created .env.example",
	}
}
