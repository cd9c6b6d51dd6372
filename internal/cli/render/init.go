package render

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/agora-dao/agora-cli/internal/usecase"
)

// InitRenderer renders init command results
type InitRenderer struct{}

// NewInitRenderer creates a new init renderer
func NewInitRenderer() Renderer[*usecase.InitProjectResult] {
	return &InitRenderer{}
}

// Render renders the init project result
func (r *InitRenderer) Render(result *usecase.InitProjectResult) error {
	// Show steps
	for _, step := range result.Steps {
		if step.Success {
			if step.Message != "" {
				color.New(color.FgGreen).Printf("✅ %s\n", step.Message)
			} else {
				color.New(color.FgGreen).Printf("✅ %s\n", step.Name)
			}
		} else {
			color.New(color.FgRed).Printf("❌ %s\n", step.Name)
			if step.Message != "" {
				fmt.Printf("   %s\n", step.Message)
			}
			if step.Error != nil {
				fmt.Printf("   %s\n", step.Error.Error())
			}
		}
	}

	// Show final status
	if result.AgoraTomlCreated || result.AlreadyInitialized {
		r.printSuccessMessage(result)
	}

	return nil
}

func (r *InitRenderer) printSuccessMessage(result *usecase.InitProjectResult) {
	fmt.Println("")
	if result.AlreadyInitialized {
		color.New(color.FgYellow).Println("⚠️  agora was already initialized in this project")
	} else {
		color.New(color.FgGreen, color.Bold).Println("🎉 agora initialized successfully!")
	}

	fmt.Println("")
	color.New(color.FgCyan, color.Bold).Println("📋 Next steps:")

	fmt.Println("1. Mint membership credentials for your members:")
	color.New(color.FgHiBlack).Println("   agora roster mint 0xYourMemberAddress")
	fmt.Println("")

	fmt.Println("2. List items for sale in catalog.yaml and fund the treasury:")
	color.New(color.FgHiBlack).Println("   agora deposit 100 --from 0xYourMemberAddress")
	fmt.Println("")

	fmt.Println("3. Propose a purchase and vote on it:")
	color.New(color.FgHiBlack).Println("   agora propose sample-item --from 0xYourMemberAddress")
	color.New(color.FgHiBlack).Println("   agora vote 0 yay --from 0xYourMemberAddress")
	fmt.Println("")

	fmt.Println("4. After the voting window closes, execute the outcome:")
	color.New(color.FgHiBlack).Println("   agora execute 0 --from 0xYourMemberAddress")
}
