package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/agora-dao/agora-cli/internal/usecase"
)

// ExecutionProgress renders proposal execution stages with a spinner
type ExecutionProgress struct {
	spinner *spinner.Spinner
	stages  []stageInfo
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Message   string
}

// NewExecutionProgress creates a new spinner-based progress sink
func NewExecutionProgress() *ExecutionProgress {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false

	return &ExecutionProgress{
		spinner: s,
		stages:  []stageInfo{},
	}
}

// OnProgress handles progress events
func (r *ExecutionProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != "" && (len(r.stages) == 0 || r.stages[len(r.stages)-1].Stage != event.Stage) {
		r.completeCurrentStage()
		r.stages = append(r.stages, stageInfo{
			Stage:     event.Stage,
			StartTime: time.Now(),
			Status:    "running",
		})
	}

	if len(r.stages) > 0 && event.Message != "" {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	// Handle spinner states
	switch {
	case event.Stage == usecase.StageCompleted:
		r.completeCurrentStage()
		r.spinner.Stop()
	case event.Spinner:
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	case r.spinner.Active():
		r.spinner.Stop()
	}

	r.updateSpinnerDisplay()
}

// Info prints an info message
func (r *ExecutionProgress) Info(message string) {
	// Stop spinner temporarily
	wasActive := false
	if r.spinner != nil && r.spinner.Active() {
		wasActive = true
		r.spinner.Stop()
	}

	color.New(color.FgCyan).Println(message)

	// Restart spinner if it was active
	if wasActive {
		r.spinner.Start()
	}
}

// Error prints an error message
func (r *ExecutionProgress) Error(message string) {
	// Stop spinner temporarily
	wasActive := false
	if r.spinner != nil && r.spinner.Active() {
		wasActive = true
		r.spinner.Stop()
	}

	color.New(color.FgRed).Println(message)

	// Restart spinner if it was active
	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage marks the current stage as completed
func (r *ExecutionProgress) completeCurrentStage() {
	if len(r.stages) > 0 {
		idx := len(r.stages) - 1
		if r.stages[idx].Status == "running" {
			r.stages[idx].EndTime = time.Now()
			r.stages[idx].Status = "completed"
		}
	}
}

// updateSpinnerDisplay updates the spinner suffix with stage information
func (r *ExecutionProgress) updateSpinnerDisplay() {
	var display string

	for i, stage := range r.stages {
		var icon string
		var stageColor *color.Color

		// Determine icon and color based on status
		switch stage.Status {
		case "completed":
			icon = "✓"
			stageColor = color.New(color.FgGreen)
		case "running":
			icon = "●"
			stageColor = color.New(color.FgYellow)
		default:
			icon = "○"
			stageColor = color.New(color.FgWhite)
		}

		// Calculate duration
		duration := ""
		if !stage.EndTime.IsZero() {
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		} else if stage.Status == "running" {
			duration = fmt.Sprintf(" (%s)", time.Since(stage.StartTime).Round(time.Second))
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(string(stage.Stage)), duration)
	}

	r.spinner.Suffix = " " + display
}

// Ensure ExecutionProgress implements ProgressSink
var _ usecase.ProgressSink = (*ExecutionProgress)(nil)
