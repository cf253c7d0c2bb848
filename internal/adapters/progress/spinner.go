package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/fatih/color"
)

// SpinnerSink shows deployment stages behind a spinner on stderr
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
	stages  []stageInfo
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false
	return &SpinnerSink{spinner: s, out: os.Stderr}
}

// OnProgress moves the display to the event's stage
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	stage := usecase.ExecutionStage(event.Stage)
	if stage != "" && (len(r.stages) == 0 || r.stages[len(r.stages)-1].Stage != stage) {
		r.completeCurrentStage()
		r.stages = append(r.stages, stageInfo{Stage: stage, StartTime: time.Now()})
	}

	message := event.Message
	if event.Total > 0 {
		message = strings.TrimSpace(fmt.Sprintf("[%d/%d] %s", event.Current, event.Total, message))
	}

	if stage == usecase.StageCompleted || !event.Spinner {
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		if stage == usecase.StageCompleted {
			r.completeCurrentStage()
			fmt.Fprintln(r.out, r.display(message))
		}
		return
	}

	r.spinner.Suffix = " " + r.display(message)
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() { color.New(color.FgCyan).Fprintln(r.out, message) })
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pause(func() { color.New(color.FgRed).Fprintln(r.out, message) })
}

func (r *SpinnerSink) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerSink) completeCurrentStage() {
	if len(r.stages) > 0 && r.stages[len(r.stages)-1].EndTime.IsZero() {
		r.stages[len(r.stages)-1].EndTime = time.Now()
	}
}

// display renders "✓ Resolving (12ms) → ● Broadcasting (3s) message"
func (r *SpinnerSink) display(message string) string {
	parts := make([]string, 0, len(r.stages))
	for _, stage := range r.stages {
		if stage.Stage == usecase.StageCompleted {
			continue
		}
		icon, stageColor := "●", color.New(color.FgYellow)
		duration := time.Since(stage.StartTime).Round(time.Second)
		if !stage.EndTime.IsZero() {
			icon, stageColor = "✓", color.New(color.FgGreen)
			duration = stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond)
		}
		parts = append(parts, fmt.Sprintf("%s %s (%s)", icon, stageColor.Sprint(string(stage.Stage)), duration))
	}

	line := strings.Join(parts, " → ")
	if message != "" {
		line += " " + message
	}
	return line
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
