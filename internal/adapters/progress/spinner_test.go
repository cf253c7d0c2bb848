package progress

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(buf *bytes.Buffer) *SpinnerSink {
	return &SpinnerSink{
		spinner: spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(buf)),
		out:     buf,
	}
}

func TestSpinnerSinkCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("prints counters with the finished stages", func(t *testing.T) {
		var buf bytes.Buffer
		sink := newTestSink(&buf)

		sink.OnProgress(ctx, usecase.ProgressEvent{Stage: string(usecase.StageReading), Current: 1, Total: 2, Message: "Processing pool 0x01"})
		sink.OnProgress(ctx, usecase.ProgressEvent{Stage: string(usecase.StageReading), Current: 2, Total: 2, Message: "Processing pool 0x02"})
		assert.Empty(t, buf.String())

		sink.OnProgress(ctx, usecase.ProgressEvent{Stage: string(usecase.StageCompleted), Current: 2, Total: 2, Message: "2 of 2 pools read"})
		out := buf.String()
		assert.Contains(t, out, "✓")
		assert.Contains(t, out, "Reading")
		assert.Contains(t, out, "[2/2] 2 of 2 pools read")
		assert.NotContains(t, out, "Completed")

		require.Len(t, sink.stages, 2)
		assert.False(t, sink.stages[0].EndTime.IsZero())
	})

	t.Run("no counter without a total", func(t *testing.T) {
		var buf bytes.Buffer
		sink := newTestSink(&buf)

		sink.OnProgress(ctx, usecase.ProgressEvent{Stage: string(usecase.StageResolving), Message: "contracts/helpers/router"})
		sink.OnProgress(ctx, usecase.ProgressEvent{Stage: string(usecase.StageCompleted), Message: "already deployed"})
		assert.Contains(t, buf.String(), "Resolving")
		assert.Contains(t, buf.String(), "already deployed")
		assert.NotRegexp(t, `\[\d+/\d+\]`, buf.String())
	})
}
