package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/ethereum/go-ethereum/common"
)

// PoolInfo builds the pool report consumed by the frontend
type PoolInfo struct {
	reader PoolReader
	sink   ProgressSink
	log    *slog.Logger
}

// NewPoolInfo creates a new PoolInfo use case
func NewPoolInfo(reader PoolReader, sink ProgressSink, log *slog.Logger) *PoolInfo {
	return &PoolInfo{reader: reader, sink: sink, log: log}
}

// Run reads every pool in order. A pool that cannot be read is logged and
// left out of the report; the run itself still succeeds.
func (uc *PoolInfo) Run(ctx context.Context, addresses []string) (*domain.PoolReport, error) {
	report := &domain.PoolReport{PoolData: []domain.PoolData{}}

	for i, raw := range addresses {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   string(StageReading),
			Current: i + 1,
			Total:   len(addresses),
			Message: fmt.Sprintf("Processing pool %s", raw),
			Spinner: true,
		})

		if !common.IsHexAddress(raw) {
			uc.log.Error("skipping pool", "pool", raw, "error", "not an address")
			continue
		}
		data, err := uc.reader.ReadPool(ctx, common.HexToAddress(raw))
		if err != nil {
			uc.log.Error("skipping pool", "pool", raw, "error", err)
			continue
		}

		tvl, err := strconv.ParseFloat(data.USDTotal, 64)
		if err != nil {
			uc.log.Error("skipping pool", "pool", raw, "error", err)
			continue
		}
		report.TVLAll += tvl
		report.PoolData = append(report.PoolData, *data)
	}
	report.TVL = report.TVLAll

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   string(StageCompleted),
		Current: len(report.PoolData),
		Total:   len(addresses),
		Message: fmt.Sprintf("%d of %d pools read", len(report.PoolData), len(addresses)),
	})
	return report, nil
}
