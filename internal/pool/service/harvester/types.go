package harvester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PageFetcher interface {
		FetchPage(ctx context.Context, cursor model.PaginationCursor) model.Page
	}
	BlockSink interface {
		WriteBlocks(ctx context.Context, records []model.BlockRecord) error
	}
	Metrics interface {
		ObservePage(err error, records int, started time.Time)
		ObserveHarvest(reason model.StopReason, records, pages int, started time.Time)
	}
)
