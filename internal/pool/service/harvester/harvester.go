// Package harvester walks the pool's paginated block table until a target height.
package harvester

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/poolscope-backend/internal/clock"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"go.uber.org/zap"
)

// DefaultPageDelay is the pause between consecutive page requests.
const DefaultPageDelay = time.Second

// Service drives a PageFetcher across successive cursors.
type Service struct {
	fetcher   PageFetcher
	sink      BlockSink
	metrics   Metrics
	logger    *zap.Logger
	pageDelay time.Duration
	sleep     clock.SleepFunc
}

// NewService builds a harvester Service.
func NewService(fetcher PageFetcher, sink BlockSink, metrics Metrics, pageDelay time.Duration, logger *zap.Logger) (*Service, error) {
	if fetcher == nil {
		return nil, errors.New("page fetcher is required")
	}
	if sink == nil {
		return nil, errors.New("block sink is required")
	}
	if metrics == nil {
		return nil, errors.New("harvester metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if pageDelay < 0 {
		return nil, fmt.Errorf("page delay %v must not be negative", pageDelay)
	}
	return &Service{
		fetcher:   fetcher,
		sink:      sink,
		metrics:   metrics,
		logger:    logger,
		pageDelay: pageDelay,
		sleep:     clock.SleepWithContext,
	}, nil
}

// Harvest collects records page by page until targetHeight is seen (that record
// included) or a page comes back empty. The collected records are written to the
// sink exactly once, also when the context is canceled mid-way.
func (s *Service) Harvest(ctx context.Context, targetHeight int64) (model.HarvestResult, error) {
	started := time.Now()
	target := model.NormalizeHeight(strconv.FormatInt(targetHeight, 10))
	pacer := clock.NewPacer(s.pageDelay).WithSleep(s.sleep)
	logger := s.logger.With(zap.Int64("target_height", targetHeight))

	result := model.HarvestResult{}
	var runErr error

	for cursor := model.FirstCursor(); ; cursor = cursor.Next() {
		if err := pacer.Wait(ctx); err != nil {
			result.Reason, runErr = model.StopCanceled, err
			break
		}

		pageStarted := time.Now()
		page := s.fetcher.FetchPage(ctx, cursor)
		result.Pages++
		s.metrics.ObservePage(page.Err, len(page.Records), pageStarted)

		if page.Empty() {
			if ctxErr := ctx.Err(); ctxErr != nil {
				result.Reason, runErr = model.StopCanceled, ctxErr
				break
			}
			result.Reason = model.StopEmptyPage
			if page.Err != nil {
				result.Reason = model.StopFetchError
			}
			logger.Info("no blocks on page; stopping",
				zap.Int("page", cursor.Page),
				zap.Int("bpage", cursor.BlockPage),
				zap.NamedError("fetch_error", page.Err))
			break
		}

		if found := appendUntil(&result.Records, page.Records, target); found {
			result.Reason = model.StopTargetFound
			logger.Info("found target block; stopping", zap.Int("page", cursor.Page))
			break
		}
		logger.Debug("page harvested",
			zap.Int("page", cursor.Page),
			zap.Int("records", len(page.Records)),
			zap.Int("total", len(result.Records)))
	}

	result.Paced = pacer.Slept()
	s.metrics.ObserveHarvest(result.Reason, len(result.Records), result.Pages, started)

	if err := s.sink.WriteBlocks(context.WithoutCancel(ctx), result.Records); err != nil {
		return result, fmt.Errorf("write %d block records: %w", len(result.Records), err)
	}
	logger.Info("harvest finished",
		zap.String("reason", string(result.Reason)),
		zap.Int("pages", result.Pages),
		zap.Int("records", len(result.Records)),
		zap.Duration("paced", result.Paced))

	return result, runErr
}

// appendUntil appends records to dst up to and including the first one at target.
func appendUntil(dst *[]model.BlockRecord, records []model.BlockRecord, target string) bool {
	for _, record := range records {
		*dst = append(*dst, record)
		if model.NormalizeHeight(record.Height) == target {
			return true
		}
	}
	return false
}
