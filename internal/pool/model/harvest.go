package model

import "time"

// StopReason describes why a harvest ended.
type StopReason string

var (
	// StopTargetFound means the target height was reached; the matching record is included.
	StopTargetFound StopReason = "target_found"
	// StopEmptyPage means a page returned no rows.
	StopEmptyPage StopReason = "empty_page"
	// StopFetchError means a page request failed and was treated as an empty page.
	StopFetchError StopReason = "fetch_error"
	// StopCanceled means the context was canceled mid-harvest.
	StopCanceled StopReason = "canceled"
)

// HarvestResult summarises a finished harvest. Paced is the total delay inserted between pages.
type HarvestResult struct {
	Records []BlockRecord
	Pages   int
	Reason  StopReason
	Paced   time.Duration
}
