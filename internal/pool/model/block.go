// Package model defines domain models for pool block harvesting and transaction classification.
package model

// BlockRecord is one row of the pool's block table. Fields keep the text the pool renders.
type BlockRecord struct {
	DateTime   string `csv:"DateTime"`
	Shares     string `csv:"Shares"`
	Difficulty string `csv:"Difficulty"`
	Address    string `csv:"Address"`
	Worker     string `csv:"Worker"`
	Height     string `csv:"Height"`
	BlockHash  string `csv:"BlockHash"`
}

// PaginationCursor addresses one page of the pool's block table.
// Page and BlockPage always advance together, starting at (1, 0).
type PaginationCursor struct {
	Page      int
	BlockPage int
}

// FirstCursor returns the cursor of the first page.
func FirstCursor() PaginationCursor {
	return PaginationCursor{Page: 1, BlockPage: 0}
}

// Next returns the cursor of the following page.
func (c PaginationCursor) Next() PaginationCursor {
	return PaginationCursor{Page: c.Page + 1, BlockPage: c.BlockPage + 1}
}

// Page is the outcome of fetching one cursor. Err is set when the request failed,
// in which case Records is empty.
type Page struct {
	Cursor  PaginationCursor
	Records []BlockRecord
	Err     error
}

// Empty reports whether the page yielded no records.
func (p Page) Empty() bool {
	return len(p.Records) == 0
}
