package liststate

import "slices"

// Pagination tracks the current page and page size of a list.
// It does not know the size of the data: navigation past the last page is
// allowed and PaginateData then yields an empty page.
type Pagination struct {
	currentPage int
	pageSize    int
}

// NewPagination starts on page 1. Non-positive sizes become 1.
func NewPagination(pageSize int) *Pagination {
	return &Pagination{currentPage: 1, pageSize: max(pageSize, 1)}
}

// CurrentPage returns the 1-based current page
func (p *Pagination) CurrentPage() int {
	return p.currentPage
}

// PageSize returns the number of rows per page
func (p *Pagination) PageSize() int {
	return p.pageSize
}

// SetPageSize changes the number of rows per page. Non-positive sizes are ignored.
func (p *Pagination) SetPageSize(size int) {
	if size > 0 {
		p.pageSize = size
	}
}

// GoToPage jumps to page as given
func (p *Pagination) GoToPage(page int) {
	p.currentPage = page
}

// NextPage advances one page
func (p *Pagination) NextPage() {
	p.currentPage++
}

// PrevPage goes back one page, never below page 1
func (p *Pagination) PrevPage() {
	p.currentPage = max(p.currentPage-1, 1)
}

// ResetPagination returns to page 1. Call it whenever filters or sorting
// change the effective data set.
func (p *Pagination) ResetPagination() {
	p.currentPage = 1
}

// Bounds returns the [start, end) slice bounds of the current page over
// total items, clamped to [0, total]
func (p *Pagination) Bounds(total int) (start, end int) {
	start = (p.currentPage - 1) * p.pageSize
	end = start + p.pageSize
	start = min(max(start, 0), total)
	end = min(max(end, start), total)
	return start, end
}

// TotalPages returns the number of pages needed for totalItems
func (p *Pagination) TotalPages(totalItems int) int {
	if totalItems <= 0 {
		return 0
	}
	return (totalItems + p.pageSize - 1) / p.pageSize
}

// Paginate returns a copy of the rows of data on the current page of p.
// A page past the end yields an empty slice.
func Paginate[T any](p *Pagination, data []T) []T {
	start, end := p.Bounds(len(data))
	return slices.Clone(data[start:end])
}
