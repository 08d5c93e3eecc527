package domain

// Filter holds equality criteria keyed by the entity's stored field name.
// Values are compared against the field's textual form, so booleans are
// "true"/"false" and numbers are plain decimal.
type Filter map[string]string

// ListParams selects one page of entities.
type ListParams struct {
	Page     int
	PageSize int
	Filter   Filter
	// OrderBy names a stored field; empty means insertion order (by ID).
	OrderBy string
	Desc    bool
}

// Normalize clamps paging values into [1, maxSize], substituting
// defaultSize for an unset page size.
func (p ListParams) Normalize(defaultSize, maxSize int) ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

// Offset returns the number of items preceding the requested page.
func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Page is one slice of a listing together with the unpaged total.
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

// TotalPages returns the number of pages needed to show Total items.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// MapPage converts the items of a page while keeping the paging fields.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{Items: items, Total: p.Total, Page: p.Page, PageSize: p.PageSize}
}
