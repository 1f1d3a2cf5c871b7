// Package pagination provides the feed parameter model and its canonical
// query-string codec, plus offset calculation helpers shared by the
// handler, service and repository layers.
package pagination

// Default parameter values. A zero PageParams plus DefaultAmount is the
// canonical "first page of the global feed" request.
const (
	DefaultPage   = 0
	DefaultAmount = 10
)

// PageParams represents one feed request's pagination state. Values are
// immutable: every mutator returns a modified copy.
type PageParams struct {
	Page   int    // 0-based page index
	Amount int    // items per page
	Tag    string // optional tag filter; empty means no filter
	MyFeed bool   // restrict to articles authored by followed users
}

// NewParams returns PageParams with all fields at their defaults.
func NewParams() PageParams {
	return PageParams{Page: DefaultPage, Amount: DefaultAmount}
}

// AllowedAmounts returns the page sizes offered by the item-per-page
// selector. The codec itself is permissive: it accepts any positive
// amount so shared links with hand-edited values keep working.
func AllowedAmounts() []int {
	return []int{1, 5, 10, 20, 100}
}

// WithPage returns a copy with Page replaced. The page is not clamped to
// an upper bound; the upper bound depends on result-set size, which this
// package does not know.
func (p PageParams) WithPage(page int) PageParams {
	if page < 0 {
		page = 0
	}
	p.Page = page
	return p
}

// NextPage returns a copy advanced by one page.
func (p PageParams) NextPage() PageParams {
	p.Page++
	return p
}

// PreviousPage returns a copy moved back one page. At page 0 the params
// are returned unchanged; offering a "previous" control at page 0 is the
// caller's guard, not this package's.
func (p PageParams) PreviousPage() PageParams {
	if p.Page > 0 {
		p.Page--
	}
	return p
}

// ResetPage returns a copy with Page set back to 0, all other fields
// preserved. Used whenever the filter or page size changes, since a stale
// page index against a newly filtered set is meaningless.
func (p PageParams) ResetPage() PageParams {
	p.Page = 0
	return p
}

// WithAmount returns a copy with Amount replaced and the page reset.
// Non-positive amounts fall back to the default.
func (p PageParams) WithAmount(amount int) PageParams {
	if amount <= 0 {
		amount = DefaultAmount
	}
	p.Amount = amount
	return p.ResetPage()
}

// WithTag returns a copy with the tag filter replaced and the page reset.
func (p PageParams) WithTag(tag string) PageParams {
	p.Tag = tag
	return p.ResetPage()
}

// WithMyFeed returns a copy with the my-feed flag replaced and the page
// reset. Tag and MyFeed are not mutually exclusive at this level; when
// both are set, resolution applies the tag filter first.
func (p PageParams) WithMyFeed(myFeed bool) PageParams {
	p.MyFeed = myFeed
	return p.ResetPage()
}
