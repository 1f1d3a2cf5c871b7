package pagination

// Metadata contains pagination metadata included in API responses.
// Total and TotalPages are populated only for search responses, which
// carry an authoritative count; feed responses report HasMore instead.
type Metadata struct {
	Total      int64 `json:"total,omitempty"`       // Total number of items across all pages
	Page       int   `json:"page"`                  // Current page index (0-based)
	Amount     int   `json:"amount"`                // Items per page
	TotalPages int   `json:"total_pages,omitempty"` // Calculated total number of pages
	HasMore    bool  `json:"has_more"`              // Whether a next page may exist
}

// FeedMetadata builds metadata for a feed page without a total count.
func FeedMetadata(params PageParams, returnedCount int) Metadata {
	return Metadata{
		Page:    params.Page,
		Amount:  params.Amount,
		HasMore: HasMore(returnedCount, params.Amount),
	}
}

// SearchMetadata builds metadata for a search page with a known total.
func SearchMetadata(params PageParams, total int64) Metadata {
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Amount:     params.Amount,
		TotalPages: CalculateTotalPages(total, params.Amount),
		HasMore:    int64(params.Page+1)*int64(params.Amount) < total,
	}
}
