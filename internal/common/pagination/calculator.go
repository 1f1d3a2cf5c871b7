package pagination

// CalculateOffset calculates the database OFFSET value from 0-based page
// index and page size.
//
// Formula: offset = page * amount
//
// Examples:
//   - Page 0, Amount 10 -> Offset 0
//   - Page 1, Amount 10 -> Offset 10
//   - Page 2, Amount 20 -> Offset 40
func CalculateOffset(page, amount int) int {
	return page * amount
}

// CalculateTotalPages calculates the total number of pages based on total items and amount.
// Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If total < amount, returns 1
//   - Otherwise, returns ceil(total / amount)
func CalculateTotalPages(total int64, amount int) int {
	if total == 0 {
		return 1 // Always at least 1 page
	}
	return int((total + int64(amount) - 1) / int64(amount))
}

// HasMore reports whether a next page may exist for feeds that carry no
// total count. A full page is taken to mean more rows may follow; when
// the result count is an exact multiple of the page size this yields one
// dead-end "next" click, which is accepted rather than paying for a
// count query on every feed request.
func HasMore(returnedCount, amount int) bool {
	return returnedCount >= amount
}

// WindowBounds returns the 1-based "showing X-Y of N" display range for a
// search result page with an authoritative total.
func WindowBounds(page, amount int, total int64) (first, last int64) {
	if total == 0 {
		return 0, 0
	}
	first = int64(page)*int64(amount) + 1
	if first > total {
		return 0, 0
	}
	last = first + int64(amount) - 1
	if last > total {
		last = total
	}
	return first, last
}
