package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// Canonical query-string keys. These must stay stable across encode and
// decode so links produced by one build remain decodable by the next.
const (
	keyPage       = "page"
	keyAmount     = "amount"
	keyTag        = "tag"
	keyFavourites = "favourites"
)

// Decode parses pagination parameters from URL query values. It never
// fails: absent or unparsable fields fall back to their defaults
// (page=0, amount=10, tag="") and unknown keys are ignored.
//
// The my-feed selection is carried as a route path segment rather than a
// query key, so Decode leaves MyFeed false; route handlers set it via
// WithMyFeed after matching the path.
func Decode(values url.Values) PageParams {
	params := NewParams()

	if pageStr := values.Get(keyPage); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 0 {
			params.Page = page
		}
	}

	if amountStr := values.Get(keyAmount); amountStr != "" {
		if amount, err := strconv.Atoi(amountStr); err == nil && amount > 0 {
			params.Amount = amount
		}
	}

	params.Tag = values.Get(keyTag)

	return params
}

// DecodeQuery parses pagination parameters from a raw query string.
// A malformed query string decodes as empty, yielding all defaults.
func DecodeQuery(rawQuery string) PageParams {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return NewParams()
	}
	return Decode(values)
}

// Encode produces the canonical query values for params. Keys equal to
// their default are omitted, except amount, which is always emitted so
// that shared links survive a change of the server-side default.
func Encode(params PageParams) url.Values {
	values := url.Values{}
	if params.Page != DefaultPage {
		values.Set(keyPage, strconv.Itoa(params.Page))
	}
	values.Set(keyAmount, strconv.Itoa(params.Amount))
	if params.Tag != "" {
		values.Set(keyTag, params.Tag)
	}
	return values
}

// QueryString renders params as a query string with keys in canonical
// order (page, amount, tag) and the tag value percent-encoded.
func QueryString(params PageParams) string {
	var b strings.Builder
	if params.Page != DefaultPage {
		b.WriteString(keyPage)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(params.Page))
		b.WriteByte('&')
	}
	b.WriteString(keyAmount)
	b.WriteByte('=')
	b.WriteString(strconv.Itoa(params.Amount))
	if params.Tag != "" {
		b.WriteByte('&')
		b.WriteString(keyTag)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params.Tag))
	}
	return b.String()
}

// HasFavourites reports whether the presence-only favourites flag is set
// in the query. The key carries no value; its presence alone means "show
// favorited articles."
func HasFavourites(values url.Values) bool {
	_, ok := values[keyFavourites]
	return ok
}

// EncodeFavourites appends the presence-only favourites key to an
// encoded query string.
func EncodeFavourites(queryString string) string {
	if queryString == "" {
		return keyFavourites
	}
	return queryString + "&" + keyFavourites
}
