package view

// SortKey selects the ordering of the rendered catalog
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortOldest       SortKey = "oldest"
	SortRatingHigh   SortKey = "rating-high"
	SortRatingLow    SortKey = "rating-low"
	SortTitleAZ      SortKey = "title-az"
	SortTitleZA      SortKey = "title-za"
	SortRuntimeLong  SortKey = "runtime-long"
	SortRuntimeShort SortKey = "runtime-short"
)

// DefaultSortKey is what a cleared filter bar falls back to
const DefaultSortKey = SortNewest

var sortKeys = []SortKey{
	SortNewest, SortOldest,
	SortRatingHigh, SortRatingLow,
	SortTitleAZ, SortTitleZA,
	SortRuntimeLong, SortRuntimeShort,
}

// SortKeys returns every sort key in menu order
func SortKeys() []SortKey {
	return append([]SortKey(nil), sortKeys...)
}

// ParseSortKey validates a sort key name
func ParseSortKey(s string) (SortKey, bool) {
	for _, k := range sortKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Label returns the display name for the sort key
func (k SortKey) Label() string {
	switch k {
	case SortNewest:
		return "Newest First"
	case SortOldest:
		return "Oldest First"
	case SortRatingHigh:
		return "Highest Rated"
	case SortRatingLow:
		return "Lowest Rated"
	case SortTitleAZ:
		return "Title A-Z"
	case SortTitleZA:
		return "Title Z-A"
	case SortRuntimeLong:
		return "Longest Runtime"
	case SortRuntimeShort:
		return "Shortest Runtime"
	default:
		return "Unsorted"
	}
}

// Next returns the following key in menu order, wrapping around
func (k SortKey) Next() SortKey {
	for i, key := range sortKeys {
		if key == k {
			return sortKeys[(i+1)%len(sortKeys)]
		}
	}
	return DefaultSortKey
}
