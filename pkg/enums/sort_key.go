package enums

import "fmt"

// SortKey selects the ordering applied to catalog query results.
type SortKey string

const (
	SortKeyRelevance SortKey = "relevance"
	SortKeyPriceAsc  SortKey = "price_asc"
	SortKeyPriceDesc SortKey = "price_desc"
	SortKeyName      SortKey = "name"
)

var validSortKeys = []SortKey{
	SortKeyRelevance,
	SortKeyPriceAsc,
	SortKeyPriceDesc,
	SortKeyName,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
