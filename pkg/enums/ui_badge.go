package enums

import "fmt"

// UIBadge represents optional badges shown on product cards. Badges are
// presentation hints computed per product; they never affect query results.
type UIBadge string

const (
	UIBadgePopular   UIBadge = "popular"
	UIBadgeBestValue UIBadge = "best_value"
	UIBadgeNew       UIBadge = "new"
)

var validUIBadges = map[UIBadge]struct{}{
	UIBadgePopular:   {},
	UIBadgeBestValue: {},
	UIBadgeNew:       {},
}

// String implements fmt.Stringer.
func (u UIBadge) String() string {
	return string(u)
}

// IsValid reports whether the value is a known UIBadge.
func (u UIBadge) IsValid() bool {
	_, ok := validUIBadges[u]
	return ok
}

// UIBadgeStrings flattens a badge slice for JSON payloads. A nil or empty
// input stays nil so the field can be omitted.
func UIBadgeStrings(badges []UIBadge) []string {
	if len(badges) == 0 {
		return nil
	}
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, string(b))
	}
	return out
}

// ParseUIBadge converts raw input into a UIBadge.
func ParseUIBadge(value string) (UIBadge, error) {
	badge := UIBadge(value)
	if !badge.IsValid() {
		return "", fmt.Errorf("invalid ui badge %q", value)
	}
	return badge, nil
}
