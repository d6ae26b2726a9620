package catalog

import (
	"strings"

	"github.com/greenlyfe/greenlyfe-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// BadgeRule maps a product predicate to a display badge. Rules are display
// heuristics that change independently of catalog logic, so they are injected
// rather than hard-coded.
type BadgeRule struct {
	Badge   enums.UIBadge
	Applies func(Product) bool
}

// ApplyBadgeRules evaluates the rule set against a product in order.
// A product can carry multiple badges but never the same badge twice.
func ApplyBadgeRules(rules []BadgeRule, p Product) []enums.UIBadge {
	var badges []enums.UIBadge
	seen := map[enums.UIBadge]bool{}
	for _, rule := range rules {
		if rule.Applies == nil || seen[rule.Badge] {
			continue
		}
		if rule.Applies(p) {
			badges = append(badges, rule.Badge)
			seen[rule.Badge] = true
		}
	}
	return badges
}

// DefaultBadgeRules is the current storefront heuristic set.
func DefaultBadgeRules() []BadgeRule {
	bestValueCeiling := decimal.RequireFromString("12")
	return []BadgeRule{
		{
			Badge: enums.UIBadgeBestValue,
			Applies: func(p Product) bool {
				return p.Price.LessThanOrEqual(bestValueCeiling)
			},
		},
		{
			Badge: enums.UIBadgePopular,
			Applies: func(p Product) bool {
				return p.Category == enums.ProductCategorySupplements
			},
		},
		{
			Badge: enums.UIBadgeNew,
			Applies: func(p Product) bool {
				return strings.HasPrefix(p.ID, "suco-")
			},
		},
	}
}
