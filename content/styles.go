package content

import "github.com/google/go-cmp/cmp"

// StyleRuleConflicts pairs every rule of first with each rule of second
// that shares its selector but not its values.
func StyleRuleConflicts(first, second []StyleRuleDescription) [][2]StyleRuleDescription {
	var conflicts [][2]StyleRuleDescription
	for _, a := range first {
		for _, b := range second {
			if a.Selector != b.Selector || cmp.Equal(a.Values, b.Values) {
				continue
			}
			conflicts = append(conflicts, [2]StyleRuleDescription{a, b})
		}
	}

	return conflicts
}

// ExtendStyleRules merges rule sets in order. A later rule replaces an
// earlier one with the same selector in place; new selectors are appended.
func ExtendStyleRules(ruleSets ...[]StyleRuleDescription) []StyleRuleDescription {
	var merged []StyleRuleDescription
	positions := make(map[string]int)
	for _, rules := range ruleSets {
		for _, rule := range rules {
			if i, ok := positions[rule.Selector]; ok {
				merged[i] = rule
				continue
			}
			positions[rule.Selector] = len(merged)
			merged = append(merged, rule)
		}
	}

	return merged
}

// DocumentAsPage turns doc into a single page holding content, with the
// document pages as its children.
func DocumentAsPage(doc *PageTreeDocument, content any) *PageTreeNode {
	return &PageTreeNode{
		ID:       doc.ID,
		Title:    doc.Title,
		Content:  content,
		Children: doc.Pages,
	}
}
