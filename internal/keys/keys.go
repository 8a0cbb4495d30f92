package keys

import (
	"strings"
)

// ContentKey produces a canonical identifier from a content item's display
// name. Behavior: trims, lower-cases and collapses whitespace runs into a
// single hyphen. Suitable as a stable card or event id when the content
// file omits an explicit one.
func ContentKey(name string) string {
	parts := strings.Fields(strings.ToLower(name))
	return strings.Join(parts, "-")
}
