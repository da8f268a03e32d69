package dom

import "strings"

// InteractiveSelector is the CSS selector for elements that enlarge the cursor.
const InteractiveSelector = `a, button, input, textarea, select, [role="button"]`

// IsInteractive reports whether an element with the given tag name and role
// attribute matches InteractiveSelector.
func IsInteractive(tag, role string) bool {
	switch strings.ToLower(tag) {
	case "a", "button", "input", "textarea", "select":
		return true
	}
	return role == "button"
}
