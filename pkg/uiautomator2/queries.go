package uiautomator2

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/uiscribe/pkg/core"
)

// capabilityPredicates maps a capability to its UiSelector predicate.
// UiSelector has no editable predicate; EditText is the closest native
// filter, and the class allow-list queries cover the remaining editable
// widgets.
var capabilityPredicates = map[core.Capability]string{
	core.CapClickable:     `new UiSelector().clickable(true)`,
	core.CapLongClickable: `new UiSelector().longClickable(true)`,
	core.CapScrollable:    `new UiSelector().scrollable(true)`,
	core.CapCheckable:     `new UiSelector().checkable(true)`,
	core.CapEditable:      `new UiSelector().className("android.widget.EditText")`,
}

// QueryByCapability returns all elements matching an interaction
// predicate, in server discovery order.
func (c *Client) QueryByCapability(capability core.Capability) ([]*Element, error) {
	predicate, ok := capabilityPredicates[capability]
	if !ok {
		return nil, fmt.Errorf("unknown capability: %s", capability)
	}
	return c.FindElements(StrategyUIAutomator, predicate)
}

// QueryByClass returns all elements with the given class name.
func (c *Client) QueryByClass(className string) ([]*Element, error) {
	selector := `new UiSelector().className("` + escapeUISelectorString(className) + `")`
	return c.FindElements(StrategyUIAutomator, selector)
}

// QueryTitleLike returns visible elements whose resource id matches a
// title-like pattern. Used by the screen identifier heuristics.
func (c *Client) QueryTitleLike(marker string) ([]*Element, error) {
	pattern := ".*" + escapeUISelectorRegex(marker) + ".*"
	selector := `new UiSelector().resourceIdMatches("` + pattern + `")`
	return c.FindElements(StrategyUIAutomator, selector)
}

// escapeUISelectorString escapes double quotes for a UiSelector string
// argument.
func escapeUISelectorString(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// escapeUISelectorRegex escapes regex metacharacters and quotes for a
// UiSelector *Matches argument.
func escapeUISelectorRegex(s string) string {
	var result strings.Builder
	result.Grow(len(s) * 2)

	for _, c := range s {
		switch c {
		case '"':
			result.WriteString(`\"`)
		case '\\':
			result.WriteString(`\\`)
		case '$', '^', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
			result.WriteRune('\\')
			result.WriteRune(c)
		default:
			result.WriteRune(c)
		}
	}
	return result.String()
}
