package script

import "fmt"

// ActionType represents the kind of a recorded action.
type ActionType string

// Action type constants.
const (
	ActionClick        ActionType = "click"
	ActionSetText      ActionType = "set_text"
	ActionScroll       ActionType = "scroll"
	ActionSwipe        ActionType = "swipe"
	ActionScrollToText ActionType = "scroll_to_text"
)

// Gesture directions for scroll and swipe.
const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// GestureDirections are the accepted scroll/swipe directions.
var GestureDirections = []string{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

// Scroll-to-text directions.
const (
	ScrollForward            = "forward"
	ScrollBackward           = "backward"
	ScrollVerticalForward    = "vertical_forward"
	ScrollVerticalBackward   = "vertical_backward"
	ScrollHorizontalForward  = "horizontal_forward"
	ScrollHorizontalBackward = "horizontal_backward"
)

// ScrollToDirections are the accepted scroll-to-text directions.
var ScrollToDirections = []string{
	ScrollForward,
	ScrollBackward,
	ScrollVerticalForward,
	ScrollVerticalBackward,
	ScrollHorizontalForward,
	ScrollHorizontalBackward,
}

// Action is the interface for all recorded actions. Replay order equals
// recording order.
type Action interface {
	Type() ActionType
	Describe() string
}

// ClickAction taps a target element.
type ClickAction struct {
	Selector Selector
}

// Type returns the action type.
func (a *ClickAction) Type() ActionType { return ActionClick }

// Describe returns a human-readable description.
func (a *ClickAction) Describe() string {
	return fmt.Sprintf("Click on %s", a.Selector.Describe())
}

// SetTextAction enters literal text into an editable target.
type SetTextAction struct {
	Selector Selector
	Text     string
}

// Type returns the action type.
func (a *SetTextAction) Type() ActionType { return ActionSetText }

// Describe returns a human-readable description.
func (a *SetTextAction) Describe() string {
	return fmt.Sprintf("Enter text %q into %s", a.Text, a.Selector.Describe())
}

// ScrollAction flings a scrollable element in a direction.
type ScrollAction struct {
	Selector  Selector
	Direction string // up, down, left, right
}

// Type returns the action type.
func (a *ScrollAction) Type() ActionType { return ActionScroll }

// Describe returns a human-readable description.
func (a *ScrollAction) Describe() string {
	return fmt.Sprintf("Scroll %s %s", a.Selector.Describe(), a.Direction)
}

// SwipeAction performs a whole-screen gesture. Used when the chosen
// element is not scrollable.
type SwipeAction struct {
	Direction string // up, down, left, right
}

// Type returns the action type.
func (a *SwipeAction) Type() ActionType { return ActionSwipe }

// Describe returns a human-readable description.
func (a *SwipeAction) Describe() string {
	return fmt.Sprintf("Swipe screen %s", a.Direction)
}

// ScrollToTextAction scrolls a container until an element with the
// target text appears.
type ScrollToTextAction struct {
	ScrollSelector Selector
	TargetText     string
	Direction      string // one of ScrollToDirections
}

// Type returns the action type.
func (a *ScrollToTextAction) Type() ActionType { return ActionScrollToText }

// Describe returns a human-readable description.
func (a *ScrollToTextAction) Describe() string {
	return fmt.Sprintf("Scroll %s %s until text %q is visible",
		a.ScrollSelector.Describe(), a.Direction, a.TargetText)
}

// ValidGestureDirection reports whether dir is an accepted scroll/swipe
// direction.
func ValidGestureDirection(dir string) bool {
	for _, d := range GestureDirections {
		if d == dir {
			return true
		}
	}
	return false
}

// ValidScrollToDirection reports whether dir is an accepted
// scroll-to-text direction.
func ValidScrollToDirection(dir string) bool {
	for _, d := range ScrollToDirections {
		if d == dir {
			return true
		}
	}
	return false
}
