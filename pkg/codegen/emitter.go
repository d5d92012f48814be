package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devicelab-dev/uiscribe/pkg/script"
)

// DefaultStabilityDelay is the pause in seconds inserted after every
// emitted action statement.
const DefaultStabilityDelay = 0.5

// Emitter renders screen definitions as Python source.
type Emitter struct {
	// StabilityDelay is the sleep in seconds after each action.
	StabilityDelay float64
}

// NewEmitter creates an emitter with the default stability delay.
func NewEmitter() *Emitter {
	return &Emitter{StabilityDelay: DefaultStabilityDelay}
}

// ScreenFunction renders one screen definition as a Python function
// taking the connected device as its only parameter. A definition with
// no actions gets a pass body.
func (e *Emitter) ScreenFunction(def script.ScreenDefinition) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("def %s(d):", def.Name))
	lines = append(lines, fmt.Sprintf("    \"\"\"Automates actions on the %s screen.\"\"\"", def.Name))
	lines = append(lines, fmt.Sprintf("    print(f'Executing actions for %s screen...')", def.Name))

	if len(def.Actions) == 0 {
		lines = append(lines, "    pass")
		return strings.Join(lines, "\n")
	}

	sleep := fmt.Sprintf("    time.sleep(%s) # Stability delay", formatDelay(e.StabilityDelay))
	for _, action := range def.Actions {
		lines = append(lines, "    "+e.statement(action))
		lines = append(lines, sleep)
	}

	return strings.Join(lines, "\n")
}

// statement renders one action as a single Python statement.
func (e *Emitter) statement(action script.Action) string {
	switch a := action.(type) {
	case *script.ClickAction:
		return fmt.Sprintf("d(%s).click()", selectorArgs(a.Selector))
	case *script.SetTextAction:
		return fmt.Sprintf("d(%s).set_text(%s)", selectorArgs(a.Selector), PyRepr(a.Text))
	case *script.ScrollAction:
		return fmt.Sprintf("d(%s).fling.%s()", selectorArgs(a.Selector), flingMethod(a.Direction))
	case *script.SwipeAction:
		return fmt.Sprintf("d.swipe_ext(%q)", a.Direction)
	case *script.ScrollToTextAction:
		// The recorded direction is advisory; scroll.to discovers it.
		return fmt.Sprintf("d(%s).scroll.to(text=%s)",
			selectorArgs(a.ScrollSelector), PyRepr(a.TargetText))
	default:
		return fmt.Sprintf("pass  # unsupported action: %s", action.Type())
	}
}

// flingMethod maps a gesture direction onto the uiautomator2 fling
// accessor of the same name.
func flingMethod(direction string) string {
	if script.ValidGestureDirection(direction) {
		return direction
	}
	return "forward"
}

// formatDelay renders the delay without trailing zeros (0.5, 1, 1.25).
func formatDelay(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
