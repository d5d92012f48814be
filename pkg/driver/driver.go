// Package driver replays recorded actions against a live device so the
// UI keeps pace with an interactive recording session.
package driver

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/uiscribe/pkg/logger"
	"github.com/devicelab-dev/uiscribe/pkg/script"
	"github.com/devicelab-dev/uiscribe/pkg/uiautomator2"
)

const (
	flingSpeed    = 5000
	scrollSpeed   = 3000
	scrollPercent = 0.85

	// maxScrollAttempts bounds a scroll-to-text search; content may
	// simply not contain the target.
	maxScrollAttempts = 10
)

// Device applies recorded actions through a uiautomator2 session.
type Device struct {
	client *uiautomator2.Client
}

// New creates a device driver over an established session.
func New(client *uiautomator2.Client) *Device {
	return &Device{client: client}
}

// Perform applies one recorded action on the device.
func (d *Device) Perform(action script.Action) error {
	logger.Debug("performing action: %s", action.Describe())

	switch a := action.(type) {
	case *script.ClickAction:
		elem, err := d.find(a.Selector)
		if err != nil {
			return err
		}
		return elem.Click()

	case *script.SetTextAction:
		elem, err := d.find(a.Selector)
		if err != nil {
			return err
		}
		if err := elem.Clear(); err != nil {
			logger.Warn("clear before set_text: %v", err)
		}
		return elem.SendKeys(a.Text)

	case *script.ScrollAction:
		elem, err := d.find(a.Selector)
		if err != nil {
			return err
		}
		return d.client.Fling(elem.ID(), a.Direction, flingSpeed)

	case *script.SwipeAction:
		return d.client.SwipeScreen(a.Direction)

	case *script.ScrollToTextAction:
		return d.scrollToText(a)

	default:
		return fmt.Errorf("unsupported action type: %s", action.Type())
	}
}

// PressBack presses the device back button.
func (d *Device) PressBack() error {
	return d.client.Back()
}

// PressHome presses the device home button.
func (d *Device) PressHome() error {
	return d.client.PressKeyCode(uiautomator2.KeyCodeHome)
}

// find locates the element described by sel.
func (d *Device) find(sel script.Selector) (*uiautomator2.Element, error) {
	locator, err := uiSelector(sel)
	if err != nil {
		return nil, err
	}

	elem, err := d.client.FindElement(uiautomator2.StrategyUIAutomator, locator)
	if err != nil {
		return nil, fmt.Errorf("find element %s: %w", sel.Describe(), err)
	}
	return elem, nil
}

// scrollToText scrolls the container until an element with the target
// text is present, bounded by maxScrollAttempts.
func (d *Device) scrollToText(a *script.ScrollToTextAction) error {
	container, err := d.find(a.ScrollSelector)
	if err != nil {
		return err
	}

	target := fmt.Sprintf(`new UiSelector().text("%s")`, escapeUISelector(a.TargetText))
	direction := gestureDirection(a.Direction)

	for i := 0; i < maxScrollAttempts; i++ {
		if _, err := d.client.FindElement(uiautomator2.StrategyUIAutomator, target); err == nil {
			return nil
		}
		if err := d.client.Scroll(container.ID(), direction, scrollPercent, scrollSpeed); err != nil {
			return fmt.Errorf("scroll toward %q: %w", a.TargetText, err)
		}
	}

	return fmt.Errorf("text %q not found after %d scrolls", a.TargetText, maxScrollAttempts)
}

// uiSelectorMethods maps selector criteria keys onto UiSelector methods.
var uiSelectorMethods = map[string]string{
	"resourceId":  "resourceId",
	"text":        "text",
	"description": "description",
	"className":   "className",
}

// uiSelector renders a recorded selector as a UiSelector expression.
func uiSelector(sel script.Selector) (string, error) {
	if sel.IsEmpty() {
		return "", fmt.Errorf("selector has no criteria")
	}

	var b strings.Builder
	b.WriteString("new UiSelector()")
	for _, c := range sel.Criteria() {
		method, ok := uiSelectorMethods[c.Key]
		if !ok {
			logger.Warn("skipping selector criterion %q: no UiSelector method", c.Key)
			continue
		}
		fmt.Fprintf(&b, `.%s("%s")`, method, escapeUISelector(c.Value))
	}
	return b.String(), nil
}

// gestureDirection maps a scroll-to direction onto a scroll gesture
// direction. Forward means revealing further content.
func gestureDirection(dir string) string {
	switch dir {
	case script.ScrollBackward, script.ScrollVerticalBackward:
		return uiautomator2.DirectionUp
	case script.ScrollHorizontalForward:
		return uiautomator2.DirectionRight
	case script.ScrollHorizontalBackward:
		return uiautomator2.DirectionLeft
	default:
		return uiautomator2.DirectionDown
	}
}

func escapeUISelector(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
