package uiautomator2

// Fling flings an element in the given direction.
func (c *Client) Fling(elementID, direction string, speed int) error {
	req := FlingRequest{
		Origin:    &ElementModel{ELEMENT: elementID},
		Direction: direction,
		Speed:     speed,
	}
	_, err := c.request("POST", c.sessionPath("/appium/gestures/fling"), req)
	return err
}

// Scroll scrolls an element in the given direction.
func (c *Client) Scroll(elementID, direction string, percent float64, speed int) error {
	req := ScrollRequest{
		Origin:    &ElementModel{ELEMENT: elementID},
		Direction: direction,
		Percent:   percent,
		Speed:     speed,
	}
	_, err := c.request("POST", c.sessionPath("/appium/gestures/scroll"), req)
	return err
}

// SwipeScreen swipes across the whole screen in the given direction.
func (c *Client) SwipeScreen(direction string) error {
	width, height, err := c.WindowSize()
	if err != nil {
		return err
	}

	req := SwipeRequest{
		Area:      &RectModel{Left: 0, Top: 0, Width: width, Height: height},
		Direction: direction,
		Percent:   0.8,
	}
	_, err = c.request("POST", c.sessionPath("/appium/gestures/swipe"), req)
	return err
}

// Back presses the back button.
func (c *Client) Back() error {
	_, err := c.request("POST", c.sessionPath("/back"), nil)
	return err
}

// PressKeyCode presses an Android key code.
func (c *Client) PressKeyCode(keyCode int) error {
	req := KeyCodeRequest{KeyCode: keyCode}
	_, err := c.request("POST", c.sessionPath("/appium/device/press_keycode"), req)
	return err
}
