// Package uiautomator2 provides the HTTP client for the UIAutomator2
// on-device server.
package uiautomator2

// Response is the standard UIAutomator2 response format.
type Response struct {
	SessionID string      `json:"sessionId"`
	Value     interface{} `json:"value"`
}

// Capabilities for session creation.
type Capabilities struct {
	PlatformName string `json:"platformName,omitempty"`
	DeviceName   string `json:"deviceName,omitempty"`
}

// SessionRequest for creating a session.
type SessionRequest struct {
	Capabilities Capabilities `json:"capabilities"`
}

// ElementModel represents an element reference.
type ElementModel struct {
	ELEMENT string `json:"ELEMENT"`
}

// FindElementRequest for finding elements.
type FindElementRequest struct {
	Strategy string `json:"strategy"`
	Selector string `json:"selector"`
	Context  string `json:"context,omitempty"`
}

// InputTextRequest for typing text.
type InputTextRequest struct {
	Text string `json:"text"`
}

// KeyCodeRequest for pressing keys.
type KeyCodeRequest struct {
	KeyCode  int `json:"keycode"`
	MetaKeys int `json:"metastate,omitempty"`
}

// RectModel represents a rectangle for scroll/swipe area operations.
// UIAutomator2 gesture APIs expect left/top/width/height format.
type RectModel struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ElementRect represents element bounds from the /element/{id}/rect API.
type ElementRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SwipeRequest for swipe gestures.
type SwipeRequest struct {
	Origin    *ElementModel `json:"origin,omitempty"`
	Area      *RectModel    `json:"area,omitempty"`
	Direction string        `json:"direction"` // up, down, left, right
	Percent   float64       `json:"percent"`   // 0.0 - 1.0
	Speed     int           `json:"speed,omitempty"`
}

// ScrollRequest for scroll gestures.
type ScrollRequest struct {
	Origin    *ElementModel `json:"origin,omitempty"`
	Area      *RectModel    `json:"area,omitempty"`
	Direction string        `json:"direction"`
	Percent   float64       `json:"percent"`
	Speed     int           `json:"speed,omitempty"`
}

// FlingRequest for fling gestures.
type FlingRequest struct {
	Origin    *ElementModel `json:"origin,omitempty"`
	Area      *RectModel    `json:"area,omitempty"`
	Direction string        `json:"direction"`
	Speed     int           `json:"speed,omitempty"`
}

// Common Android key codes.
const (
	KeyCodeBack  = 4
	KeyCodeHome  = 3
	KeyCodeEnter = 66
)

// Locator strategies.
const (
	StrategyClassName   = "class name"
	StrategyText        = "text"
	StrategyUIAutomator = "-android uiautomator"
)

// Swipe/scroll directions.
const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionLeft  = "left"
	DirectionRight = "right"
)
