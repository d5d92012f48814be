// Package core holds the shared types passed between the transport,
// the catalog builder, the resolver and the recorder.
package core

// Bounds represents an element's on-screen rectangle as reported by
// the UIAutomator2 server.
type Bounds struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
}

// IsZero reports whether the bounds were never populated.
// Elements without bounds sort after everything else.
func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

// Width returns the horizontal extent.
func (b Bounds) Width() int { return b.Right - b.Left }

// Height returns the vertical extent.
func (b Bounds) Height() int { return b.Bottom - b.Top }

// NodeInfo is the raw attribute map of one discovered UI node.
type NodeInfo struct {
	Text               string `yaml:"text,omitempty"`
	ResourceID         string `yaml:"resourceId,omitempty"`
	ClassName          string `yaml:"className,omitempty"`
	ContentDescription string `yaml:"contentDescription,omitempty"`
	Bounds             Bounds `yaml:"bounds"`

	Clickable     bool `yaml:"clickable"`
	LongClickable bool `yaml:"longClickable"`
	Scrollable    bool `yaml:"scrollable"`
	Checkable     bool `yaml:"checkable"`
	Checked       bool `yaml:"checked"`
	Editable      bool `yaml:"editable"`
	Visible       bool `yaml:"visible"`
}

// AppInfo describes the foreground application.
type AppInfo struct {
	Package  string `yaml:"package,omitempty"`
	Activity string `yaml:"activity,omitempty"`
}

// Capability names a queryable interaction predicate on the device.
type Capability string

// Capabilities in catalog discovery order.
const (
	CapClickable     Capability = "clickable"
	CapLongClickable Capability = "longClickable"
	CapScrollable    Capability = "scrollable"
	CapCheckable     Capability = "checkable"
	CapEditable      Capability = "editable"
)

// QueryOrder is the fixed order in which capability queries run
// during a catalog build.
var QueryOrder = []Capability{
	CapClickable,
	CapLongClickable,
	CapScrollable,
	CapCheckable,
	CapEditable,
}

// EditableClasses is the default allow-list of class names treated as
// text-entry capable even when the node reports no editable flag.
var EditableClasses = []string{
	"android.widget.EditText",
	"android.widget.AutoCompleteTextView",
	"android.webkit.WebView",
}

// TextViewClass is the plain text-label class used by the screen
// identifier heuristics.
const TextViewClass = "android.widget.TextView"
