// Package catalog builds the canonical list of interactable elements
// for the current screen: it runs the capability and class queries,
// deduplicates the raw results and derives a replay selector for each
// retained element.
package catalog

import (
	"fmt"

	"github.com/devicelab-dev/uiscribe/pkg/core"
	"github.com/devicelab-dev/uiscribe/pkg/logger"
	"github.com/devicelab-dev/uiscribe/pkg/script"
)

// Node is one raw element handle returned by a query.
type Node interface {
	// Info reads the full attribute map. A failure here skips only
	// this element, not the whole build.
	Info() (*core.NodeInfo, error)
}

// Querier is the query surface the builder consumes.
// Implemented by catalog.UIA2Source over a live uiautomator2.Client.
type Querier interface {
	QueryByCapability(capability core.Capability) ([]Node, error)
	QueryByClass(className string) ([]Node, error)
}

// Entry is one deduplicated catalog element.
type Entry struct {
	Text               string `yaml:"text,omitempty"`
	ResourceID         string `yaml:"resourceId,omitempty"`
	ClassName          string `yaml:"className,omitempty"`
	ContentDescription string `yaml:"contentDescription,omitempty"`
	Bounds             core.Bounds `yaml:"bounds"`

	Clickable     bool `yaml:"clickable"`
	LongClickable bool `yaml:"longClickable"`
	Scrollable    bool `yaml:"scrollable"`
	Checkable     bool `yaml:"checkable"`
	Checked       bool `yaml:"checked"`
	Editable      bool `yaml:"editable"`

	Selector script.Selector `yaml:"selector"`
}

// Describe returns a one-line description for element menus.
func (e Entry) Describe() string {
	display := e.Text
	if display == "" {
		display = e.ContentDescription
	}
	if len(display) > 30 {
		display = display[:30] + "..."
	}

	switch {
	case display != "" && e.ResourceID != "":
		return fmt.Sprintf("%s - Text: '%s', ID: '%s'", e.ClassName, display, e.ResourceID)
	case display != "":
		return fmt.Sprintf("%s - Text: '%s'", e.ClassName, display)
	case e.ResourceID != "":
		return fmt.Sprintf("%s - ID: '%s'", e.ClassName, e.ResourceID)
	default:
		return fmt.Sprintf("%s - No text/ID", e.ClassName)
	}
}

// signature identifies an element for deduplication. Two raw results
// with the same signature collapse to one catalog entry.
type signature struct {
	resourceID  string
	text        string
	className   string
	bounds      core.Bounds
	description string
}

// Builder runs the queries and assembles the catalog.
type Builder struct {
	source          Querier
	editableClasses []string
}

// NewBuilder creates a builder with the default editable class allow-list.
func NewBuilder(source Querier) *Builder {
	return &Builder{
		source:          source,
		editableClasses: core.EditableClasses,
	}
}

// SetEditableClasses overrides the editable class allow-list.
func (b *Builder) SetEditableClasses(classes []string) {
	if len(classes) > 0 {
		b.editableClasses = classes
	}
}

// Build queries the current screen and returns the deduplicated,
// ordered catalog. A query-level failure aborts the whole build and
// yields an empty catalog; a failure inspecting one element skips
// only that element.
func (b *Builder) Build() ([]Entry, error) {
	var raw []Node

	for _, capability := range core.QueryOrder {
		nodes, err := b.source.QueryByCapability(capability)
		if err != nil {
			return nil, core.ErrQueryFailed.WithCause(
				fmt.Errorf("query %s: %w", capability, err))
		}
		raw = append(raw, nodes...)
	}

	for _, class := range b.editableClasses {
		nodes, err := b.source.QueryByClass(class)
		if err != nil {
			return nil, core.ErrQueryFailed.WithCause(
				fmt.Errorf("query class %s: %w", class, err))
		}
		raw = append(raw, nodes...)
	}

	seen := make(map[signature]struct{})
	var entries []Entry

	for _, node := range raw {
		info, err := node.Info()
		if err != nil {
			logger.Warn("skipping element: %v", err)
			continue
		}

		sig := signature{
			resourceID:  info.ResourceID,
			text:        info.Text,
			className:   info.ClassName,
			bounds:      info.Bounds,
			description: info.ContentDescription,
		}
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}

		editable := info.Editable || b.isEditableClass(info.ClassName)
		if !(info.Clickable || info.LongClickable || info.Scrollable ||
			info.Checkable || editable) {
			continue
		}

		entries = append(entries, Entry{
			Text:               info.Text,
			ResourceID:         info.ResourceID,
			ClassName:          info.ClassName,
			ContentDescription: info.ContentDescription,
			Bounds:             info.Bounds,
			Clickable:          info.Clickable,
			LongClickable:      info.LongClickable,
			Scrollable:         info.Scrollable,
			Checkable:          info.Checkable,
			Checked:            info.Checked,
			Editable:           editable,
			Selector:           buildSelector(info),
		})
	}

	return entries, nil
}

func (b *Builder) isEditableClass(className string) bool {
	for _, c := range b.editableClasses {
		if c == className {
			return true
		}
	}
	return false
}

// buildSelector derives the replay selector with single-criterion
// preference: resourceId alone wins; text or description carry the
// class name only to disambiguate; class name alone is the last
// resort. An empty selector is accepted.
func buildSelector(info *core.NodeInfo) script.Selector {
	switch {
	case info.ResourceID != "":
		return script.Selector{ResourceID: info.ResourceID}
	case info.Text != "":
		return script.Selector{Text: info.Text, ClassName: info.ClassName}
	case info.ContentDescription != "":
		return script.Selector{Description: info.ContentDescription, ClassName: info.ClassName}
	case info.ClassName != "":
		return script.Selector{ClassName: info.ClassName}
	default:
		return script.Selector{}
	}
}
