package screen

import (
	"math"
	"sort"
	"strings"

	"github.com/devicelab-dev/uiscribe/pkg/catalog"
	"github.com/devicelab-dev/uiscribe/pkg/core"
	"github.com/devicelab-dev/uiscribe/pkg/logger"
)

// AppReader reports the foreground application. Implemented by
// device.AndroidDevice.
type AppReader interface {
	CurrentApp() (core.AppInfo, error)
}

// DefaultTitleMarkers are the resource-id substrings that mark an
// element as a screen title.
var DefaultTitleMarkers = []string{"title", "action_bar_title", "toolbar_title"}

// Resolver derives screen identifiers from catalog contents.
type Resolver struct {
	titleMarkers []string
}

// NewResolver creates a resolver with the default title markers.
func NewResolver() *Resolver {
	return &Resolver{titleMarkers: DefaultTitleMarkers}
}

// SetTitleMarkers overrides the title resource-id markers.
func (r *Resolver) SetTitleMarkers(markers []string) {
	if len(markers) > 0 {
		r.titleMarkers = markers
	}
}

// Resolve returns the normalized identifier for the current screen.
// Priority: title-marked text label, then topmost text label, then
// foreground activity, then the fallback name. First match wins.
func (r *Resolver) Resolve(entries []catalog.Entry, app AppReader) string {
	candidate := r.titleCandidate(entries)

	if candidate == "" && app != nil {
		info, err := app.CurrentApp()
		if err != nil {
			logger.Warn("could not get foreground activity: %v", err)
		} else {
			candidate = info.Activity
		}
	}

	if candidate == "" {
		candidate = "Unnamed Screen"
	}

	return Normalize(candidate)
}

// titleCandidate scans text labels sorted top-left-first for a
// title-marked resource id, falling back to the topmost label.
func (r *Resolver) titleCandidate(entries []catalog.Entry) string {
	labels := sortedTextLabels(entries)

	for _, label := range labels {
		id := strings.ToLower(label.ResourceID)
		for _, marker := range r.titleMarkers {
			if strings.Contains(id, marker) {
				return label.Text
			}
		}
	}

	if len(labels) > 0 {
		return labels[0].Text
	}
	return ""
}

// sortedTextLabels returns non-empty text labels ordered by
// (top, left) ascending. Entries without bounds sort last.
func sortedTextLabels(entries []catalog.Entry) []catalog.Entry {
	var labels []catalog.Entry
	for _, e := range entries {
		if e.ClassName == core.TextViewClass && e.Text != "" {
			labels = append(labels, e)
		}
	}

	sort.SliceStable(labels, func(i, j int) bool {
		ti, li := sortKey(labels[i].Bounds)
		tj, lj := sortKey(labels[j].Bounds)
		if ti != tj {
			return ti < tj
		}
		return li < lj
	})

	return labels
}

func sortKey(b core.Bounds) (int, int) {
	if b.IsZero() {
		return math.MaxInt, math.MaxInt
	}
	return b.Top, b.Left
}
