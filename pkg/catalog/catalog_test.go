package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/devicelab-dev/uiscribe/pkg/core"
)

type fakeNode struct {
	info *core.NodeInfo
	err  error
}

func (f *fakeNode) Info() (*core.NodeInfo, error) {
	return f.info, f.err
}

// fakeSource serves canned nodes per capability and class.
type fakeSource struct {
	byCapability map[core.Capability][]Node
	byClass      map[string][]Node
	capErr       error
	classErr     error
}

func (f *fakeSource) QueryByCapability(capability core.Capability) ([]Node, error) {
	if f.capErr != nil {
		return nil, f.capErr
	}
	return f.byCapability[capability], nil
}

func (f *fakeSource) QueryByClass(className string) ([]Node, error) {
	if f.classErr != nil {
		return nil, f.classErr
	}
	return f.byClass[className], nil
}

func node(info core.NodeInfo) *fakeNode {
	return &fakeNode{info: &info}
}

func TestBuildDeduplicates(t *testing.T) {
	button := core.NodeInfo{
		Text:      "Next",
		ResourceID: "com.app:id/btn_next",
		ClassName: "android.widget.Button",
		Bounds:    core.Bounds{Left: 0, Top: 100, Right: 200, Bottom: 150},
		Clickable: true,
	}

	src := &fakeSource{
		byCapability: map[core.Capability][]Node{
			core.CapClickable:     {node(button)},
			core.CapLongClickable: {node(button)},
		},
	}

	entries, err := NewBuilder(src).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 after dedup", len(entries))
	}
	if entries[0].Text != "Next" {
		t.Errorf("entry text = %q, want Next", entries[0].Text)
	}
}

func TestBuildDistinctBoundsNotDeduplicated(t *testing.T) {
	item := core.NodeInfo{
		Text:      "Item",
		ClassName: "android.widget.TextView",
		Clickable: true,
	}
	first := item
	first.Bounds = core.Bounds{Top: 0, Right: 10, Bottom: 10}
	second := item
	second.Bounds = core.Bounds{Top: 20, Right: 10, Bottom: 30}

	src := &fakeSource{
		byCapability: map[core.Capability][]Node{
			core.CapClickable: {node(first), node(second)},
		},
	}

	entries, err := NewBuilder(src).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 for distinct bounds", len(entries))
	}
}

func TestBuildSelectorPriority(t *testing.T) {
	tests := []struct {
		name string
		info core.NodeInfo
		want string
	}{
		{
			name: "resourceId alone wins",
			info: core.NodeInfo{ResourceID: "com.app:id/x", Text: "X", ClassName: "android.widget.Button"},
			want: "id=com.app:id/x",
		},
		{
			name: "text with class",
			info: core.NodeInfo{Text: "Submit", ClassName: "android.widget.Button"},
			want: "text=Submit",
		},
		{
			name: "description with class",
			info: core.NodeInfo{ContentDescription: "Menu", ClassName: "android.widget.ImageView"},
			want: "desc=Menu",
		},
		{
			name: "class alone",
			info: core.NodeInfo{ClassName: "android.widget.Button"},
			want: "class=android.widget.Button",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := buildSelector(&tt.info)
			if got := sel.Describe(); got != tt.want {
				t.Errorf("selector = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSelectorCarriesClassForText(t *testing.T) {
	sel := buildSelector(&core.NodeInfo{Text: "Submit", ClassName: "android.widget.Button"})
	if sel.ClassName != "android.widget.Button" {
		t.Errorf("text selector should carry className, got %q", sel.ClassName)
	}

	sel = buildSelector(&core.NodeInfo{ResourceID: "com.app:id/x", ClassName: "android.widget.Button"})
	if sel.ClassName != "" {
		t.Errorf("resourceId selector should not carry className, got %q", sel.ClassName)
	}
}

func TestBuildEditableClassAllowList(t *testing.T) {
	field := core.NodeInfo{
		ResourceID: "com.app:id/username",
		ClassName:  "android.widget.EditText",
		Bounds:     core.Bounds{Top: 10, Right: 100, Bottom: 50},
	}

	src := &fakeSource{
		byClass: map[string][]Node{
			"android.widget.EditText": {node(field)},
		},
	}

	entries, err := NewBuilder(src).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !entries[0].Editable {
		t.Error("EditText entry should be marked editable via class allow-list")
	}
}

func TestBuildSkipsNonInteractable(t *testing.T) {
	inert := core.NodeInfo{
		Text:      "Just a label",
		ClassName: "android.widget.TextView",
		Bounds:    core.Bounds{Top: 5, Right: 50, Bottom: 20},
	}

	src := &fakeSource{
		byCapability: map[core.Capability][]Node{
			core.CapClickable: {node(inert)},
		},
	}

	entries, err := NewBuilder(src).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("got %d entries, want 0 for non-interactable node", len(entries))
	}
}

func TestBuildQueryFailureAborts(t *testing.T) {
	src := &fakeSource{capErr: fmt.Errorf("server gone")}

	entries, err := NewBuilder(src).Build()
	if err == nil {
		t.Fatal("expected error from failing query")
	}
	if !errors.Is(err, core.ErrQueryFailed) {
		t.Errorf("error = %v, want ErrQueryFailed", err)
	}
	if entries != nil {
		t.Errorf("entries should be nil on abort, got %d", len(entries))
	}
}

func TestBuildNodeFailureSkipsElement(t *testing.T) {
	good := core.NodeInfo{
		Text:      "OK",
		ClassName: "android.widget.Button",
		Clickable: true,
		Bounds:    core.Bounds{Top: 1, Right: 10, Bottom: 10},
	}

	src := &fakeSource{
		byCapability: map[core.Capability][]Node{
			core.CapClickable: {
				&fakeNode{err: fmt.Errorf("stale element")},
				node(good),
			},
		},
	}

	entries, err := NewBuilder(src).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (bad node skipped)", len(entries))
	}
}

func TestEntryDescribe(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "text and id",
			entry: Entry{Text: "Next", ResourceID: "com.app:id/next", ClassName: "android.widget.Button"},
			want:  "android.widget.Button - Text: 'Next', ID: 'com.app:id/next'",
		},
		{
			name:  "description stands in for text",
			entry: Entry{ContentDescription: "Open menu", ClassName: "android.widget.ImageView"},
			want:  "android.widget.ImageView - Text: 'Open menu'",
		},
		{
			name:  "nothing",
			entry: Entry{ClassName: "android.view.View"},
			want:  "android.view.View - No text/ID",
		},
		{
			name: "long text truncated",
			entry: Entry{Text: "This is a very long label that goes on and on",
				ClassName: "android.widget.TextView"},
			want: "android.widget.TextView - Text: 'This is a very long label that...'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}
