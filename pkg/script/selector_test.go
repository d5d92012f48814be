package script

import (
	"reflect"
	"testing"
)

func TestCriteriaOrder(t *testing.T) {
	sel := Selector{
		ClassName:   "android.widget.Button",
		Text:        "Next",
		ResourceID:  "com.app:id/next",
		Description: "next button",
	}

	got := sel.Criteria()
	want := []Criterion{
		{Key: "resourceId", Value: "com.app:id/next"},
		{Key: "text", Value: "Next"},
		{Key: "description", Value: "next button"},
		{Key: "className", Value: "android.widget.Button"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Criteria() = %v, want %v", got, want)
	}
}

func TestCriteriaSkipsEmpty(t *testing.T) {
	sel := Selector{Text: "Submit", ClassName: "android.widget.Button"}

	got := sel.Criteria()
	want := []Criterion{
		{Key: "text", Value: "Submit"},
		{Key: "className", Value: "android.widget.Button"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Criteria() = %v, want %v", got, want)
	}
}

func TestCriteriaExtraSorted(t *testing.T) {
	sel := Selector{
		ResourceID: "com.app:id/list",
		Extra:      map[string]string{"instance": "2", "checked": "true"},
	}

	got := sel.Criteria()
	want := []Criterion{
		{Key: "resourceId", Value: "com.app:id/list"},
		{Key: "checked", Value: "true"},
		{Key: "instance", Value: "2"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Criteria() = %v, want %v", got, want)
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Selector{}).IsEmpty() {
		t.Error("zero selector should be empty")
	}
	if (Selector{Text: "x"}).IsEmpty() {
		t.Error("selector with text should not be empty")
	}
	if (Selector{Extra: map[string]string{"instance": "1"}}).IsEmpty() {
		t.Error("selector with extra should not be empty")
	}
}

func TestActionDescribe(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{&ClickAction{Selector: Selector{ResourceID: "com.app:id/go"}}, "Click on id=com.app:id/go"},
		{&SetTextAction{Selector: Selector{Text: "Email"}, Text: "a@b.c"}, `Enter text "a@b.c" into text=Email`},
		{&SwipeAction{Direction: DirectionUp}, "Swipe screen up"},
	}

	for _, tt := range tests {
		if got := tt.action.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}
