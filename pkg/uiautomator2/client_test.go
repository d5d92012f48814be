package uiautomator2

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient returns a client pointed at a httptest server with an
// established session.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClientTCP(0)
	client.SetBaseURL(server.URL)
	client.SetSession("test-session")
	return client
}

func TestCreateSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/session" || r.Method != "POST" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"sessionId":"abc123","value":{}}`)
	})
	client.SetSession("")

	if err := client.CreateSession(Capabilities{PlatformName: "Android"}); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if client.SessionID() != "abc123" {
		t.Errorf("session ID = %q, want abc123", client.SessionID())
	}
}

func TestCreateSessionAlternateFormat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value":{"sessionId":"alt456"}}`)
	})
	client.SetSession("")

	if err := client.CreateSession(Capabilities{}); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if client.SessionID() != "alt456" {
		t.Errorf("session ID = %q, want alt456", client.SessionID())
	}
}

func TestFindElementsSendsSelector(t *testing.T) {
	var gotPath, gotStrategy, gotSelector string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var req FindElementRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotStrategy = req.Strategy
		gotSelector = req.Selector

		fmt.Fprint(w, `{"value":[{"ELEMENT":"e1"},{"ELEMENT":"e2"}]}`)
	})

	elements, err := client.FindElements(StrategyUIAutomator, `new UiSelector().clickable(true)`)
	if err != nil {
		t.Fatalf("FindElements failed: %v", err)
	}

	if gotPath != "/session/test-session/elements" {
		t.Errorf("path = %q", gotPath)
	}
	if gotStrategy != StrategyUIAutomator {
		t.Errorf("strategy = %q", gotStrategy)
	}
	if gotSelector != `new UiSelector().clickable(true)` {
		t.Errorf("selector = %q", gotSelector)
	}
	if len(elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(elements))
	}
	if elements[0].ID() != "e1" {
		t.Errorf("first element ID = %q", elements[0].ID())
	}
}

func TestFindElementNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"value":{"error":"no such element","message":"not found"}}`)
	})

	if _, err := client.FindElement(StrategyUIAutomator, `new UiSelector().text("gone")`); err == nil {
		t.Fatal("expected error for missing element")
	}
}

func TestElementInfo(t *testing.T) {
	responses := map[string]string{
		"/session/test-session/element/e1/text":                          `{"value":"Next"}`,
		"/session/test-session/element/e1/attribute/className":           `{"value":"android.widget.Button"}`,
		"/session/test-session/element/e1/attribute/resourceId":          `{"value":"com.app:id/next"}`,
		"/session/test-session/element/e1/attribute/contentDescription":  `{"value":""}`,
		"/session/test-session/element/e1/rect":                          `{"value":{"x":10,"y":20,"width":100,"height":40}}`,
		"/session/test-session/element/e1/attribute/clickable":           `{"value":"true"}`,
		"/session/test-session/element/e1/attribute/longClickable":       `{"value":"false"}`,
		"/session/test-session/element/e1/attribute/scrollable":          `{"value":"false"}`,
		"/session/test-session/element/e1/attribute/checkable":           `{"value":"false"}`,
		"/session/test-session/element/e1/attribute/checked":             `{"value":"false"}`,
		"/session/test-session/element/e1/attribute/editable":            `{"value":"false"}`,
		"/session/test-session/element/e1/attribute/displayed":           `{"value":"true"}`,
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"value":{"error":"unknown","message":"unknown path"}}`)
			return
		}
		fmt.Fprint(w, body)
	})

	elem := NewTestElement("e1", client)
	info, err := elem.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	if info.Text != "Next" {
		t.Errorf("text = %q", info.Text)
	}
	if info.ClassName != "android.widget.Button" {
		t.Errorf("className = %q", info.ClassName)
	}
	if !info.Clickable || info.Scrollable {
		t.Errorf("flags wrong: %+v", info)
	}
	if info.Bounds.Left != 10 || info.Bounds.Top != 20 || info.Bounds.Right != 110 || info.Bounds.Bottom != 60 {
		t.Errorf("bounds = %+v", info.Bounds)
	}
}

func TestElementInfoTextFailureIsFatal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"value":{"error":"stale","message":"element gone"}}`)
	})

	elem := NewTestElement("e1", client)
	if _, err := elem.Info(); err == nil {
		t.Fatal("expected error when text read fails")
	}
}

func TestGestureEndpoints(t *testing.T) {
	var paths []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/session/test-session/window/:windowHandle/size" {
			fmt.Fprint(w, `{"value":{"width":1080,"height":1920}}`)
			return
		}
		fmt.Fprint(w, `{"value":null}`)
	})

	if err := client.Fling("e1", "down", 5000); err != nil {
		t.Fatalf("Fling failed: %v", err)
	}
	if err := client.Scroll("e1", "down", 0.85, 3000); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	if err := client.SwipeScreen("left"); err != nil {
		t.Fatalf("SwipeScreen failed: %v", err)
	}
	if err := client.Back(); err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if err := client.PressKeyCode(KeyCodeHome); err != nil {
		t.Fatalf("PressKeyCode failed: %v", err)
	}

	want := []string{
		"/session/test-session/appium/gestures/fling",
		"/session/test-session/appium/gestures/scroll",
		"/session/test-session/window/:windowHandle/size",
		"/session/test-session/appium/gestures/swipe",
		"/session/test-session/back",
		"/session/test-session/appium/device/press_keycode",
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d requests, want %d: %v", len(paths), len(want), paths)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("request %d path = %q, want %q", i, paths[i], p)
		}
	}
}

func TestDeleteSession(t *testing.T) {
	var gotMethod, gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"value":null}`)
	})

	if err := client.DeleteSession(); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if gotMethod != "DELETE" || gotPath != "/session/test-session" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if client.HasSession() {
		t.Error("session should be cleared")
	}
}
