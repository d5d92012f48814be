// Package recorder implements the interactive action-recording state
// machine. One instance records one screen; the operator attaches an
// ordered sequence of typed actions to catalog entries through
// numbered menus.
package recorder

import (
	"errors"
	"io"

	"github.com/devicelab-dev/uiscribe/pkg/catalog"
	"github.com/devicelab-dev/uiscribe/pkg/console"
	"github.com/devicelab-dev/uiscribe/pkg/core"
	"github.com/devicelab-dev/uiscribe/pkg/logger"
	"github.com/devicelab-dev/uiscribe/pkg/script"
)

// state is the recorder's position in the session state machine.
type state int

const (
	stateBrowsing state = iota
	stateSelectingElement
	stateRecordingClick
	stateRecordingText
	stateRecordingScroll
	stateRecordingScrollToText
	stateDone
)

// Menu choices offered while browsing.
const (
	choiceClick = iota + 1
	choiceEnterText
	choiceScroll
	choiceScrollToText
	choiceFinish
)

// Performer optionally applies each accepted action on the live device
// so the UI keeps pace with the recording. May be nil.
type Performer interface {
	Perform(action script.Action) error
}

// Recorder drives one screen's recording session.
type Recorder struct {
	console   *console.Console
	entries   []catalog.Entry
	performer Performer

	state    state
	pending  state
	selected *catalog.Entry
	actions  []script.Action
}

// New creates a recorder over the given catalog.
func New(c *console.Console, entries []catalog.Entry) *Recorder {
	return &Recorder{
		console: c,
		entries: entries,
		state:   stateBrowsing,
	}
}

// SetPerformer enables live application of recorded actions.
func (r *Recorder) SetPerformer(p Performer) {
	r.performer = p
}

// Record runs the session until the operator finishes and returns the
// accumulated ordered action list (possibly empty). End of input is
// treated as finishing the screen.
func (r *Recorder) Record(screenName string) ([]script.Action, error) {
	if len(r.entries) == 0 {
		r.console.Printf("No interactable elements found for screen: %s.\n", screenName)
		return nil, nil
	}

	for r.state != stateDone {
		var err error
		switch r.state {
		case stateBrowsing:
			err = r.browse(screenName)
		case stateSelectingElement:
			err = r.selectElement()
		case stateRecordingClick:
			err = r.recordClick()
		case stateRecordingText:
			err = r.recordText()
		case stateRecordingScroll:
			err = r.recordScroll()
		case stateRecordingScrollToText:
			err = r.recordScrollToText()
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				r.state = stateDone
				continue
			}
			return r.actions, err
		}
	}

	r.console.Printf("Finished recording actions for %s.\n", screenName)
	return r.actions, nil
}

// browse shows the catalog and the action menu, then dispatches to the
// chosen recording state.
func (r *Recorder) browse(screenName string) error {
	r.console.Headerf("\n--- Building actions for screen: %s ---\n", screenName)
	r.console.Printf("Found the following interactable elements:\n")
	for i, e := range r.entries {
		r.console.Printf("  %d. %s\n", i+1, e.Describe())
	}

	r.console.Printf("\nWhat action would you like to add for %s?\n", screenName)
	r.console.Printf("  1. Click an element\n")
	r.console.Printf("  2. Enter text into an element\n")
	r.console.Printf("  3. Scroll an element (if scrollable) or the screen (swipe)\n")
	r.console.Printf("  4. Scroll until a specific text is visible\n")
	r.console.Printf("  5. Finish and generate function for this screen\n")

	choice, err := r.console.PromptInt("Enter your choice (1-5): ", choiceClick, choiceFinish)
	if err != nil {
		return err
	}

	switch choice {
	case choiceClick:
		r.pending = stateRecordingClick
	case choiceEnterText:
		r.pending = stateRecordingText
	case choiceScroll:
		r.pending = stateRecordingScroll
	case choiceScrollToText:
		r.pending = stateRecordingScrollToText
	case choiceFinish:
		r.state = stateDone
		return nil
	}

	r.state = stateSelectingElement
	return nil
}

// selectElement asks for a 1-indexed element number, re-prompting
// indefinitely on out-of-range or non-numeric input.
func (r *Recorder) selectElement() error {
	prompt := "Which element number do you want to interact with? "
	if r.pending == stateRecordingScrollToText {
		prompt = "Which element number is the SCROLLABLE container? "
	}

	idx, err := r.console.PromptInt(prompt, 1, len(r.entries))
	if err != nil {
		return err
	}

	r.selected = &r.entries[idx-1]
	r.state = r.pending
	return nil
}

// recordClick records a click. A missing clickable flag only warns:
// operator intent wins over heuristic flags.
func (r *Recorder) recordClick() error {
	if !r.selected.Clickable {
		r.console.Warnf("element %s may not be clickable\n", r.selected.Describe())
	}

	r.accept(&script.ClickAction{Selector: r.selected.Selector})
	return nil
}

// recordText records text entry. Typing into a non-editable target is
// certain to fail at replay time, so this gate is hard.
func (r *Recorder) recordText() error {
	if !r.selected.Editable {
		r.console.Errorf("element %s is not editable\n", r.selected.Describe())
		logger.Info("rejected set_text on %s: %v", r.selected.Describe(), core.ErrNotEditable)
		r.state = stateBrowsing
		return nil
	}

	text, err := r.console.Prompt("Enter the text you want to input: ")
	if err != nil {
		return err
	}

	r.accept(&script.SetTextAction{Selector: r.selected.Selector, Text: text})
	return nil
}

// recordScroll records an element fling, downgrading to a whole-screen
// swipe when the element is not scrollable.
func (r *Recorder) recordScroll() error {
	dir, err := r.console.Prompt("Scroll direction? (up, down, left, right): ")
	if err != nil {
		return err
	}
	if !script.ValidGestureDirection(dir) {
		r.console.Warnf("invalid direction, defaulting to 'down'\n")
		dir = script.DirectionDown
	}

	if r.selected.Scrollable {
		r.accept(&script.ScrollAction{Selector: r.selected.Selector, Direction: dir})
		return nil
	}

	r.console.Printf("Element %s is not scrollable. Performing a general screen swipe %s.\n",
		r.selected.Describe(), dir)
	r.accept(&script.SwipeAction{Direction: dir})
	return nil
}

// recordScrollToText records a scroll-until-text action. The container
// must be scrollable and the target text non-empty; both gates reject
// without recording.
func (r *Recorder) recordScrollToText() error {
	if !r.selected.Scrollable {
		r.console.Errorf("element %s is not scrollable, pick a scrollable container\n",
			r.selected.Describe())
		logger.Info("rejected scroll_to_text on %s: %v", r.selected.Describe(), core.ErrNotScrollable)
		r.state = stateBrowsing
		return nil
	}

	target, err := r.console.Prompt("Enter the text of the element you want to scroll to find: ")
	if err != nil {
		return err
	}
	if target == "" {
		r.console.Errorf("target text cannot be empty, action skipped\n")
		logger.Info("rejected scroll_to_text: %v", core.ErrEmptyTargetText)
		r.state = stateBrowsing
		return nil
	}

	dir, err := r.console.Prompt("Scroll direction (forward, backward, vertical_forward, vertical_backward, horizontal_forward, horizontal_backward): ")
	if err != nil {
		return err
	}
	if !script.ValidScrollToDirection(dir) {
		r.console.Warnf("invalid scroll direction, defaulting to 'forward'\n")
		dir = script.ScrollForward
	}

	r.accept(&script.ScrollToTextAction{
		ScrollSelector: r.selected.Selector,
		TargetText:     target,
		Direction:      dir,
	})
	return nil
}

// accept appends the action, optionally applies it on the device, and
// returns to browsing.
func (r *Recorder) accept(action script.Action) {
	r.actions = append(r.actions, action)
	r.console.Successf("Action added: %s\n", action.Describe())
	logger.Info("recorded action: %s", action.Describe())

	if r.performer != nil {
		if err := r.performer.Perform(action); err != nil {
			r.console.Warnf("could not apply action on device: %v\n", err)
			logger.Warn("apply action: %v", err)
		}
	}

	r.selected = nil
	r.state = stateBrowsing
}
