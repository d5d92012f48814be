package uiautomator2

import (
	"encoding/json"
	"fmt"

	"github.com/devicelab-dev/uiscribe/pkg/core"
)

// Element represents a UI element on the device.
type Element struct {
	id     string
	client *Client
}

// ID returns the element ID.
func (e *Element) ID() string {
	return e.id
}

// FindElement finds a single element.
func (c *Client) FindElement(strategy, selector string) (*Element, error) {
	req := FindElementRequest{
		Strategy: strategy,
		Selector: selector,
	}

	data, err := c.request("POST", c.sessionPath("/element"), req)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Value struct {
			ELEMENT string `json:"ELEMENT"`
		} `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse element response: %w", err)
	}

	if resp.Value.ELEMENT == "" {
		return nil, fmt.Errorf("element not found: %s=%s", strategy, selector)
	}

	return &Element{
		id:     resp.Value.ELEMENT,
		client: c,
	}, nil
}

// FindElements finds multiple elements.
func (c *Client) FindElements(strategy, selector string) ([]*Element, error) {
	req := FindElementRequest{
		Strategy: strategy,
		Selector: selector,
	}

	data, err := c.request("POST", c.sessionPath("/elements"), req)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Value []struct {
			ELEMENT string `json:"ELEMENT"`
		} `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse elements response: %w", err)
	}

	elements := make([]*Element, len(resp.Value))
	for i, v := range resp.Value {
		elements[i] = &Element{id: v.ELEMENT, client: c}
	}
	return elements, nil
}

// Click taps the element.
func (e *Element) Click() error {
	_, err := e.client.request("POST", e.client.sessionPath("/element/"+e.id+"/click"), nil)
	return err
}

// Clear clears the element's text.
func (e *Element) Clear() error {
	_, err := e.client.request("POST", e.client.sessionPath("/element/"+e.id+"/clear"), nil)
	return err
}

// SendKeys types text into the element.
func (e *Element) SendKeys(text string) error {
	req := InputTextRequest{Text: text}
	_, err := e.client.request("POST", e.client.sessionPath("/element/"+e.id+"/value"), req)
	return err
}

// Text returns the element's text content.
func (e *Element) Text() (string, error) {
	data, err := e.client.request("GET", e.client.sessionPath("/element/"+e.id+"/text"), nil)
	if err != nil {
		return "", err
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", err
	}

	text, _ := resp.Value.(string)
	return text, nil
}

// Attribute returns an element attribute.
func (e *Element) Attribute(name string) (string, error) {
	data, err := e.client.request("GET", e.client.sessionPath("/element/"+e.id+"/attribute/"+name), nil)
	if err != nil {
		return "", err
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", err
	}

	attr, _ := resp.Value.(string)
	return attr, nil
}

// Rect returns the element's bounds.
func (e *Element) Rect() (ElementRect, error) {
	data, err := e.client.request("GET", e.client.sessionPath("/element/"+e.id+"/rect"), nil)
	if err != nil {
		return ElementRect{}, err
	}

	var resp struct {
		Value ElementRect `json:"value"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return ElementRect{}, err
	}

	return resp.Value, nil
}

// attrBool fetches a boolean attribute, treating any failure as false.
// Not every attribute exists on every node.
func (e *Element) attrBool(name string) bool {
	attr, err := e.Attribute(name)
	return err == nil && attr == "true"
}

// Info assembles the full attribute map of the element. Text and class
// name are mandatory: a failure fetching either is an inspection
// failure and the element should be skipped by the caller.
func (e *Element) Info() (*core.NodeInfo, error) {
	text, err := e.Text()
	if err != nil {
		return nil, core.ErrInspectionFailed.WithCause(fmt.Errorf("read text: %w", err))
	}

	className, err := e.Attribute("className")
	if err != nil {
		return nil, core.ErrInspectionFailed.WithCause(fmt.Errorf("read className: %w", err))
	}

	info := &core.NodeInfo{
		Text:      text,
		ClassName: className,
	}

	// Remaining attributes are best-effort.
	if id, err := e.Attribute("resourceId"); err == nil {
		info.ResourceID = id
	}
	if desc, err := e.Attribute("contentDescription"); err == nil {
		info.ContentDescription = desc
	}
	if rect, err := e.Rect(); err == nil {
		info.Bounds = core.Bounds{
			Left:   rect.X,
			Top:    rect.Y,
			Right:  rect.X + rect.Width,
			Bottom: rect.Y + rect.Height,
		}
	}

	info.Clickable = e.attrBool("clickable")
	info.LongClickable = e.attrBool("longClickable")
	info.Scrollable = e.attrBool("scrollable")
	info.Checkable = e.attrBool("checkable")
	info.Checked = e.attrBool("checked")
	info.Editable = e.attrBool("editable")
	info.Visible = e.attrBool("displayed")

	return info, nil
}
