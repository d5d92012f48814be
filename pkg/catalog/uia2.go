package catalog

import (
	"github.com/devicelab-dev/uiscribe/pkg/core"
	"github.com/devicelab-dev/uiscribe/pkg/uiautomator2"
)

// UIA2Source adapts a uiautomator2.Client to the Querier interface.
type UIA2Source struct {
	Client *uiautomator2.Client
}

// QueryByCapability queries elements by interaction predicate.
func (s *UIA2Source) QueryByCapability(capability core.Capability) ([]Node, error) {
	elements, err := s.Client.QueryByCapability(capability)
	if err != nil {
		return nil, err
	}
	return toNodes(elements), nil
}

// QueryByClass queries elements by class name.
func (s *UIA2Source) QueryByClass(className string) ([]Node, error) {
	elements, err := s.Client.QueryByClass(className)
	if err != nil {
		return nil, err
	}
	return toNodes(elements), nil
}

func toNodes(elements []*uiautomator2.Element) []Node {
	nodes := make([]Node, len(elements))
	for i, e := range elements {
		nodes[i] = e
	}
	return nodes
}
