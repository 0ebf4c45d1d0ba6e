package io

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
)

// ReadYAML decodes a YAML event list from r: either a sequence of event
// mappings or a mapping with an "events" key. An empty document yields no
// events.
func ReadYAML(r io.Reader) ([]calendar.Event, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var raws []rawEvent
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&raws); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
		}
	case yaml.MappingNode:
		var list eventList
		if err := root.Decode(&list); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
		}
		raws = list.Events
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "decode yaml: line %d: expected a sequence or an events mapping", root.Line)
	}
	return toEvents(raws)
}
