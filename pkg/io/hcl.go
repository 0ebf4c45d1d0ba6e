package io

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/matzehuels/calgrid/pkg/calendar"
	"github.com/matzehuels/calgrid/pkg/errors"
)

type hclFile struct {
	Events []hclEvent `hcl:"event,block"`
}

type hclEvent struct {
	Title     string  `hcl:"title,label"`
	Start     string  `hcl:"start"`
	End       string  `hcl:"end"`
	Certainty *string `hcl:"certainty,optional"`
}

// ReadHCL decodes event blocks from HCL source:
//
//	event "Offsite" {
//	  start     = "2024-01-01"
//	  end       = "2024-01-03"
//	  certainty = "Possible"
//	}
//
// The filename is only used in diagnostics.
func ReadHCL(filename string, src []byte) ([]calendar.Event, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, diags, "parse hcl")
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, diags, "decode hcl")
	}

	raws := make([]rawEvent, len(parsed.Events))
	for i, ev := range parsed.Events {
		raws[i] = rawEvent{
			Title:     &ev.Title,
			Start:     ev.Start,
			End:       ev.End,
			Certainty: ev.Certainty,
		}
	}
	return toEvents(raws)
}
