package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"attribute-mapper/internal/diagnostic"
	"attribute-mapper/internal/replay"
)

func init() {
	color.NoColor = true
}

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	renderResult(&buf, replay.Result{
		Application: "full",
		Recorder:    "rec1",
		Arguments: []replay.Outcome{
			{Category: replay.CategoryConstructor, Parameter: "size", Binding: "normal", Syntax: "3", Recorded: true},
			{Category: replay.CategoryNamed, Parameter: "Weight", Syntax: "300", Error: "overflow"},
			{Category: replay.CategoryNamed, Parameter: "Other", Syntax: "1"},
		},
		Record: &replay.Record{
			Attribute: "Shape",
			Arguments: map[string]replay.Argument{
				"size": {Value: 3},
				"tags": {Value: []any{"a", nil}},
			},
		},
	})

	assert.Equal(t, `full ok [rec1] 1/3 recorded
  + constructor size (normal) = 3
  ! named Weight = 300: overflow
  - named Other = 1
  arguments:
    size: 3
    tags: ["a", nil]
`, buf.String())
}

func TestRenderResult_Failed(t *testing.T) {
	var buf bytes.Buffer
	renderResult(&buf, replay.Result{Application: "empty", Recorder: "rec2", Error: "incomplete record"})

	assert.Equal(t, "empty failed [rec2] 0/0 recorded\n  incomplete record\n", buf.String())
}

func TestRenderPatterns(t *testing.T) {
	var buf bytes.Buffer
	renderPatterns(&buf)

	out := buf.String()
	assert.Contains(t, out, "uint16")
	assert.Contains(t, out, "?[]?int")
	assert.Contains(t, out, "nil or array of nil or int")
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, replay.Summary{
		Attribute:    "Shape",
		Comparer:     "ordinal",
		Constructor:  []string{"size", "fill"},
		Applications: 2,
	}, true)

	assert.Contains(t, buf.String(), "constructor: size, fill")
	assert.Contains(t, buf.String(), "name matching: ordinal")
}

func TestRenderDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	renderDiagnostics(&buf, []diagnostic.Diagnostic{
		{Severity: diagnostic.Error, Code: "missing-argument", Message: "required argument is not supplied", Application: "short", Parameter: "size"},
		{Severity: diagnostic.Info, Code: "no-applications", Message: "fixture declares no applications"},
	})

	assert.Equal(t, `error [short] size: required argument is not supplied (missing-argument)
info fixture declares no applications (no-applications)
`, buf.String())
}
