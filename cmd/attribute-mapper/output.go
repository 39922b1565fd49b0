package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"

	"attribute-mapper/internal/diagnostic"
	"attribute-mapper/internal/replay"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	missColor   = color.New(color.FgYellow)
	failColor   = color.New(color.FgRed, color.Bold)
	infoColor   = color.New(color.FgBlue)
)

func renderResults(w io.Writer, results []replay.Result) {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}

		renderResult(w, res)
	}
}

func renderResult(w io.Writer, res replay.Result) {
	status := okColor.Sprint("ok")
	if !res.OK() {
		status = failColor.Sprint("failed")
	}

	fmt.Fprintf(w, "%s %s [%s] %d/%d recorded\n",
		headerColor.Sprint(res.Application), status, res.Recorder, res.Recorded(), len(res.Arguments))

	for _, o := range res.Arguments {
		fmt.Fprintf(w, "  %s %s %s", outcomeMark(o), o.Category, o.Parameter)
		if o.Binding != "" {
			fmt.Fprintf(w, " (%s)", o.Binding)
		}

		if o.Syntax != "" {
			fmt.Fprintf(w, " = %s", o.Syntax)
		}

		if o.Error != "" {
			fmt.Fprintf(w, ": %s", failColor.Sprint(o.Error))
		}

		fmt.Fprintln(w)
	}

	if res.Error != "" {
		fmt.Fprintf(w, "  %s\n", failColor.Sprint(res.Error))
		return
	}

	renderSection(w, "type arguments", res.Record.TypeArguments)
	renderSection(w, "arguments", res.Record.Arguments)
	renderSection(w, "named", res.Record.Named)
}

func outcomeMark(o replay.Outcome) string {
	switch {
	case o.Recorded:
		return okColor.Sprint("+")
	case o.Error != "":
		return failColor.Sprint("!")
	default:
		return missColor.Sprint("-")
	}
}

func renderSection(w io.Writer, title string, args map[string]replay.Argument) {
	if len(args) == 0 {
		return
	}

	fmt.Fprintf(w, "  %s:\n", title)
	for _, name := range slices.Sorted(maps.Keys(args)) {
		fmt.Fprintf(w, "    %s: %s\n", name, formatValue(args[name].Value))
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = formatValue(e)
		}

		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

func renderSummary(w io.Writer, s replay.Summary, ok bool) {
	status := okColor.Sprint("ok")
	if !ok {
		status = failColor.Sprint("failed")
	}

	fmt.Fprintf(w, "%s %s\n", headerColor.Sprint(s.Attribute), status)
	fmt.Fprintf(w, "  name matching: %s\n", s.Comparer)
	fmt.Fprintf(w, "  type parameters: %d\n", len(s.TypeParameters))
	fmt.Fprintf(w, "  constructor: %s\n", strings.Join(s.Constructor, ", "))
	fmt.Fprintf(w, "  named: %s\n", strings.Join(s.Named, ", "))
	fmt.Fprintf(w, "  applications: %d\n", s.Applications)
}

func renderDiagnostics(w io.Writer, ds []diagnostic.Diagnostic) {
	for _, d := range ds {
		fmt.Fprintf(w, "%s %s\n", severityColor(d.Severity).Sprint(d.Severity), d)
	}
}

func severityColor(s diagnostic.Severity) *color.Color {
	switch s {
	case diagnostic.Error:
		return failColor
	case diagnostic.Warning:
		return missColor
	default:
		return infoColor
	}
}
