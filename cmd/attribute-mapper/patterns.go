package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"attribute-mapper/pattern"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the pattern expression language",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		renderPatterns(cmd.OutOrStdout())
	},
}

var patternExamples = []string{"int32", "?string", "[]type", "?[]?int"}

func renderPatterns(w io.Writer) {
	fmt.Fprintln(w, headerColor.Sprint("grammar"))
	fmt.Fprintln(w, `  expr := ["?"] ("[]" expr | shape)`)
	fmt.Fprintln(w)

	fmt.Fprintln(w, headerColor.Sprint("shapes"))
	for _, name := range pattern.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "  aliases: rune=int32 byte=uint8 any=object")
	fmt.Fprintln(w)

	fmt.Fprintln(w, headerColor.Sprint("examples"))
	for _, src := range patternExamples {
		expr, err := pattern.ParseExpression(src)
		if err != nil {
			panic(err)
		}

		fmt.Fprintf(w, "  %-10s %s\n", expr.String(), describe(expr))
	}
}

func describe(e pattern.Expression) string {
	var s string
	if e.Nullable {
		s = "nil or "
	}

	if e.Elem != nil {
		return s + "array of " + describe(*e.Elem)
	}

	return s + e.Kind.String()
}
