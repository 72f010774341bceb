package reporter

import (
	"fmt"
	"io"
	"os"
)

type TextReporter struct {
	// Out defaults to stdout.
	Out io.Writer
}

func (r *TextReporter) Report(s Summary) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	previous := s.Previous
	if previous == "" {
		previous = "(none)"
	}
	fmt.Fprintf(out, "latest release found: %s\n", previous)
	fmt.Fprintf(out, "next version: %s (channel %s, base %s)\n", s.TagName, s.Channel, s.Base)

	switch {
	case s.DryRun:
		fmt.Fprintln(out, "dry-run mode: no tag created")
	case s.Created:
		fmt.Fprintf(out, "tag %s created in %s\n", s.TagName, s.Repo)
	}
	return nil
}
