package reporter

import (
	"fmt"
	"io"
	"os"
)

// ActionsReporter emits the computed version as GitHub Actions step
// outputs, appending key=value lines to the file named by GITHUB_OUTPUT.
// Outside a workflow run (variable unset) the lines go to stdout so the
// format stays usable for shell capture.
type ActionsReporter struct{}

func (r *ActionsReporter) Report(s Summary) error {
	var out io.Writer = os.Stdout
	if path := os.Getenv("GITHUB_OUTPUT"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open step output file %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	_, err := fmt.Fprintf(out, "version=%s\ntag=%s\nprevious=%s\ncreated=%t\n",
		s.Version, s.TagName, s.Previous, s.Created)
	return err
}
