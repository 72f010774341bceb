package reporter

import (
	"encoding/json"
	"io"
	"os"
)

type JSONReporter struct {
	// Out defaults to stdout.
	Out io.Writer
}

func (r *JSONReporter) Report(s Summary) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
