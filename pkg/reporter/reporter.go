package reporter

// Summary describes one resolution run for presentation. Version fields
// carry the engine's returned values verbatim.
type Summary struct {
	Repo     string `json:"repo"`
	Previous string `json:"previous,omitempty"`
	Base     string `json:"base"`
	Version  string `json:"version"`
	TagName  string `json:"tag"`
	Channel  string `json:"channel"`
	DryRun   bool   `json:"dry_run"`
	Created  bool   `json:"created"`
}

type Reporter interface {
	Report(s Summary) error
}

func New(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "actions":
		return &ActionsReporter{}
	default:
		return &TextReporter{}
	}
}
