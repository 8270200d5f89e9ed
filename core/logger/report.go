package logger

import (
	"encoding/json"
	"io"
	"sort"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(e *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var e Event
		if err := decoder.Decode(&e); err != nil {
			return err
		}
		handler(&e)
	}
	return nil
}

// Report summarizes an event log.
type Report struct {
	Events     int `json:"events"`
	Sessions   int `json:"sessions"`
	Interrupts int `json:"interrupts"`

	// Commands counts executions by command name.
	Commands map[string]*CommandStats `json:"commands"`
	// ParseErrors counts unparseable input by error message.
	ParseErrors map[string]int `json:"parse_errors"`
	// ExecErrors counts errors that aren't tied to a process exit status.
	ExecErrors map[string]int `json:"exec_errors"`

	sessions map[string]bool
}

// CommandStats holds the outcomes of a single command.
type CommandStats struct {
	Runs     int            `json:"runs"`
	Failures int            `json:"failures"`
	Errors   map[string]int `json:"errors,omitempty"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		Commands:    make(map[string]*CommandStats),
		ParseErrors: make(map[string]int),
		ExecErrors:  make(map[string]int),
		sessions:    make(map[string]bool),
	}
}

// Update adds the event to the report.
func (r *Report) Update(e *Event) {
	r.Events++
	if e.SessionID != "" && !r.sessions[e.SessionID] {
		r.sessions[e.SessionID] = true
		r.Sessions++
	}

	switch e.Type {
	case EventRunCommand:
		name := commandName(e.Command)
		stats, ok := r.Commands[name]
		if !ok {
			stats = &CommandStats{Errors: make(map[string]int)}
			r.Commands[name] = stats
		}
		stats.Runs++
		if e.Error != "" {
			stats.Failures++
			stats.Errors[e.Error]++
		}
	case EventExecError:
		r.ExecErrors[e.Error]++
	case EventParseError:
		r.ParseErrors[e.Error]++
	case EventInterrupt:
		r.Interrupts++
	}
}

// CommandNames returns the names of all commands in the report, sorted.
func (r *Report) CommandNames() []string {
	var names []string
	for name := range r.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// commandName returns the first word of a rendered command.
func commandName(rendered string) string {
	for i, c := range rendered {
		if c == ' ' {
			return rendered[:i]
		}
	}
	return rendered
}
