package logger

// EventType names the kind of an Event.
type EventType string

const (
	// EventRunCommand is recorded for every command that was executed.
	EventRunCommand EventType = "run_command"
	// EventParseError is recorded for input that couldn't be parsed.
	EventParseError EventType = "parse_error"
	// EventExecError is recorded for commands that failed to execute.
	EventExecError EventType = "exec_error"
	// EventInterrupt is recorded when the shell is interrupted.
	EventInterrupt EventType = "interrupt"
	// EventHistorySaved is recorded when the session history is persisted.
	EventHistorySaved EventType = "history_saved"
)

// Event is a single entry in the event log.
type Event struct {
	TimestampMicros int64     `json:"timestamp_micros"`
	SessionID       string    `json:"session_id,omitempty"`
	Type            EventType `json:"type"`

	// Command is the rendered command or raw input line.
	Command string `json:"command,omitempty"`
	// ExitCode is the status of a run command.
	ExitCode int `json:"exit_code"`
	// Error holds the error message, if any.
	Error string `json:"error,omitempty"`
}

// RunCommand creates an event for an executed command.
func RunCommand(cmd string, exitCode int, err error) *Event {
	return &Event{Type: EventRunCommand, Command: cmd, ExitCode: exitCode, Error: errString(err)}
}

// ParseError creates an event for a line that couldn't be parsed.
func ParseError(line string, err error) *Event {
	return &Event{Type: EventParseError, Command: line, Error: errString(err)}
}

// ExecError creates an event for a command that returned an error.
func ExecError(cmd string, err error) *Event {
	return &Event{Type: EventExecError, Command: cmd, ExitCode: 1, Error: errString(err)}
}

// Interrupt creates an event for an interrupt signal.
func Interrupt(signal string) *Event {
	return &Event{Type: EventInterrupt, Command: signal}
}

// HistorySaved creates an event for a history save, err is set if it failed.
func HistorySaved(path string, err error) *Event {
	return &Event{Type: EventHistorySaved, Command: path, Error: errString(err)}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
