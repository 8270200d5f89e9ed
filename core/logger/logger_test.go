package logger

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTime() time.Time {
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

func ExampleNewJsonLinesLogRecorder() {
	buf := &bytes.Buffer{}
	logger := NewJsonLinesLogRecorder(buf)
	logger.now = fixedTime

	session := &SessionLogger{logger: logger, sessionID: "1234"}
	session.Record(RunCommand("ls -l", 0, nil))
	session.Record(ParseError("-l", errors.New("expected command, got: -l")))

	fmt.Print(buf.String())

	// Output: {"timestamp_micros":1136171045000000,"session_id":"1234","type":"run_command","command":"ls -l","exit_code":0}
	// {"timestamp_micros":1136171045000000,"session_id":"1234","type":"parse_error","command":"-l","exit_code":0,"error":"expected command, got: -l"}
}

func TestNewSession(t *testing.T) {
	logger := NewNopLogger()
	a, b := logger.NewSession(), logger.NewSession()

	assert.NotEmpty(t, a.SessionID())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
	assert.NoError(t, a.Record(Interrupt("interrupt")))
}

func TestReport(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewJsonLinesLogRecorder(buf)

	first := logger.NewSession()
	first.Record(RunCommand("ls -l", 0, nil))
	first.Record(RunCommand("ls ", 2, errors.New("ls: exit status 2")))
	first.Record(ParseError("-l", errors.New("expected command, got: -l")))
	first.Record(HistorySaved("/home/user/.msh_history", nil))

	second := logger.NewSession()
	second.Record(RunCommand("cd ", 1, errors.New("no path provided")))
	second.Record(ExecError("cd ", errors.New("no path provided")))
	second.Record(Interrupt("interrupt"))

	report := NewReport()
	require.NoError(t, ReadJSONLinesLog(buf, report.Update))

	assert.Equal(t, 7, report.Events)
	assert.Equal(t, 2, report.Sessions)
	assert.Equal(t, 1, report.Interrupts)
	assert.Equal(t, []string{"cd", "ls"}, report.CommandNames())
	assert.Equal(t, 2, report.Commands["ls"].Runs)
	assert.Equal(t, 1, report.Commands["ls"].Failures)
	assert.Equal(t, map[string]int{"ls: exit status 2": 1}, report.Commands["ls"].Errors)
	assert.Equal(t, map[string]int{"expected command, got: -l": 1}, report.ParseErrors)
	assert.Equal(t, map[string]int{"no path provided": 1}, report.ExecErrors)
}

func TestReadJSONLinesLog_invalid(t *testing.T) {
	err := ReadJSONLinesLog(bytes.NewBufferString("{not json"), func(*Event) {})
	assert.Error(t, err)
}
