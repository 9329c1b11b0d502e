// Package progress records what the student has done as newline-delimited
// JSON events and aggregates the log into a completion report.
package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// Event is one log line. Exactly one of the typed fields is set.
type Event struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	LessonViewed *LessonViewed `json:"lesson_viewed,omitempty"`
	DrillRun     *DrillRun     `json:"drill_run,omitempty"`
	ScriptGraded *ScriptGraded `json:"script_graded,omitempty"`
	ShellStarted *ShellStarted `json:"shell_started,omitempty"`
}

// LessonViewed records a lesson being displayed.
type LessonViewed struct {
	Number int    `json:"number"`
	Title  string `json:"title,omitempty"`
}

// DrillRun records a drill invocation and how it exited.
type DrillRun struct {
	Name       string `json:"name"`
	ExitStatus int    `json:"exit_status"`
}

// ScriptGraded records a grading run of a student script.
type ScriptGraded struct {
	Exercise string `json:"exercise"`
	Passed   int    `json:"passed"`
	Total    int    `json:"total"`
}

// ShellStarted records a practice shell session.
type ShellStarted struct{}

// Recorder stores events in an external datastore.
type Recorder func(e *Event) error

// Logger captures course activity.
type Logger struct {
	Record Recorder
}

// NewJSONLinesRecorder creates a Logger that appends events as
// newline-delimited JSON objects.
func NewJSONLinesRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(e *Event) error {
			entry, err := json.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NopLogger discards all events.
func NopLogger() *Logger {
	return &Logger{Record: func(*Event) error { return nil }}
}

// NewSession creates a logger stamping a shared random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger stamps events with a session ID and timestamp.
type SessionLogger struct {
	logger    *Logger
	sessionID string

	// Now is the clock used for timestamps; nil means time.Now.
	Now func() time.Time
}

func (l *SessionLogger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *SessionLogger) record(e *Event) error {
	e.TimestampMicros = l.now().UnixMicro()
	e.SessionID = l.sessionID
	return l.logger.Record(e)
}

func (l *SessionLogger) LessonViewed(number int, title string) error {
	return l.record(&Event{LessonViewed: &LessonViewed{Number: number, Title: title}})
}

func (l *SessionLogger) DrillRun(name string, exitStatus int) error {
	return l.record(&Event{DrillRun: &DrillRun{Name: name, ExitStatus: exitStatus}})
}

func (l *SessionLogger) ScriptGraded(exercise string, passed, total int) error {
	return l.record(&Event{ScriptGraded: &ScriptGraded{Exercise: exercise, Passed: passed, Total: total}})
}

func (l *SessionLogger) ShellStarted() error {
	return l.record(&Event{ShellStarted: &ShellStarted{}})
}

// ReadLog parses a newline-delimited JSON log, calling handler per event.
func ReadLog(r io.Reader, handler func(e *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			return err
		}
		handler(&event)
	}
	return nil
}
