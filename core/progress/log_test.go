package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestSessionLogger_roundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLinesRecorder(&buf).NewSession()
	logger.Now = fixedClock

	require.NoError(t, logger.LessonViewed(3, "Making Decisions"))
	require.NoError(t, logger.DrillRun("permscan", 0))
	require.NoError(t, logger.ScriptGraded("greet", 2, 3))
	require.NoError(t, logger.ShellStarted())

	// One JSON object per line.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)

	var events []*Event
	require.NoError(t, ReadLog(&buf, func(e *Event) {
		events = append(events, e)
	}))
	require.Len(t, events, 4)

	for _, e := range events {
		assert.Equal(t, fixedClock().UnixMicro(), e.TimestampMicros)
		assert.NotEmpty(t, e.SessionID)
		assert.Equal(t, events[0].SessionID, e.SessionID)
	}

	require.NotNil(t, events[0].LessonViewed)
	assert.Equal(t, 3, events[0].LessonViewed.Number)
	assert.Equal(t, "Making Decisions", events[0].LessonViewed.Title)

	require.NotNil(t, events[1].DrillRun)
	assert.Equal(t, "permscan", events[1].DrillRun.Name)
	assert.Equal(t, 0, events[1].DrillRun.ExitStatus)

	require.NotNil(t, events[2].ScriptGraded)
	assert.Equal(t, "greet", events[2].ScriptGraded.Exercise)
	assert.Equal(t, 2, events[2].ScriptGraded.Passed)
	assert.Equal(t, 3, events[2].ScriptGraded.Total)

	require.NotNil(t, events[3].ShellStarted)
}

func TestReadLog_empty(t *testing.T) {
	called := false
	require.NoError(t, ReadLog(strings.NewReader(""), func(*Event) { called = true }))
	assert.False(t, called)
}

func TestReadLog_corrupt(t *testing.T) {
	err := ReadLog(strings.NewReader("not json\n"), func(*Event) {})
	assert.Error(t, err)
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger().NewSession()
	assert.NoError(t, logger.DrillRun("anything", 1))
}
