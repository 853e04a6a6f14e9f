package log

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&SimpleFormatter{TimestampFormat: "2006/01/02 15:04:05"})
	return &logrusLogger{entry: logrus.NewEntry(l)}, buf
}

func TestWithFieldAppendsToEveryLine(t *testing.T) {
	logger, buf := newBufferedLogger()

	derived := logger.WithField("goal_id", "a1b2")
	derived.Infof("goal accepted at (%.3f, %.3f)", 2.0, 3.0)
	derived.Infof("goal reached")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[INF] goal accepted at (2.000, 3.000) goal_id=a1b2")
	assert.Contains(t, lines[1], "[INF] goal reached goal_id=a1b2")

	// The parent logger is untouched.
	buf.Reset()
	logger.Infof("plain line")
	assert.NotContains(t, buf.String(), "goal_id")
}

func TestWithFieldsSortsKeys(t *testing.T) {
	logger, buf := newBufferedLogger()

	logger.WithFields(map[string]interface{}{
		"replaced_by": "new",
		"goal_id":     "old",
	}).Warnf("active goal displaced without preemption")

	assert.Contains(t, buf.String(), "[WAR] active goal displaced without preemption goal_id=old replaced_by=new")
}

func TestSimpleFormatterWithoutFields(t *testing.T) {
	f := &SimpleFormatter{TimestampFormat: "2006/01/02"}
	out, err := f.Format(&logrus.Entry{
		Time:    time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC),
		Level:   logrus.ErrorLevel,
		Message: "socket closed",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025/04/06 [ERR] socket closed\n", string(out))
}
