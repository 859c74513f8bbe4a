package testutils

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/benoitkugler/fontvalues/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// LogCapture redirects the warning logger to an in memory buffer,
// until Logs or AssertNoLogs is called.
type LogCapture struct {
	buf    bytes.Buffer
	output io.Writer
	flags  int
	prefix string
}

// CaptureLogs starts capturing the emitted warnings.
func CaptureLogs() *LogCapture {
	capt := new(LogCapture)
	capt.output = logger.WarningLogger.Writer()
	capt.flags = logger.WarningLogger.Flags()
	capt.prefix = logger.WarningLogger.Prefix()
	logger.WarningLogger.SetFlags(0)
	logger.WarningLogger.SetPrefix("")
	logger.WarningLogger.SetOutput(&capt.buf)
	return capt
}

// Logs stops the capture and returns the warnings, one per line.
func (c *LogCapture) Logs() []string {
	logger.WarningLogger.SetFlags(c.flags)
	logger.WarningLogger.SetPrefix(c.prefix)
	logger.WarningLogger.SetOutput(c.output)
	s := strings.TrimSuffix(c.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// AssertNoLogs stops the capture and fails if a warning was emitted.
func (c *LogCapture) AssertNoLogs(t *testing.T) {
	t.Helper()
	if logs := c.Logs(); len(logs) != 0 {
		t.Fatalf("expected no warning, got %v", logs)
	}
}
