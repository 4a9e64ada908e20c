package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
)

type recordingLogger struct {
	errorLines []string
}

func (l *recordingLogger) Debugf(string, ...interface{}) {}
func (l *recordingLogger) Infof(string, ...interface{}) {}
func (l *recordingLogger) Warnf(string, ...interface{}) {}
func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.errorLines = append(l.errorLines, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Fatalf(string, ...interface{}) {}
func (l *recordingLogger) WithField(string, interface{}) logger.Logger { return l }

func TestFailLogsAndPrintsErrors(t *testing.T) {
	var out bytes.Buffer
	log := &recordingLogger{}
	m := NewMenu(MenuOptions{Prompter: NewPrompter(strings.NewReader(""), &out)}, log)

	m.fail(errors.New("car is not available"))

	if !strings.Contains(out.String(), "[ERROR] car is not available") {
		t.Fatalf("expected error printed to terminal, got %q", out.String())
	}
	if len(log.errorLines) != 1 || !strings.Contains(log.errorLines[0], "car is not available") {
		t.Fatalf("expected error logged once, got %v", log.errorLines)
	}
}

func TestFailCancelIsSilentInLog(t *testing.T) {
	var out bytes.Buffer
	log := &recordingLogger{}
	m := NewMenu(MenuOptions{Prompter: NewPrompter(strings.NewReader(""), &out)}, log)

	m.fail(ErrCanceled)

	if !strings.Contains(out.String(), "Operation canceled.") {
		t.Fatalf("expected cancel notice, got %q", out.String())
	}
	if len(log.errorLines) != 0 {
		t.Fatalf("cancel must not be logged as an error, got %v", log.errorLines)
	}
}
