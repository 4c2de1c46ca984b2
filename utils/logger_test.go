package utils

import (
	"bytes"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := logger.Out
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(original) })
	return &buf
}

func TestSetVerbose_And_IsVerbose(t *testing.T) {
	// save original state and restore after test
	original := IsVerbose()
	defer SetVerbose(original)

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected IsVerbose() = true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected IsVerbose() = false after SetVerbose(false)")
	}
}

func TestVerbose_SilentWhenDisabled(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)
	buf := captureOutput(t)

	SetVerbose(false)
	Verbose("test message %s %d", "arg", 42)

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestVerbose_WritesWhenEnabled(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)
	buf := captureOutput(t)

	SetVerbose(true)
	Verbose("test message %s %d", "arg", 42)

	if !strings.Contains(buf.String(), "test message arg 42") {
		t.Errorf("expected verbose message in output, got %q", buf.String())
	}
}

func TestInfo_Writes(t *testing.T) {
	buf := captureOutput(t)

	Info("test info %s", "message")
	Warn("test warn")

	out := buf.String()
	if !strings.Contains(out, "test info message") || !strings.Contains(out, "test warn") {
		t.Errorf("unexpected output %q", out)
	}
}
