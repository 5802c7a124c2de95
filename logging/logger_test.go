package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	// Test creating a logger
	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}

	// Verify it's a logrus.Entry with the component field
	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}
}

func TestNewLoggerSingleton(t *testing.T) {
	first := NewLogger("singleton-check")
	second := NewLogger("singleton-check")
	if first != second {
		t.Error("Expected the same entry for repeated NewLogger calls")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	Reset()
	t.Setenv("XPANES_LOG_LEVEL", "debug")

	logger := NewLogger("level-check")
	if logger.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", logger.Logger.GetLevel())
	}

	Reset()
	t.Setenv("XPANES_LOG_LEVEL", "not-a-level")

	logger = NewLogger("level-fallback")
	if logger.Logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected fallback to info level, got %v", logger.Logger.GetLevel())
	}
}

func TestNewLoggerDebugEnv(t *testing.T) {
	Reset()
	t.Setenv("XPANES_DEBUG", "1")

	logger := NewLogger("debug-env")
	if logger.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected XPANES_DEBUG=1 to force debug level, got %v", logger.Logger.GetLevel())
	}
}

func TestLoggerOutput(t *testing.T) {
	// Create a buffer to capture output
	var buf bytes.Buffer

	// Create a new logger and redirect output to buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{})

	entry := logger.WithField("component", "test")
	entry.Info("Test message")

	output := buf.String()

	// Check that output contains expected elements
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected output to contain [INFO], got: %s", output)
	}
	if !strings.Contains(output, "[test]") {
		t.Errorf("Expected output to contain [test], got: %s", output)
	}
	if !strings.Contains(output, "Test message") {
		t.Errorf("Expected output to contain 'Test message', got: %s", output)
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name      string
		formatter TextFormatter
		entry     *logrus.Entry
		want      []string // Parts that should be in the output
		notWant   []string // Parts that should NOT be in the output
	}{
		{
			name:      "default format",
			formatter: TextFormatter{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "test message",
				Data: logrus.Fields{
					"component": "test-component",
					"key1":      "value1",
				},
			},
			want: []string{"[INFO]", "[test-component]", "test message", "key1=value1"},
		},
		{
			name:      "warning level is shortened",
			formatter: TextFormatter{DisableTimestamp: true},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "careful",
				Data:    logrus.Fields{},
			},
			want:    []string{"[WARN]", "careful"},
			notWant: []string{"[WARNING]"},
		},
		{
			name:      "fields are sorted",
			formatter: TextFormatter{DisableTimestamp: true},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "plan",
				Data: logrus.Fields{
					"panes": 4,
					"args":  3,
				},
			},
			want: []string{"args=3 panes=4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.formatter.Format(tt.entry)
			if err != nil {
				t.Fatalf("Format returned error: %v", err)
			}
			got := string(out)
			for _, part := range tt.want {
				if !strings.Contains(got, part) {
					t.Errorf("Expected output to contain %q, got: %s", part, got)
				}
			}
			for _, part := range tt.notWant {
				if strings.Contains(got, part) {
					t.Errorf("Expected output to not contain %q, got: %s", part, got)
				}
			}
			if !strings.HasSuffix(got, "\n") {
				t.Error("Expected output to end with a newline")
			}
		})
	}
}
