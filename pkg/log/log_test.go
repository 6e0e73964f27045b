package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf, logrus.InfoLevel)

	l.Debugf("hidden %d", 1)
	l.Infof("loaded %s", "tetris")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %q", out)
	}
	if !strings.Contains(out, "msg=loaded tetris") {
		t.Errorf("expected info message, got %q", out)
	}
}
