package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	savedLevel := GetLogLevel()
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLogLevel(levelName(savedLevel))
	})
	return &buf
}

func levelName(l LogLevel) string {
	for name, v := range levelNames {
		if v == l && name != "warning" {
			return name
		}
	}
	return "info"
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("info")

	msg := "[multifit] series B fitted on 100.0% of points (alpha 20%)"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(alpha 20%)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "MISSING") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t)
	if !SetLogLevel("warn") {
		t.Fatalf("warn should be a known level")
	}
	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)
	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("messages below warn leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("expected warn and error lines, got: %s", out)
	}
}

func TestSetLogLevelUnknownKeepsCurrent(t *testing.T) {
	captureLogs(t)
	SetLogLevel("error")
	if SetLogLevel("chatty") {
		t.Fatalf("unknown level accepted")
	}
	if GetLogLevel() != LevelError {
		t.Fatalf("level changed on unknown name: %v", GetLogLevel())
	}
}

func TestTimeTrackLogsAtDebug(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("debug")
	For("mfp").TimeTrack(time.Now(), "render")
	if !strings.Contains(buf.String(), "[DEBUG] [mfp] render took") {
		t.Fatalf("missing timing line: %s", buf.String())
	}
}

func TestLoggerTagsComponent(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("info")
	lg := For("dataset")
	lg.Debugf("hidden %d", 1)
	lg.Warnf("%d cell(s) read as NaN", 2)
	lg.Infof("100% plain")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %s", out)
	}
	if !strings.Contains(out, "[WARN] [dataset] 2 cell(s) read as NaN") {
		t.Fatalf("missing tagged warning: %s", out)
	}
	if !strings.Contains(out, "[INFO] [dataset] 100% plain") {
		t.Fatalf("plain message was reformatted: %s", out)
	}
}
