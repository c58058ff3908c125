package log

import (
	"bytes"
	"encoding/json"
	stdlog "log"
	"strings"
	"testing"
)

func newBufferLogger(level Level, f Formatter) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(level),
		WithFormatter(f),
		WithOutput(NewWriterOutput(&buf)),
	)
	return l, &buf
}

func TestLevelGating(t *testing.T) {
	l, buf := newBufferLogger(WarnLevel, &TextFormatter{})
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("visible")
	l.Error("visible too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("below-level entries leaked: %q", out)
	}
	if !strings.Contains(out, "WARN visible") || !strings.Contains(out, "ERROR visible too") {
		t.Fatalf("expected warn and error lines, got %q", out)
	}
}

func TestTextFormatterFields(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel, &TextFormatter{})
	l.Info("generated", F("count", 3), F("format", "canonical"))

	out := buf.String()
	if !strings.Contains(out, "count=3") || !strings.Contains(out, "format=canonical") {
		t.Fatalf("fields missing: %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel, &JSONFormatter{})
	l.Info("parsed", F("length", 26))

	var obj map[string]any
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if obj["msg"] != "parsed" || obj["level"] != "INFO" {
		t.Fatalf("unexpected object: %v", obj)
	}
	if obj["length"] != float64(26) {
		t.Fatalf("field missing: %v", obj)
	}
}

func TestWithCarriesFields(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel, &TextFormatter{})
	l.With(F("stream", "a")).Info("tick")

	if !strings.Contains(buf.String(), "stream=a") {
		t.Fatalf("derived field missing: %q", buf.String())
	}
}

func TestSetLevelAffectsDerived(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel, &TextFormatter{})
	derived := l.WithComponent("cli")
	l.SetLevel(ErrorLevel)
	derived.Info("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("derived logger ignored SetLevel: %q", buf.String())
	}
	if got := derived.GetLevel(); got != ErrorLevel {
		t.Fatalf("GetLevel = %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": DebugLevel,
		"INFO":  InfoLevel,
		"Warn":  WarnLevel,
		"error": ErrorLevel,
		"fatal": FatalLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, err := ParseLevel(""); err == nil {
		t.Fatalf("expected error for empty level")
	}
}

func TestRedirectStdLog(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel, &TextFormatter{})
	prevWriter := stdlog.Writer()
	prevFlags := stdlog.Flags()
	RedirectStdLog(l)
	t.Cleanup(func() {
		stdlog.SetOutput(prevWriter)
		stdlog.SetFlags(prevFlags)
	})

	stdlog.Print("from stdlib")
	if !strings.Contains(buf.String(), "from stdlib") {
		t.Fatalf("stdlib log not redirected: %q", buf.String())
	}
}
