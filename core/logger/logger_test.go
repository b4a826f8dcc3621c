package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerKVOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	var lv slog.LevelVar
	h := newHandler(&lv, formatKV, buf)
	ctx := WithRID(Background(), "42:9:7")

	log := slog.New(h).With("component", "tg")
	LogEvent(ctx, log, slog.LevelInfo, "test.event",
		slog.String("status", "ok"),
	)

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log line")
	}
	for _, want := range []string{"component=tg", "event=test.event", "status=ok", "rid=" + CompactRID("42:9:7")} {
		if !strings.Contains(line, want) {
			t.Fatalf("missing %q in %s", want, line)
		}
	}
}

func TestHandlerJSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	var lv slog.LevelVar
	h := newHandler(&lv, formatJSON, buf)

	log := slog.New(h).With("component", "db")
	LogEvent(Background(), log, slog.LevelError, "db.connect",
		slog.String("status", "fail"),
		slog.String("err", "boom"),
	)

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "{") {
		t.Fatalf("expected JSON, got %s", line)
	}
	for _, want := range []string{`"level":"ERROR"`, `"component":"db"`, `"event":"db.connect"`, `"err":"boom"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("missing %q in %s", want, line)
		}
	}
}

func TestLogEventCarriesContextMeta(t *testing.T) {
	buf := &bytes.Buffer{}
	var lv slog.LevelVar
	h := newHandler(&lv, formatKV, buf)

	ctx := WithHandler(Background(), "balance")
	ctx = WithUpdateMeta(ctx, 7, 99, 42)

	LogEvent(ctx, slog.New(h), slog.LevelInfo, "handler.handled",
		slog.Int("update_id", UpdateIDFrom(ctx)),
		slog.Int64("user_id", UserIDFrom(ctx)),
		slog.Int64("chat_id", ChatIDFrom(ctx)),
	)

	line := strings.TrimSpace(buf.String())
	for _, want := range []string{"handler=balance", "update_id=7", "user_id=99", "chat_id=42"} {
		if !strings.Contains(line, want) {
			t.Fatalf("missing %q in %s", want, line)
		}
	}
}

func TestCompactRID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"123:456:789", "3f.co.lx"},
		{"not-a-rid", "not-a-rid"},
		{"1:2", "1:2"},
	}
	for _, tt := range tests {
		if got := CompactRID(tt.in); got != tt.want {
			t.Fatalf("CompactRID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeLimit(t *testing.T) {
	if got := SanitizeLimit("abc\x00def", 10); got != "abcdef" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeLimit("abcdef", 3); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeLimit("abc", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}
