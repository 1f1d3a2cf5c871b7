package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLogMailer_SendPasswordReset(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	m := NewLogMailer(logger)
	err := m.SendPasswordReset(context.Background(), "alice@example.com", "tok-123")
	if err != nil {
		t.Fatalf("SendPasswordReset err=%v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "alice@example.com") {
		t.Errorf("log output missing recipient: %s", out)
	}
	if !strings.Contains(out, "tok-123") {
		t.Errorf("log output missing token: %s", out)
	}
}

func TestLogMailer_CanceledContext(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	m := NewLogMailer(logger)

	// Drain the burst so the limiter must wait, then cancel.
	for i := 0; i < 3; i++ {
		_ = m.SendPasswordReset(context.Background(), "a@example.com", "t")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := m.SendPasswordReset(ctx, "a@example.com", "t"); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
