// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package rlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	if L().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("L: default logger should be disabled")
	}
}

func TestSet(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	L().Debug("culled", "camera", "main")
	if s := buf.String(); !strings.Contains(s, "camera=main") {
		t.Fatalf("Set: record not written\nhave %q", s)
	}

	Set(nil)
	buf.Reset()
	L().Warn("dropped")
	if buf.Len() != 0 {
		t.Fatalf("Set(nil): record should be discarded\nhave %q", buf.String())
	}
}
