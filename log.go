// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package rp

import (
	"log/slog"

	"github.com/gviegas/rp/internal/rlog"
)

// SetLogger configures the logger used by rp and the
// driver packages. By default nothing is logged.
// Passing nil restores the default.
//
// Levels:
//   - [slog.LevelDebug]: per-camera diagnostics (culling skips, passes)
//   - [slog.LevelInfo]: lifecycle events (driver opened, error material created)
//   - [slog.LevelWarn]: non-fatal issues (missing error shader)
func SetLogger(l *slog.Logger) { rlog.Set(l) }

// Logger returns the current logger.
func Logger() *slog.Logger { return rlog.L() }
