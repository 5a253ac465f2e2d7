// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		l := NewLogger(level)
		if l == nil {
			t.Fatalf("NewLogger(%q) returned nil", level)
		}
		if l.Security() == nil {
			t.Fatalf("NewLogger(%q) returned nil security logger", level)
		}
	}
}

func TestNewLoggerInvalidLevelFallsBack(t *testing.T) {
	l := NewLogger("invalid")
	if l == nil {
		t.Fatal("expected logger with fallback level, got nil")
	}
}

func TestNoopLoggerSecurityEvents(t *testing.T) {
	l := NewNoopLogger()

	// Must not panic on any security event.
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
	l.Security().AuthnFailure("missing token")
	l.Security().AuthzFailure("user-1", "members.approve")
	l.Security().InconsistentState("user-1", "approved membership with null role")
}
