// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger logs security relevant events in a fixed shape. Events are
// always emitted at Warn or above so they survive production log levels.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Warn("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Warn("system shutdown", zap.String("event", "system_shutdown"))
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.l.Warn("authentication failure",
		zap.String("event", "authn_failure"),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

// InconsistentState flags a data integrity violation. These indicate a bug,
// not a legitimate denial, and must never be downgraded to a plain denial.
func (s *SecurityLogger) InconsistentState(subject, detail string) {
	s.l.Error("inconsistent authorization state",
		zap.String("event", "inconsistent_state"),
		zap.String("subject", subject),
		zap.String("detail", detail),
	)
}
