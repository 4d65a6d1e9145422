package main

import (
	"errors"

	"factorish.dev/internal/sim/world"
)

type multiTickLogger []world.TickLogger

func (m multiTickLogger) WriteTick(entry world.TickLogEntry) error {
	var errs []error
	for _, l := range m {
		errs = append(errs, l.WriteTick(entry))
	}
	return errors.Join(errs...)
}

type multiAuditLogger []world.AuditLogger

func (m multiAuditLogger) WriteAudit(entry world.AuditEntry) error {
	var errs []error
	for _, l := range m {
		errs = append(errs, l.WriteAudit(entry))
	}
	return errors.Join(errs...)
}
