// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Error returns the error status of the Manager. We return an empty string if
// there are no errors.
func (b *Manager) Error() string {
	if b.error == nil {
		return ""
	}
	return b.error.Error()
}

// Errored returns true if there was an error during a computation.
func (b *Manager) Errored() bool {
	return b.error != nil
}

// Err returns the first error recorded by the Manager, or nil. The result wraps
// one of the sentinel errors of the package, such as ErrInvalidNode.
func (b *Manager) Err() error {
	return b.error
}

// seterror records a failure and returns Invalid so that it can be used
// directly in a return statement. Only the first error is kept; the following
// ones are most often consequences of the first and are only logged.
func (b *Manager) seterror(cause error, format string, a ...interface{}) Node {
	err := errors.Wrapf(cause, format, a...)
	if _DEBUG {
		b.log.WithError(err).Panic("precondition violation")
	}
	if b.error != nil {
		b.log.WithFields(logrus.Fields{"first": b.error}).WithError(err).Debug("error status already set")
		return Invalid
	}
	b.error = err
	b.log.WithError(err).Debug("error status set")
	return Invalid
}

// checkptr returns an error if n is not a handle of the arena.
func (b *Manager) checkptr(n Node) error {
	if n < 0 || int(n) >= len(b.nodes) {
		return errors.Wrapf(ErrInvalidNode, "handle %d out of range [0..%d)", n, len(b.nodes))
	}
	return nil
}
