// Package errs wraps cockroachdb/errors so call sites never import it
// directly. Mark is the workhorse: use cases mark infrastructure errors
// with their sentinel so handlers can match with errors.Is while the
// original cause stays attached for logging.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
