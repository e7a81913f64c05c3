package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches target, including sentinels attached with
// Mark. Marks are not part of the unwrap chain, so the standard library's
// errors.Is cannot see them; callers switching on marked sentinels must use
// this instead.
func Is(err, target error) bool {
	return cr.Is(err, target)
}
