package sysenv

import (
	"errors"
	"syscall"
	"unicode"
	"unicode/utf8"
)

// Strerror describes err the way perror(3) would: the system error text of
// the underlying errno, capitalized. Errors without an errno are returned
// unchanged.
func Strerror(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return err.Error()
	}

	msg := errno.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
