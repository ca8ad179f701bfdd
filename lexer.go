// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Reader is the byte source consumed by ReadType and ReadValue. UnreadByte
// is used to step back over the first byte of a type tag once it has been
// peeked. *bufio.Reader satisfies it.
type Reader interface {
	io.ByteScanner
	ReadBytes(delim byte) ([]byte, error)
}

// ReadType reads the two byte type tag ("a=", "m=", ...) that starts a
// line. Stray CR and LF bytes before the tag are skipped. The returned count
// is the length of the tag. End of input is reported as an empty key and a
// count of zero with a nil error.
func ReadType(r Reader) (string, int, error) {
	for {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return "", 0, nil
		} else if err != nil {
			return "", 0, err
		}

		if b == '\n' || b == '\r' {
			continue
		}

		if err = r.UnreadByte(); err != nil {
			return "", 0, err
		}

		buf, err := r.ReadBytes('=')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", 0, err
		}
		if len(buf) == 0 {
			return "", 0, nil
		}

		if !utf8.Valid(buf) {
			return "", 0, newParseError(ErrTextEncoding, fmt.Sprintf("%q", buf), nil)
		}

		key := string(buf)
		if len(key) != 2 || key[1] != '=' {
			return "", 0, newParseError(ErrSyntax, key, nil)
		}

		return key, len(buf), nil
	}
}

// ReadValue reads the rest of the current line. The value is returned with
// surrounding whitespace and the line terminator removed, the count is the
// number of bytes consumed from r.
func ReadValue(r Reader) (string, int, error) {
	line, err := r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", 0, err
	}

	if !utf8.Valid(line) {
		return "", 0, newParseError(ErrTextEncoding, fmt.Sprintf("%q", line), nil)
	}

	return strings.TrimSpace(string(line)), len(line), nil
}
