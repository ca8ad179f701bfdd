// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Types of ParseError
var (
	// ErrSyntax indicates a type tag that is not a single letter followed by '='.
	ErrSyntax = errors.New("sdp: invalid syntax")

	// ErrTextEncoding indicates bytes read from the stream are not valid UTF-8.
	ErrTextEncoding = errors.New("sdp: invalid text encoding")

	// ErrNumericConversion indicates an integer field could not be parsed.
	ErrNumericConversion = errors.New("sdp: invalid numeric value")

	// ErrExtMapParse indicates a malformed extmap attribute.
	ErrExtMapParse = errors.New("sdp: could not parse extmap")

	// ErrExtMapValueRange indicates an extmap value outside of the accepted range.
	ErrExtMapValueRange = errors.New("sdp: extmap value out of range")

	// ErrRtpmapParse indicates a malformed rtpmap attribute.
	ErrRtpmapParse = errors.New("sdp: could not parse rtpmap")

	// ErrFmtpParse indicates a malformed fmtp attribute.
	ErrFmtpParse = errors.New("sdp: could not parse fmtp")

	// ErrRTCPFeedbackParse indicates a malformed rtcp-fb attribute.
	ErrRTCPFeedbackParse = errors.New("sdp: could not parse rtcp-fb")
)

var (
	// ErrPayloadTypeNotFound indicates no codec is described for a payload type.
	ErrPayloadTypeNotFound = errors.New("sdp: payload type not found")

	// ErrCodecNotFound indicates no described codec matches the wanted codec.
	ErrCodecNotFound = errors.New("sdp: codec not found")

	errExtMapUnknownDirection = errors.New("unknown direction")
	errExtMapRelativeURI      = errors.New("uri is not absolute")
	errExtMapValueMax         = errors.New("sdp: extmap value limit must be between 1 and 256")
)

// ParseError is returned when an attribute or type tag can not be parsed.
// Kind is one of the exported Err sentinels of this package, Value the
// offending text and Err the underlying cause, if any.
type ParseError struct {
	Kind  error
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v `%v`: %v", e.Kind, e.Value, e.Err)
	}

	return fmt.Sprintf("%v `%v`", e.Kind, e.Value)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}

	return []error{e.Kind}
}

func newParseError(kind error, value string, cause error) *ParseError {
	return &ParseError{Kind: kind, Value: value, Err: cause}
}

func numericError(value string, cause error) *ParseError {
	return newParseError(ErrNumericConversion, value, cause)
}
