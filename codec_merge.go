// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

import (
	"slices"
	"strings"

	"github.com/pion/sdpattr/internal/fmtp"
)

// codecMergeRules reconciles the scalar fields of a saved codec with a
// codec parsed from another attribute line. Every rule only fills a field
// that still holds its zero value. New scalar fields need a rule here.
var codecMergeRules = []func(saved *Codec, codec Codec){ //nolint:gochecknoglobals
	func(saved *Codec, codec Codec) { fillEmpty(&saved.PayloadType, codec.PayloadType) },
	func(saved *Codec, codec Codec) { fillEmpty(&saved.Name, codec.Name) },
	func(saved *Codec, codec Codec) { fillEmpty(&saved.ClockRate, codec.ClockRate) },
	func(saved *Codec, codec Codec) { fillEmpty(&saved.EncodingParameters, codec.EncodingParameters) },
	func(saved *Codec, codec Codec) { fillEmpty(&saved.Fmtp, codec.Fmtp) },
}

func fillEmpty[T comparable](dst *T, src T) {
	var zero T
	if *dst == zero {
		*dst = src
	}
}

// MergeCodecs adds codec to codecs. If a codec with the same payload type is
// already present the known fields are kept, missing ones are taken from
// codec and the rtcp-fb entries of codec are appended.
func MergeCodecs(codec Codec, codecs map[uint8]Codec) {
	saved, ok := codecs[codec.PayloadType]
	if !ok {
		codec.RTCPFeedback = slices.Clip(codec.RTCPFeedback)
		codecs[codec.PayloadType] = codec
		return
	}

	for _, rule := range codecMergeRules {
		rule(&saved, codec)
	}
	saved.RTCPFeedback = append(saved.RTCPFeedback, codec.RTCPFeedback...)

	codecs[codec.PayloadType] = saved
}

// CodecsMatch reports whether got satisfies wanted. Empty fields of wanted
// match anything, names are compared case-insensitively and fmtp lines by
// their parameter set.
func CodecsMatch(wanted, got Codec) bool {
	if wanted.Name != "" && !strings.EqualFold(wanted.Name, got.Name) {
		return false
	}
	if wanted.ClockRate != 0 && wanted.ClockRate != got.ClockRate {
		return false
	}
	if wanted.EncodingParameters != "" && wanted.EncodingParameters != got.EncodingParameters {
		return false
	}
	if wanted.Fmtp != "" && !fmtp.Equivalent(wanted.Fmtp, got.Fmtp) {
		return false
	}

	return true
}
