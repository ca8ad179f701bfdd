// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

const (
	// Unknown defines default public constant to use for "enum" like struct
	// comparisons when no value was defined.
	Unknown    = iota
	unknownStr = "unknown"
)

// Attribute keys handled by this package.
const (
	AttrKeyExtMap = "extmap"
	AttrKeyRTPMap = "rtpmap"
	AttrKeyFmtp   = "fmtp"
	AttrKeyRTCPFb = "rtcp-fb"
)

// Default ids for the header extensions negotiated by most endpoints.
const (
	DefExtMapValueAbsSendTime     = 1
	DefExtMapValueTransportCC     = 2
	DefExtMapValueSDESMid         = 3
	DefExtMapValueSDESRTPStreamID = 4
)

// Well-known header extension URIs.
const (
	AbsSendTimeURI     = "http://www.webrtc.org/experiments/rtp-hdrext/abs-send-time"
	TransportCCURI     = "http://www.ietf.org/id/draft-holmer-rmcat-transport-wide-cc-extensions-01"
	SDESMidURI         = "urn:ietf:params:rtp-hdrext:sdes:mid"
	SDESRTPStreamIDURI = "urn:ietf:params:rtp-hdrext:sdes:rtp-stream-id"
	AudioLevelURI      = "urn:ietf:params:rtp-hdrext:ssrc-audio-level"
)

const (
	extMapValueMin = 1
	// extMapValueMax is the upper bound accepted by existing parsers. The
	// SettingEngine may raise it up to extMapValueLimit.
	extMapValueMax   = 246
	extMapValueLimit = 256
)
