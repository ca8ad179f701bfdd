// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pion/sdpattr/internal/fmtp"
)

// Codec represents a codec described by the rtpmap, fmtp and rtcp-fb
// attributes sharing one payload type.
type Codec struct {
	PayloadType        uint8
	Name               string
	ClockRate          uint32
	EncodingParameters string
	Fmtp               string
	RTCPFeedback       []string
}

func (c Codec) String() string {
	return fmt.Sprintf("%d %s/%d/%s (%s) [%s]",
		c.PayloadType,
		c.Name,
		c.ClockRate,
		c.EncodingParameters,
		c.Fmtp,
		strings.Join(c.RTCPFeedback, ", "),
	)
}

// RTCPFeedback signals the connection to use additional RTCP packet types.
// https://draft.ortc.org/#dom-rtcrtcpfeedback
type RTCPFeedback struct {
	// Type is the type of feedback.
	// valid: ack, ccm, nack, goog-remb, transport-cc
	Type string

	// The parameter value depends on the type.
	// For example, type="nack" parameter="pli" will send Picture Loss Indicator packets.
	Parameter string
}

// Feedback splits every rtcp-fb entry of the codec into its type and
// parameter.
func (c Codec) Feedback() []RTCPFeedback {
	feedback := make([]RTCPFeedback, 0, len(c.RTCPFeedback))
	for _, raw := range c.RTCPFeedback {
		split := strings.SplitN(strings.TrimSpace(raw), " ", 2)
		entry := RTCPFeedback{Type: split[0]}
		if len(split) == 2 {
			entry.Parameter = strings.TrimSpace(split[1])
		}

		feedback = append(feedback, entry)
	}

	return feedback
}

// FmtpParameter looks up a single format specific parameter of the codec.
func (c Codec) FmtpParameter(key string) (string, bool) {
	return fmtp.Parse(c.Fmtp).Parameter(key)
}

// ParseRtpmap parses an attribute of the form
// rtpmap:<payload type> <encoding name>/<clock rate>[/<encoding parameters>]
func ParseRtpmap(rtpmap string) (Codec, error) {
	split := strings.Fields(rtpmap)
	if len(split) != 2 {
		return Codec{}, newParseError(ErrRtpmapParse, rtpmap, nil)
	}

	payloadType, err := parsePayloadType(ErrRtpmapParse, split[0])
	if err != nil {
		return Codec{}, err
	}

	split = strings.Split(split[1], "/")
	codec := Codec{
		PayloadType: payloadType,
		Name:        split[0],
	}

	if len(split) > 1 {
		clockRate, err := strconv.ParseUint(split[1], 10, 32)
		if err != nil {
			return Codec{}, newParseError(ErrRtpmapParse, rtpmap, numericError(split[1], err))
		}
		codec.ClockRate = uint32(clockRate)
	}

	if len(split) > 2 {
		codec.EncodingParameters = split[2]
	}

	return codec, nil
}

// ParseFmtp parses an attribute of the form
// fmtp:<payload type> <format specific parameters>
func ParseFmtp(fmtpAttr string) (Codec, error) {
	split := strings.Fields(fmtpAttr)
	if len(split) != 2 {
		return Codec{}, newParseError(ErrFmtpParse, fmtpAttr, nil)
	}

	payloadType, err := parsePayloadType(ErrFmtpParse, split[0])
	if err != nil {
		return Codec{}, err
	}

	return Codec{
		PayloadType: payloadType,
		Fmtp:        split[1],
	}, nil
}

// ParseRTCPFeedback parses an attribute of the form
// rtcp-fb:<payload type> <RTCP feedback type> [<RTCP feedback parameter>]
// The feedback type and parameter are kept together as one entry.
func ParseRTCPFeedback(rtcpFb string) (Codec, error) {
	rtcpFb = strings.TrimSpace(rtcpFb)

	i := strings.IndexFunc(rtcpFb, unicode.IsSpace)
	if i < 0 {
		return Codec{}, newParseError(ErrRTCPFeedbackParse, rtcpFb, nil)
	}

	feedback := strings.TrimLeftFunc(rtcpFb[i:], unicode.IsSpace)
	if feedback == "" {
		return Codec{}, newParseError(ErrRTCPFeedbackParse, rtcpFb, nil)
	}

	payloadType, err := parsePayloadType(ErrRTCPFeedbackParse, rtcpFb[:i])
	if err != nil {
		return Codec{}, err
	}

	return Codec{
		PayloadType:  payloadType,
		RTCPFeedback: []string{feedback},
	}, nil
}

// parsePayloadType extracts the payload type from "<key>:<payload type>".
func parsePayloadType(kind error, keyAndPayloadType string) (uint8, error) {
	split := strings.Split(keyAndPayloadType, ":")
	if len(split) != 2 {
		return 0, newParseError(kind, keyAndPayloadType, nil)
	}

	payloadType, err := strconv.ParseUint(split[1], 10, 8)
	if err != nil {
		return 0, newParseError(kind, keyAndPayloadType, numericError(split[1], err))
	}

	return uint8(payloadType), nil
}
