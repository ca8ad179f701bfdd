// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRtpmap(t *testing.T) {
	for _, test := range []struct {
		raw   string
		codec Codec
	}{
		{
			raw:   "rtpmap:96 VP8/90000",
			codec: Codec{PayloadType: 96, Name: "VP8", ClockRate: 90000},
		},
		{
			raw:   "rtpmap:111 opus/48000/2",
			codec: Codec{PayloadType: 111, Name: "opus", ClockRate: 48000, EncodingParameters: "2"},
		},
		{
			raw:   "rtpmap:0 PCMU",
			codec: Codec{PayloadType: 0, Name: "PCMU"},
		},
		{
			raw:   "rtpmap:8  PCMA/8000 ",
			codec: Codec{PayloadType: 8, Name: "PCMA", ClockRate: 8000},
		},
	} {
		codec, err := ParseRtpmap(test.raw)
		require.NoError(t, err, test.raw)
		assert.Equal(t, test.codec, codec, test.raw)
	}
}

func TestParseRtpmapFailures(t *testing.T) {
	for _, test := range []struct {
		raw     string
		numeric bool
	}{
		{raw: "rtpmap:96"},
		{raw: "rtpmap:96 VP8/90000 extra"},
		{raw: "96 VP8/90000"},
		{raw: "rtpmap:96:1 VP8/90000"},
		{raw: "rtpmap:abc VP8/90000", numeric: true},
		{raw: "rtpmap:256 VP8/90000", numeric: true},
		{raw: "rtpmap:96 VP8/fast", numeric: true},
	} {
		_, err := ParseRtpmap(test.raw)
		assert.ErrorIs(t, err, ErrRtpmapParse, test.raw)
		assert.Equal(t, test.numeric, errors.Is(err, ErrNumericConversion), test.raw)
	}

	_, err := ParseRtpmap("rtpmap:96 VP8/fast")
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "fast", numErr.Num)
}

func TestParseFmtp(t *testing.T) {
	codec, err := ParseFmtp("fmtp:96 max-fr=30;max-fs=3600")
	require.NoError(t, err)
	assert.Equal(t, Codec{PayloadType: 96, Fmtp: "max-fr=30;max-fs=3600"}, codec)

	for _, test := range []struct {
		raw     string
		numeric bool
	}{
		{raw: "fmtp:96"},
		{raw: "fmtp:96 a=1; b=2"},
		{raw: "96 a=1"},
		{raw: "fmtp:x a=1", numeric: true},
	} {
		_, err := ParseFmtp(test.raw)
		assert.ErrorIs(t, err, ErrFmtpParse, test.raw)
		assert.Equal(t, test.numeric, errors.Is(err, ErrNumericConversion), test.raw)
	}
}

func TestParseRTCPFeedback(t *testing.T) {
	for _, test := range []struct {
		raw      string
		feedback string
	}{
		{"rtcp-fb:96 nack", "nack"},
		{"rtcp-fb:96 nack pli", "nack pli"},
		{"rtcp-fb:96   ccm fir", "ccm fir"},
		{"rtcp-fb:96\tgoog-remb", "goog-remb"},
	} {
		codec, err := ParseRTCPFeedback(test.raw)
		require.NoError(t, err, test.raw)
		assert.Equal(t, Codec{PayloadType: 96, RTCPFeedback: []string{test.feedback}}, codec, test.raw)
	}

	for _, test := range []struct {
		raw     string
		numeric bool
	}{
		{raw: "rtcp-fb:96"},
		{raw: "rtcp-fb:96   "},
		{raw: "96 nack"},
		{raw: "rtcp-fb:96:97 nack"},
		{raw: "rtcp-fb:* nack", numeric: true},
	} {
		_, err := ParseRTCPFeedback(test.raw)
		assert.ErrorIs(t, err, ErrRTCPFeedbackParse, test.raw)
		assert.Equal(t, test.numeric, errors.Is(err, ErrNumericConversion), test.raw)
	}
}

func TestParseErrorCarriesFragment(t *testing.T) {
	_, err := ParseFmtp("fmtp:96")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, ErrFmtpParse, parseErr.Kind)
	assert.Equal(t, "fmtp:96", parseErr.Value)
	assert.Equal(t, "sdp: could not parse fmtp `fmtp:96`", err.Error())
}

func TestCodecFeedback(t *testing.T) {
	codec := Codec{RTCPFeedback: []string{"nack", "nack pli", "ccm fir", "transport-cc"}}
	assert.Equal(t, []RTCPFeedback{
		{Type: "nack"},
		{Type: "nack", Parameter: "pli"},
		{Type: "ccm", Parameter: "fir"},
		{Type: "transport-cc"},
	}, codec.Feedback())

	assert.Empty(t, Codec{}.Feedback())
}

func TestCodecFmtpParameter(t *testing.T) {
	codec := Codec{Fmtp: "profile-level-id=42e01f;packetization-mode=1"}

	value, ok := codec.FmtpParameter("packetization-mode")
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	_, ok = codec.FmtpParameter("sprop-parameter-sets")
	assert.False(t, ok)
}

func TestCodecString(t *testing.T) {
	codec := Codec{
		PayloadType:        111,
		Name:               "opus",
		ClockRate:          48000,
		EncodingParameters: "2",
		Fmtp:               "minptime=10;useinbandfec=1",
		RTCPFeedback:       []string{"transport-cc", "nack"},
	}
	assert.Equal(t, "111 opus/48000/2 (minptime=10;useinbandfec=1) [transport-cc, nack]", codec.String())
}
