// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

import (
	"slices"

	"github.com/pion/sdp/v3"
	"github.com/pion/sdpattr/internal/util"
)

// UnmarshalExtMap parses an extmap attribute, accepting values up to the
// limit configured in the SettingEngine.
func (a *API) UnmarshalExtMap(raw string) (ExtMap, error) {
	e := ExtMap{}
	if err := e.unmarshal(raw, a.settingEngine.extMapValueMax()); err != nil {
		return ExtMap{}, err
	}

	return e, nil
}

// ExtMapsFromMediaDescription returns every extmap attribute of a media
// description in the order they appear.
func (a *API) ExtMapsFromMediaDescription(m *sdp.MediaDescription) ([]ExtMap, error) {
	out := []ExtMap{}

	for _, attr := range m.Attributes {
		if attr.Key != AttrKeyExtMap {
			continue
		}

		e, err := a.UnmarshalExtMap(attr.String())
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, nil
}

// CodecsFromMediaDescription reconciles the rtpmap, fmtp and rtcp-fb
// attributes of a single media description into codecs keyed by payload
// type. Attributes that fail to parse are skipped, the codecs that did parse
// are returned together with an error describing every skipped attribute.
func (a *API) CodecsFromMediaDescription(m *sdp.MediaDescription) (map[uint8]Codec, error) {
	codecs := map[uint8]Codec{}

	return codecs, util.FlattenErrs(a.mergeMediaCodecs(m, codecs))
}

// BuildCodecMap is CodecsFromMediaDescription over every media description
// of a session, merged into one map.
func (a *API) BuildCodecMap(s *sdp.SessionDescription) (map[uint8]Codec, error) {
	codecs := map[uint8]Codec{}
	if s == nil {
		return codecs, nil
	}

	var errs []error
	for _, m := range s.MediaDescriptions {
		errs = append(errs, a.mergeMediaCodecs(m, codecs)...)
	}

	return codecs, util.FlattenErrs(errs)
}

func (a *API) mergeMediaCodecs(m *sdp.MediaDescription, codecs map[uint8]Codec) []error {
	var errs []error

	for _, attr := range m.Attributes {
		var parse func(string) (Codec, error)
		switch attr.Key {
		case AttrKeyRTPMap:
			parse = ParseRtpmap
		case AttrKeyFmtp:
			parse = ParseFmtp
		case AttrKeyRTCPFb:
			parse = ParseRTCPFeedback
		default:
			continue
		}

		codec, err := parse(attr.String())
		if err != nil {
			a.log.Warnf("skipping %s attribute of %s media section: %v", attr.Key, m.MediaName.Media, err)
			errs = append(errs, err)

			continue
		}

		MergeCodecs(codec, codecs)
	}

	return errs
}

// GetCodecForPayloadType scans the SessionDescription for the given payload type and returns the codec
func (a *API) GetCodecForPayloadType(s *sdp.SessionDescription, payloadType uint8) (Codec, error) {
	// Malformed attributes are already logged by BuildCodecMap.
	codecs, _ := a.BuildCodecMap(s)

	codec, ok := codecs[payloadType]
	if !ok {
		return Codec{}, ErrPayloadTypeNotFound
	}

	return codec, nil
}

// GetPayloadTypeForCodec scans the SessionDescription for a codec that
// matches the wanted codec and returns its payload type. When several codecs
// match the lowest payload type is returned.
func (a *API) GetPayloadTypeForCodec(s *sdp.SessionDescription, wanted Codec) (uint8, error) {
	codecs, _ := a.BuildCodecMap(s)

	payloadTypes := make([]uint8, 0, len(codecs))
	for payloadType := range codecs {
		payloadTypes = append(payloadTypes, payloadType)
	}
	slices.Sort(payloadTypes)

	for _, payloadType := range payloadTypes {
		if CodecsMatch(wanted, codecs[payloadType]) {
			a.log.Tracef("codec %s matched payload type %d", wanted, payloadType)

			return payloadType, nil
		}
	}

	a.log.Debugf("no codec in session matches %s", wanted)

	return 0, ErrCodecNotFound
}
