// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pion/sdp/v3"
)

// ExtMap represents the activation of a single RTP header extension
// https://tools.ietf.org/html/rfc8285#section-8
type ExtMap struct {
	Value     int
	Direction Direction
	URI       *url.URL
	ExtAttr   *string
}

// Convert converts this object to an Attribute
func (e ExtMap) Convert() sdp.Attribute {
	return sdp.NewAttribute(AttrKeyExtMap, e.String())
}

// Unmarshal creates an ExtMap from a string of the form
// extmap:<value>["/"<direction>] <URI> <extensionattributes>
func (e *ExtMap) Unmarshal(raw string) error {
	return e.unmarshal(raw, extMapValueMax)
}

func (e *ExtMap) unmarshal(raw string, valueMax int) error {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return newParseError(ErrExtMapParse, raw, nil)
	}

	fields := strings.Fields(parts[1])
	if len(fields) < 2 {
		return newParseError(ErrExtMapParse, raw, nil)
	}

	valdir := strings.Split(fields[0], "/")
	if len(valdir) > 2 {
		return newParseError(ErrExtMapParse, fields[0], nil)
	}

	value, err := strconv.ParseInt(valdir[0], 10, 64)
	if err != nil {
		return newParseError(ErrExtMapParse, valdir[0], numericError(valdir[0], err))
	}
	if value < extMapValueMin || value > int64(valueMax) {
		return newParseError(ErrExtMapParse, valdir[0], ErrExtMapValueRange)
	}

	direction := DirectionUnknown
	if len(valdir) == 2 {
		direction = NewDirection(valdir[1])
		if direction == DirectionUnknown {
			return newParseError(ErrExtMapParse, valdir[1], errExtMapUnknownDirection)
		}
	}

	uri, err := url.Parse(fields[1])
	if err != nil {
		return newParseError(ErrExtMapParse, fields[1], err)
	}
	if !uri.IsAbs() {
		return newParseError(ErrExtMapParse, fields[1], errExtMapRelativeURI)
	}

	var extAttr *string
	if len(fields) > 2 {
		attr := strings.Join(fields[2:], " ")
		extAttr = &attr
	}

	e.Value = int(value)
	e.Direction = direction
	e.URI = uri
	e.ExtAttr = extAttr

	return nil
}

// Marshal creates a string from an ExtMap
func (e ExtMap) Marshal() string {
	return AttrKeyExtMap + ":" + e.String()
}

func (e ExtMap) String() string {
	output := strconv.Itoa(e.Value)
	if e.Direction != DirectionUnknown {
		output += "/" + e.Direction.String()
	}

	if e.URI != nil {
		output += " " + e.URI.String()
	}

	if e.ExtAttr != nil {
		output += " " + *e.ExtAttr
	}

	return output
}
