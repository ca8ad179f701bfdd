// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

import (
	"github.com/pion/logging"
)

// SettingEngine allows influencing behavior in ways that are not
// supported by the plain attribute parsers. This allows us to support
// additional use-cases without changing the parsers themselves.
type SettingEngine struct {
	extMap struct {
		ValueMax int
	}
	LoggerFactory logging.LoggerFactory
}

// SetExtMapValueMax sets the largest extmap value accepted by
// API.UnmarshalExtMap. The default is 246, which matches the parsers
// deployed today. Values between 1 and 256 are allowed.
func (e *SettingEngine) SetExtMapValueMax(valueMax int) error {
	if valueMax < extMapValueMin || valueMax > extMapValueLimit {
		return errExtMapValueMax
	}

	e.extMap.ValueMax = valueMax

	return nil
}

func (e *SettingEngine) extMapValueMax() int {
	if e.extMap.ValueMax == 0 {
		return extMapValueMax
	}

	return e.extMap.ValueMax
}
