// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdpattr

import (
	"github.com/pion/logging"
)

// API bundles the document level helpers of this package together with
// the settings and logger they use.
type API struct {
	settingEngine *SettingEngine
	log           logging.LeveledLogger
}

// NewAPI creates a new API object for keeping semi-global settings
func NewAPI(options ...func(*API)) *API {
	a := &API{}

	for _, o := range options {
		o(a)
	}

	if a.settingEngine == nil {
		a.settingEngine = &SettingEngine{}
	}

	if a.settingEngine.LoggerFactory == nil {
		a.settingEngine.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	a.log = a.settingEngine.LoggerFactory.NewLogger("sdp")

	return a
}

// WithSettingEngine allows providing a SettingEngine to the API.
// Settings should not be changed after passing the engine to an API.
func WithSettingEngine(s SettingEngine) func(a *API) {
	return func(a *API) {
		a.settingEngine = &s
	}
}
