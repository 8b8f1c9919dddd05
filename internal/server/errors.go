// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when the configuration
	// carries no listen address, leaving nothing to run.
	errNoServersAreCreated = errors.New("no servers are created")
)
