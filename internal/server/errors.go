// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated aborts startup when the configuration yields
	// no transport at all; a note keeper that listens on nothing is useless.
	errNoServersAreCreated = errors.New("no servers are created")
)
