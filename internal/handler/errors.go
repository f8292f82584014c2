// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the terminal has neither a device port nor an
// operator port configured.
var errNoHandlersAreCreated = errors.New("no handlers are created")
