// Copyright 2018 Luca Weiss
// Use of this source code is governed by the GPL-3.0
// license that can be found in the LICENSE file

// Package razer provides a Go interface to the openrazer daemons.
//
// Two daemons with incompatible D-Bus interfaces exist, openrazer-daemon and
// razer_test. The protocol package implements both; a Manager is created for
// exactly one of them and every Device and Led it hands out talks that
// dialect.
//
// Also included in cmd/openrazer is a small CLI utility that allows
// inspecting and controlling devices.
package razer

import (
	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/protocol"
	"github.com/z3ntu/libqopenrazer/systemd"
)

const (
	// VERSION of this library
	VERSION = `0.1.0`
)

// NewManager returns a pointer to a new Manager using the dialect p. No
// connection to the daemon is made until the first call.
func NewManager(p protocol.Protocol) *Manager {
	return &Manager{
		protocol: p,
		unit: &systemd.Unit{
			Name:   p.ServiceUnit(),
			Binary: p.DaemonBinary(),
		},
		subscriptions: make(map[string]*common.Subscription),
	}
}

// SetLogger allows assigning a custom levelled logger that conforms to the
// common.Logger interface. Defaults to common.StubLogger, which does no
// logging at all.
func SetLogger(logger common.Logger) {
	common.SetLogger(logger)
}
