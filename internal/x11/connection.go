// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/x11/connection.go
// Summary: X11 connection plumbing and EWMH client messages.

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and core X resources.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Close disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// sendRootClientMessage sends a 32-bit format client message to the root
// window per the EWMH spec. The messages are built manually because some
// xgbutil ewmh request helpers panic on this library version (uint vs int
// type assertion).
func (c *Connection) sendRootClientMessage(window xproto.Window, atomName string, data [5]uint32) error {
	atomReply, err := xproto.InternAtom(c.XUtil.Conn(), false,
		uint16(len(atomName)), atomName).Reply()
	if err != nil {
		return fmt.Errorf("failed to intern %s: %w", atomName, err)
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: window,
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New(data[:]),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// sourceIndication marks our requests as coming from a pager/direct action.
const sourceIndication = 2

// SetWindowDesktop moves a window to the given virtual desktop using a
// _NET_WM_DESKTOP client message.
func (c *Connection) SetWindowDesktop(window xproto.Window, desktop int) error {
	return c.sendRootClientMessage(window, "_NET_WM_DESKTOP",
		[5]uint32{uint32(desktop), sourceIndication, 0, 0, 0})
}

// SetCurrentDesktop switches to the given virtual desktop using a
// _NET_CURRENT_DESKTOP client message.
func (c *Connection) SetCurrentDesktop(desktop int) error {
	return c.sendRootClientMessage(c.Root, "_NET_CURRENT_DESKTOP",
		[5]uint32{uint32(desktop), 0, 0, 0, 0})
}

// ActivateWindow raises and focuses a window using _NET_ACTIVE_WINDOW.
func (c *Connection) ActivateWindow(window xproto.Window) error {
	return c.sendRootClientMessage(window, "_NET_ACTIVE_WINDOW",
		[5]uint32{sourceIndication, 0, 0, 0, 0})
}
