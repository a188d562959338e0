// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/demo/pty.go
// Summary: Runs a command under a pty and keeps its most recent output
//          line for display in demo window titles.

package demo

import (
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/creack/pty"
)

// PtyContent tails the output of a command running under a pty.
type PtyContent struct {
	mu      sync.Mutex
	last    string
	partial strings.Builder

	cmd  *exec.Cmd
	pty  *os.File
	stop chan struct{}
}

// StartPty launches a command under a pty and begins tailing its output.
func StartPty(command string, args ...string) (*PtyContent, error) {
	cmd := exec.Command(command, args...)
	cmd.Env = append(os.Environ(), "TERM=dumb")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		log.Printf("Demo: Failed to start pty for command %q: %v", command, err)
		return nil, err
	}

	c := &PtyContent{
		cmd:  cmd,
		pty:  ptmx,
		stop: make(chan struct{}),
	}
	go c.reader()
	return c, nil
}

func (c *PtyContent) reader() {
	buf := make([]byte, 4096)
	for {
		select {
		case <-c.stop:
			return
		default:
			n, err := c.pty.Read(buf)
			if n > 0 {
				c.consume(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}
}

// consume folds raw pty output into a single most-recent complete line,
// dropping control characters.
func (c *PtyContent) consume(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range data {
		switch {
		case b == '\n':
			line := strings.TrimSpace(c.partial.String())
			if line != "" {
				c.last = line
			}
			c.partial.Reset()
		case b == '\r':
		case b >= 0x20:
			c.partial.WriteByte(b)
		}
	}
}

// LastLine returns the most recent complete output line.
func (c *PtyContent) LastLine() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Stop terminates the command and the tail goroutine.
func (c *PtyContent) Stop() {
	close(c.stop)
	if c.pty != nil {
		c.pty.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Process.Kill()
	}
}
