// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package soft

import (
	"github.com/gviegas/rp/driver"
)

// CmdKind is the kind of a recorded command.
type CmdKind int

// Command kinds.
const (
	CmdClear CmdKind = iota
	CmdBeginSample
	CmdEndSample
)

func (k CmdKind) String() string {
	switch k {
	case CmdClear:
		return "Clear"
	case CmdBeginSample:
		return "BeginSample"
	case CmdEndSample:
		return "EndSample"
	}
	return "CmdKind(?)"
}

// Cmd is a recorded command.
type Cmd struct {
	Kind  CmdKind
	Name  string
	Clear driver.ClearValue
}

// CmdBuffer implements driver.CmdBuffer.
type CmdBuffer struct {
	name string
	cmds []Cmd
}

// Name returns the command buffer's name.
func (cb *CmdBuffer) Name() string { return cb.name }

// ClearRenderTarget records a clear command.
func (cb *CmdBuffer) ClearRenderTarget(clear driver.ClearValue) {
	cb.cmds = append(cb.cmds, Cmd{Kind: CmdClear, Clear: clear})
}

// BeginSample records the start of a profiling scope.
func (cb *CmdBuffer) BeginSample(name string) {
	cb.cmds = append(cb.cmds, Cmd{Kind: CmdBeginSample, Name: name})
}

// EndSample records the end of a profiling scope.
func (cb *CmdBuffer) EndSample(name string) {
	cb.cmds = append(cb.cmds, Cmd{Kind: CmdEndSample, Name: name})
}

// Len returns the number of recorded commands.
func (cb *CmdBuffer) Len() int { return len(cb.cmds) }

// Cap returns the capacity of the command storage.
func (cb *CmdBuffer) Cap() int { return cap(cb.cmds) }

// Clear removes all recorded commands, keeping storage.
func (cb *CmdBuffer) Clear() { cb.cmds = cb.cmds[:0] }
