// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/ava-labs/avasim/ids"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Command is one of the four event-log record kinds spec'd in
// spec.md §6.
type Command string

const (
	CreateBlock    Command = "Create-Block"
	ReceiveBlock   Command = "Receive-Block"
	AcceptBlock    Command = "Accept-Block"
	CreateConflict Command = "Create-Conflict"
)

// EventLog is the append-only, line-oriented sink consumed by
// post-hoc visualization tooling. One record per line:
//
//	<timestamp>| NODE <id>: <command> <args>
//
// Log I/O failures are non-fatal (spec.md §7): a write error is
// recorded via the onError callback (if any) and swallowed, never
// propagated to the protocol core.
type EventLog struct {
	mu      sync.Mutex
	w       io.Writer
	onError func(error)
}

// NewEventLog wraps an io.Writer (typically a rotating file from
// NewRotatingWriter) as an EventLog sink.
func NewEventLog(w io.Writer, onError func(error)) *EventLog {
	return &EventLog{w: w, onError: onError}
}

// NewRotatingWriter returns a lumberjack-backed, size-capped rotating
// writer at path — the production-grade analog of the Python
// original's raw logging.FileHandler, since a long-running simulation
// can otherwise grow an unbounded log file.
func NewRotatingWriter(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    64, // megabytes
		MaxBackups: 8,
		Compress:   true,
	}
}

func (e *EventLog) emit(nodeID ids.ID, cmd Command, args string) {
	line := fmt.Sprintf("%s| NODE %s: %s %s\n", time.Now().UTC().Format(time.RFC3339Nano), nodeID, cmd, args)
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := io.WriteString(e.w, line); err != nil && e.onError != nil {
		e.onError(err)
	}
}

func formatIDs(ids []ids.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, " ")
}

// LogCreateBlock records local transaction generation.
func (e *EventLog) LogCreateBlock(nodeID, blockID ids.ID, parents []ids.ID) {
	e.emit(nodeID, CreateBlock, fmt.Sprintf("%s [%s]", blockID, formatIDs(parents)))
}

// LogReceiveBlock records admission of a block learned via sync.
func (e *EventLog) LogReceiveBlock(nodeID, blockID ids.ID, parents []ids.ID) {
	e.emit(nodeID, ReceiveBlock, fmt.Sprintf("%s [%s]", blockID, formatIDs(parents)))
}

// LogAcceptBlock records the monotone acceptance latch flipping.
func (e *EventLog) LogAcceptBlock(nodeID, blockID ids.ID) {
	e.emit(nodeID, AcceptBlock, blockID.String())
}

// LogCreateConflict records the adversary's fork injection.
func (e *EventLog) LogCreateConflict(nodeID, block0ID, block1ID ids.ID) {
	e.emit(nodeID, CreateConflict, fmt.Sprintf("%s %s", block0ID, block1ID))
}
