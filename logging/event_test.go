// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ava-labs/avasim/ids"
	"github.com/stretchr/testify/require"
)

func TestEventLogFormatsEveryCommand(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	log := NewEventLog(&buf, nil)

	node, block, p0, p1 := ids.ID(1), ids.ID(2), ids.ID(3), ids.ID(4)
	log.LogCreateBlock(node, block, []ids.ID{p0, p1})
	log.LogReceiveBlock(node, block, []ids.ID{p0})
	log.LogAcceptBlock(node, block)
	log.LogCreateConflict(node, block, p0)

	out := buf.String()
	nodeS, blockS, p0S, p1S := node.String(), block.String(), p0.String(), p1.String()
	require.Contains(out, "NODE "+nodeS+": Create-Block "+blockS+" ["+p0S+" "+p1S+"]")
	require.Contains(out, "NODE "+nodeS+": Receive-Block "+blockS+" ["+p0S+"]")
	require.Contains(out, "NODE "+nodeS+": Accept-Block "+blockS)
	require.Contains(out, "NODE "+nodeS+": Create-Conflict "+blockS+" "+p0S)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEventLogSwallowsWriteErrors(t *testing.T) {
	require := require.New(t)
	var captured error
	log := NewEventLog(failingWriter{}, func(err error) { captured = err })

	require.NotPanics(func() {
		log.LogAcceptBlock(ids.ID(1), ids.ID(2))
	})
	require.Error(captured)
}

func TestNewRotatingWriterImplementsWriter(t *testing.T) {
	var w io.Writer = NewRotatingWriter(t.TempDir() + "/events.log")
	require.NotNil(t, w)
}
