// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroadcasterDeliversToSubscribers(t *testing.T) {
	require := require.New(t)
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	n, err := b.Write([]byte("hello\n"))
	require.NoError(err)
	require.Equal(6, n)

	select {
	case line := <-ch:
		require.Equal("hello\n", string(line))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast line")
	}
}

func TestBroadcasterCancelClosesChannel(t *testing.T) {
	require := require.New(t)
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	cancel()

	_, ok := <-ch
	require.False(ok)
}

func TestBroadcasterDropsWhenSubscriberFull(t *testing.T) {
	b := NewBroadcaster()
	_, cancel := b.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		if _, err := b.Write([]byte("x")); err != nil {
			t.Fatalf("unexpected write error: %v", err)
		}
	}
}
