// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestInitializeRegistersEveryCollector(t *testing.T) {
	require := require.New(t)
	registry := prometheus.NewRegistry()

	m := &Metrics{}
	require.NoError(m.Initialize("avasim", registry))

	families, err := registry.Gather()
	require.NoError(err)
	require.Len(families, 5)
}

func TestInitializeRejectsDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := &Metrics{}
	require.NoError(t, first.Initialize("avasim", registry))

	second := &Metrics{}
	require.Error(t, second.Initialize("avasim", registry))
}

func TestCountersAccumulate(t *testing.T) {
	require := require.New(t)
	registry := prometheus.NewRegistry()
	m := &Metrics{}
	require.NoError(m.Initialize("avasim", registry))

	m.AcceptedBlocks.Add(3)
	m.ForksInjected.Inc()

	var out dto.Metric
	require.NoError(m.AcceptedBlocks.Write(&out))
	require.Equal(float64(3), out.GetCounter().GetValue())
}
