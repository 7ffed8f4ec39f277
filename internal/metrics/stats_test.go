package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	require.Zero(t, Mean(nil))
	require.Zero(t, Mean([]float64{}))
	require.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)
	require.InDelta(t, 0.5, Mean([]float64{0.5}), 1e-9)
}

func TestSafeDivide(t *testing.T) {
	require.Zero(t, SafeDivide(5, 0))
	require.InDelta(t, 2.5, SafeDivide(5, 2), 1e-9)
}

func TestF1(t *testing.T) {
	require.Zero(t, F1(0, 0))
	require.InDelta(t, 1.0, F1(1, 1), 1e-9)
	require.InDelta(t, 2.0*0.5*1.0/1.5, F1(0.5, 1.0), 1e-9)
}

func TestRoundTo4(t *testing.T) {
	require.Equal(t, 0.3333, RoundTo4(1.0/3.0))
	require.Equal(t, 0.6667, RoundTo4(2.0/3.0))
	require.Equal(t, 1.0, RoundTo4(1.0))
}
