package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateString(t *testing.T) {
	require.Equal(t, SizeWireWidth+5, EstimateString("hello"))
	require.Equal(t, SizeWireWidth, EstimateString(""))
}

func TestEstimateSequence(t *testing.T) {
	require.Equal(t, SizeWireWidth+3*4, EstimateSequence(3, 4))
}

func TestEstimateBitset(t *testing.T) {
	require.Equal(t, 1, EstimateBitset(5))
	require.Equal(t, 8, EstimateBitset(40))
}
