package mcfparam_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmcf/mcfparam"
)

func TestEpsilon_NonPositiveError(t *testing.T) {
	_, err := mcfparam.Epsilon(0)
	require.ErrorIs(t, err, mcfparam.ErrNonPositiveError)

	_, err = mcfparam.Epsilon(-0.2)
	require.ErrorIs(t, err, mcfparam.ErrNonPositiveError)
}

func TestEpsilon_SatisfiesBound(t *testing.T) {
	for _, errorTol := range []float64{0.05, 0.1, 0.5, 1.0} {
		eps, err := mcfparam.Epsilon(errorTol)
		require.NoError(t, err)
		require.Greater(t, eps, 0.0)
		require.Less(t, eps, 1.0)

		bound := math.Pow(1-eps, -3)
		assert.LessOrEqual(t, bound, 1+errorTol+1e-9, "epsilon=%v errorTol=%v", eps, errorTol)
	}
}

func TestEpsilon_SmallerErrorGivesSmallerEpsilon(t *testing.T) {
	epsLoose, err := mcfparam.Epsilon(1.0)
	require.NoError(t, err)
	epsTight, err := mcfparam.Epsilon(0.05)
	require.NoError(t, err)

	assert.Greater(t, epsLoose, epsTight)
}

func TestDelta_Positive(t *testing.T) {
	eps, err := mcfparam.Epsilon(0.1)
	require.NoError(t, err)

	d := mcfparam.Delta(10, eps)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 1.0)
}

func TestT_Monotonicity(t *testing.T) {
	epsLoose, err := mcfparam.Epsilon(1.0)
	require.NoError(t, err)
	epsTight, err := mcfparam.Epsilon(0.05)
	require.NoError(t, err)

	tLoose := mcfparam.T(20, epsLoose)
	tTight := mcfparam.T(20, epsTight)

	assert.GreaterOrEqual(t, tTight, tLoose, "smaller epsilon should not decrease the rescale threshold")
}
