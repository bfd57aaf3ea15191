package tfhe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SUSYLABS/nufhe/tfhe"
)

func TestParams(t *testing.T) {
	t.Run("Compile", func(t *testing.T) {
		assert.NotPanics(t, func() { tfhe.ParamsBinary.Compile() })
		assert.NotPanics(t, func() { tfhe.ParamsUint2.Compile() })
		assert.NotPanics(t, func() { tfhe.ParamsUint3.Compile() })
		assert.NotPanics(t, func() { tfhe.ParamsUint4.Compile() })
	})

	t.Run("CompileInvalid", func(t *testing.T) {
		wrongLWEDimension := tfhe.ParamsBinary
		wrongLWEDimension.LWEDimension = -1
		assert.Panics(t, func() { wrongLWEDimension.Compile() })

		wrongPolyDegree := tfhe.ParamsBinary
		wrongPolyDegree.PolyDegree = 1000
		assert.Panics(t, func() { wrongPolyDegree.Compile() })

		wrongGadgetBase := tfhe.ParamsBinary
		wrongGadgetBase.BlindRotateParameters.Base = 3
		assert.Panics(t, func() { wrongGadgetBase.Compile() })

		wrongGadgetLevel := tfhe.ParamsBinary
		wrongGadgetLevel.KeySwitchParameters.Level = 17
		assert.Panics(t, func() { wrongGadgetLevel.Compile() })

		wrongMessageModulus := tfhe.ParamsBinary
		wrongMessageModulus.MessageModulus = 3
		assert.Panics(t, func() { wrongMessageModulus.Compile() })
	})

	t.Run("Literal", func(t *testing.T) {
		assert.Equal(t, tfhe.ParamsBinary, tfhe.ParamsBinary.Compile().Literal())
		assert.Equal(t, tfhe.ParamsUint4, tfhe.ParamsUint4.Compile().Literal())
	})

	t.Run("DefaultLWEDimension", func(t *testing.T) {
		paramsSmall := tfhe.ParamsBinary.Compile()
		assert.Equal(t, tfhe.OrderBlindRotateKeySwitch, paramsSmall.BootstrapOrder())
		assert.Equal(t, paramsSmall.LWEDimension(), paramsSmall.DefaultLWEDimension())

		paramsLarge := tfhe.ParamsUint4.Compile()
		assert.Equal(t, tfhe.OrderKeySwitchBlindRotate, paramsLarge.BootstrapOrder())
		assert.Equal(t, paramsLarge.GLWEDimension(), paramsLarge.DefaultLWEDimension())
	})
}
