package tfhe

var (
	// ParamsBinary is the classic 32-bit torus parameter set for
	// boolean messages, with the original N=1024, n=500 lattice.
	ParamsBinary = ParametersLiteral[uint32]{
		LWEDimension: 500,
		GLWERank:     1,
		PolyDegree:   1024,

		LWEStdDev:  0.0000243497,
		GLWEStdDev: 0.0000000071809961,

		MessageModulus: 1 << 1,

		BlindRotateParameters: GadgetParametersLiteral[uint32]{
			Base:  1 << 10,
			Level: 2,
		},
		KeySwitchParameters: GadgetParametersLiteral[uint32]{
			Base:  1 << 2,
			Level: 8,
		},

		BootstrapOrder: OrderBlindRotateKeySwitch,
	}

	// ParamsUint2 is ParamsBinary with a 2-bit message space.
	ParamsUint2 = ParametersLiteral[uint32]{
		LWEDimension: 500,
		GLWERank:     1,
		PolyDegree:   1024,

		LWEStdDev:  0.0000243497,
		GLWEStdDev: 0.0000000071809961,

		MessageModulus: 1 << 2,

		BlindRotateParameters: GadgetParametersLiteral[uint32]{
			Base:  1 << 10,
			Level: 2,
		},
		KeySwitchParameters: GadgetParametersLiteral[uint32]{
			Base:  1 << 2,
			Level: 8,
		},

		BootstrapOrder: OrderBlindRotateKeySwitch,
	}

	// ParamsUint3 is a 64-bit torus parameter set with a 3-bit message space.
	// The key switch gadget stays at base 4 so the digit table of the
	// key switch key remains small.
	ParamsUint3 = ParametersLiteral[uint64]{
		LWEDimension: 600,
		GLWERank:     1,
		PolyDegree:   1024,

		LWEStdDev:  0.0000000298023224,
		GLWEStdDev: 0.00000000000000088817842,

		MessageModulus: 1 << 3,

		BlindRotateParameters: GadgetParametersLiteral[uint64]{
			Base:  1 << 11,
			Level: 3,
		},
		KeySwitchParameters: GadgetParametersLiteral[uint64]{
			Base:  1 << 2,
			Level: 8,
		},

		BootstrapOrder: OrderKeySwitchBlindRotate,
	}

	// ParamsUint4 is a 64-bit torus parameter set with a 4-bit message space.
	ParamsUint4 = ParametersLiteral[uint64]{
		LWEDimension: 600,
		GLWERank:     1,
		PolyDegree:   1024,

		LWEStdDev:  0.0000000298023224,
		GLWEStdDev: 0.00000000000000088817842,

		MessageModulus: 1 << 4,

		BlindRotateParameters: GadgetParametersLiteral[uint64]{
			Base:  1 << 8,
			Level: 4,
		},
		KeySwitchParameters: GadgetParametersLiteral[uint64]{
			Base:  1 << 2,
			Level: 8,
		},

		BootstrapOrder: OrderKeySwitchBlindRotate,
	}
)
