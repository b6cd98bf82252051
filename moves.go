package cubecipher

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(cubecipher.R, cubecipher.U, cubecipher.RPrime, cubecipher.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}     // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}     // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}     // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW}    // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}     // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW}    // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Double} // Back 180
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = Sequence{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = Sequence{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = Sequence{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// Algorithms used by the solver. They are written with the solved layers on
// Down and the layer being worked on Up.
var (
	// Brings a cross edge from UF to DF when its Down color faces front.
	algCrossFlip = MustParseSequence("U' R' F R")

	// Inserts a Down corner from UFR into DFR, by where its Down color faces.
	algCornerRight = MustParseSequence("R U R'")
	algCornerFront = MustParseSequence("F' U' F")
	algCornerUp    = MustParseSequence("R U2 R' U' R U R'")

	// Inserts the UF edge into FR, with its front facet staying on F.
	algEdgeFromFront = MustParseSequence("U R U' R' U' F' U F")
	// Inserts the UR edge into FR, with its right facet staying on R.
	algEdgeFromRight = MustParseSequence("U' F' U F U R U' R'")

	// Cycles UF -> UR -> UB with UF and UB flipped on the way, UL fixed.
	algEdgeFlip = MustParseSequence("F R U R' U' F'")

	// Cycles the Up corners UBL -> UFL -> UBR, UFR fixed.
	algCornerCycle = MustParseSequence("U R U' L' U R' U' L")

	// Twists the UFR corner in place, disturbing only the Down layer.
	algCornerTwist = MustParseSequence("R' D' R D R' D' R D")

	// Cycles UF -> UR -> UL, UB and all corners fixed.
	algEdgeCycle = MustParseSequence("R U' R U R U R U' R' U' R2")
)
