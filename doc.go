// Package cubecipher models a 3x3x3 cube as 54 labelled facets, solves it
// layer by layer, and uses it as a transposition cipher.
//
// # Features
//
//   - Move catalog: face turns, slices and rotations as facet permutations
//   - Cube state with an optional payload permuted exactly like the colors
//   - Move notation parsing, inversion and simplification
//   - Layer-by-layer solver for any cube reachable by legal moves
//   - Solving phase detection
//
// # Quick Start
//
// Scramble a cube and solve it again:
//
//	cube := cubecipher.NewSolved()
//	if err := cube.ApplyNotation("R U R' F2 Di B"); err != nil {
//	    log.Fatal(err)
//	}
//
//	moves, err := cubecipher.Solve(cube)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(moves)            // the solution
//	fmt.Println(cube.IsSolved())  // true
//
// # Facet Layout
//
// Flat strings list the facets in this order:
//
//	          0  1  2
//	          3  4  5
//	          6  7  8
//	 9 10 11 12 13 14 15 16 17 18 19 20
//	21 22 23 24 25 26 27 28 29 30 31 32
//	33 34 35 36 37 38 39 40 41 42 43 44
//	         45 46 47
//	         48 49 50
//	         51 52 53
//
// Colors can be any symbols. The centers (4, 22, 25, 28, 31, 49) never move,
// and a cube is solved when every face matches its center.
//
// # Payloads
//
// A payload rides along with the colors:
//
//	cube, err := cubecipher.New(scrambled, cubecipher.WithPayload(hidden))
//	...
//	cubecipher.Solve(cube)
//	fmt.Println(cube.FlatPayload()) // the hidden text in solved order
//
// Cipher wraps this as block encryption with a move sequence as the key.
//
// # Solving Phases
//
// The solver builds the first layer on Up and the last layer on Down:
//
//   - PhaseCross: Up cross complete
//   - PhaseFirstLayer: Up layer complete
//   - PhaseMiddleLayer: first two layers complete
//   - PhaseLastCross: Down edges oriented
//   - PhaseCornersPositioned: Down corners positioned
//   - PhaseCornersOriented: Down corners oriented
//   - PhaseSolved: Cube is solved
package cubecipher
