package render

import (
	"strings"

	"github.com/SeamusWaldron/cubecipher"
)

// Describe spells a move out for someone holding the cube, Up on top and
// Front facing them.
//
//	R  -> "right up"          R' -> "right down"
//	L  -> "left down"         L' -> "left up"
//	U  -> "top left"          U' -> "top right"
//	D  -> "bottom right"      D' -> "bottom left"
//	F  -> "front clockwise"   F' -> "front anti-clockwise"
//	B  -> "back clockwise"    B' -> "back anti-clockwise"
//
// Half turns append " x 2" to the clockwise form.
func Describe(m cubecipher.Move) string {
	var cw, ccw string
	switch m.Face {
	case cubecipher.FaceR:
		cw, ccw = "right up", "right down"
	case cubecipher.FaceL:
		cw, ccw = "left down", "left up"
	case cubecipher.FaceU:
		cw, ccw = "top left", "top right"
	case cubecipher.FaceD:
		cw, ccw = "bottom right", "bottom left"
	case cubecipher.FaceF:
		cw, ccw = "front clockwise", "front anti-clockwise"
	case cubecipher.FaceB:
		cw, ccw = "back clockwise", "back anti-clockwise"
	case cubecipher.FaceM:
		cw, ccw = "middle down", "middle up"
	case cubecipher.FaceE:
		cw, ccw = "equator right", "equator left"
	case cubecipher.FaceS:
		cw, ccw = "standing clockwise", "standing anti-clockwise"
	case cubecipher.FaceX:
		cw, ccw = "tilt cube up", "tilt cube down"
	case cubecipher.FaceY:
		cw, ccw = "spin cube left", "spin cube right"
	case cubecipher.FaceZ:
		cw, ccw = "roll cube clockwise", "roll cube anti-clockwise"
	default:
		return m.Notation()
	}

	switch m.Turn {
	case cubecipher.CW:
		return cw
	case cubecipher.CCW:
		return ccw
	case cubecipher.Double:
		return cw + " x 2"
	}
	return m.Notation()
}

// DescribeSequence formats moves as a comma-separated description.
func DescribeSequence(seq cubecipher.Sequence) string {
	parts := make([]string, len(seq))
	for i, m := range seq {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}
