// cubecipher - CLI for solving cube states and hiding text on cube stickers.
package main

import (
	"github.com/SeamusWaldron/cubecipher/internal/cli"
)

func main() {
	cli.Execute()
}
