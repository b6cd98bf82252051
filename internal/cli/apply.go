package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecipher"
	"github.com/SeamusWaldron/cubecipher/internal/render"
)

var (
	applyColors    string
	applyPayload   string
	applyDelimiter string
	applyFaceMajor bool
	applyInverse   bool
	applyShow      bool
	applyDescribe  bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a cube",
	Long: `Apply a move sequence to a cube and print the resulting colors and payload.

The cube defaults to a solved cube labelled with the face names. Moves are
whitespace separated: U D L R F B, slices M E S, rotations x y z, each
optionally followed by ' (also i, ’ or a backtick) or 2.

Examples:
  cubecipher apply "R U R' U'"
  cubecipher apply --inverse --colors "$STATE" "$SOLUTION"`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyColors, "colors", "c", "", "Starting colors (default: solved)")
	applyCmd.Flags().StringVarP(&applyPayload, "payload", "p", "", "Payload symbols, one rune per facet")
	applyCmd.Flags().StringVar(&applyDelimiter, "delimiter", "", "Separator between payload symbols")
	applyCmd.Flags().BoolVar(&applyFaceMajor, "face-major", false, "Read and print colors face by face")
	applyCmd.Flags().BoolVar(&applyInverse, "inverse", false, "Apply the inverse of the sequence")
	applyCmd.Flags().BoolVar(&applyShow, "show", false, "Draw the resulting cube")
	applyCmd.Flags().BoolVar(&applyDescribe, "describe", false, "Describe the moves in words")
}

func runApply(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	seq, err := cubecipher.ParseSequence(args[0])
	if err != nil {
		return err
	}

	colors := applyColors
	if colors == "" {
		colors = cubecipher.NewSolved().FlatColors()
		if applyFaceMajor {
			colors = cubecipher.NewSolved().FaceMajorColors()
		}
	}
	c, err := buildCube(colors, applyPayload, applyDelimiter, applyFaceMajor)
	if err != nil {
		return err
	}

	if applyInverse {
		c.ApplyInverse(seq)
	} else {
		c.ApplySequence(seq)
	}

	if applyDescribe {
		described := seq
		if applyInverse {
			described = seq.Inverse()
		}
		fmt.Fprintln(out, render.DescribeSequence(described))
	}

	if applyFaceMajor {
		fmt.Fprintln(out, c.FaceMajorColors())
	} else {
		fmt.Fprintln(out, c.FlatColors())
	}
	if c.HasPayload() {
		fmt.Fprintln(out, payloadText(c, applyDelimiter, applyFaceMajor))
	}

	if applyShow {
		r := newRenderer()
		fmt.Fprintln(out, r.Colors(c))
		if c.HasPayload() {
			fmt.Fprintln(out, r.Payload(c))
		}
	}
	return nil
}
