package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecipher"
)

var (
	cryptKey   string
	cryptState string
	cryptPad   string

	revealFaceMajor bool
	revealRotate    string
	revealShow      bool
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypt text with a move sequence",
	Long: `Encrypt text by laying it on the stickers of solved cubes, 54 runes per
cube, and turning each cube with the key. The last block is padded.

The key is a move sequence (--key) or a scrambled state (--state). A state
key encrypts so that the first block, laid on that scrambled cube, reads in
clear once the cube is solved.

Text is read from stdin when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncrypt,
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [text]",
	Short: "Decrypt text produced by encrypt",
	Long: `Decrypt text produced by encrypt with the same key. Trailing pad runes are
removed, so a message that itself ends in the pad rune loses that tail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecrypt,
}

var revealCmd = &cobra.Command{
	Use:   "reveal <colors> <payload>",
	Short: "Solve a cube and read the payload in solved position",
	Long: `Solve a scrambled cube and print its payload once solved.

--rotate applies extra moves after the solve, for messages laid out with
the cube held in a different orientation, e.g. --rotate z.`,
	Args: cobra.ExactArgs(2),
	RunE: runReveal,
}

var keyCmd = &cobra.Command{
	Use:   "key <colors>",
	Short: "Print the key that scrambles a solved cube into colors",
	Args:  cobra.ExactArgs(1),
	RunE:  runKey,
}

var retargetCmd = &cobra.Command{
	Use:   "retarget <base> <target>",
	Short: "Print moves that turn one cube state into another",
	Args:  cobra.ExactArgs(2),
	RunE:  runRetarget,
}

func init() {
	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd} {
		rootCmd.AddCommand(cmd)
		cmd.Flags().StringVarP(&cryptKey, "key", "k", "", "Key as a move sequence")
		cmd.Flags().StringVar(&cryptState, "state", "", "Key as a scrambled cube state")
		cmd.Flags().StringVar(&cryptPad, "pad", string(cubecipher.DefaultPad), "Pad rune for the last block")
	}

	rootCmd.AddCommand(revealCmd)
	revealCmd.Flags().BoolVar(&revealFaceMajor, "face-major", false, "Read colors and payload face by face")
	revealCmd.Flags().StringVar(&revealRotate, "rotate", "", "Moves to apply after solving")
	revealCmd.Flags().BoolVar(&revealShow, "show", false, "Draw the solved payload")

	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(retargetCmd)
}

func newCipher() (cubecipher.Cipher, error) {
	var c cubecipher.Cipher
	if utf8.RuneCountInString(cryptPad) != 1 {
		return c, fmt.Errorf("pad must be a single rune, got %q", cryptPad)
	}
	c.Pad, _ = utf8.DecodeRuneInString(cryptPad)

	switch {
	case cryptKey != "" && cryptState != "":
		return c, errors.New("use either --key or --state, not both")
	case cryptKey != "":
		key, err := cubecipher.ParseSequence(cryptKey)
		if err != nil {
			return c, err
		}
		c.Key = key
	case cryptState != "":
		key, err := cubecipher.KeyFromState(cryptState, solverOptions()...)
		if err != nil {
			return c, err
		}
		c.Key = key
	default:
		return c, errors.New("a key is required: pass --key or --state")
	}
	logger.Debug().Int("key_moves", len(c.Key)).Msg("cipher key ready")
	return c, nil
}

// inputText returns the argument, or stdin without its final newline.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	c, err := newCipher()
	if err != nil {
		return err
	}
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), c.Encrypt(text))
	return nil
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	c, err := newCipher()
	if err != nil {
		return err
	}
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), c.Decrypt(text))
	return nil
}

func runReveal(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	rotate, err := cubecipher.ParseSequence(revealRotate)
	if err != nil {
		return err
	}
	c, err := buildCube(args[0], args[1], "", revealFaceMajor)
	if err != nil {
		return err
	}
	if _, err := cubecipher.Solve(c, solverOptions()...); err != nil {
		return err
	}
	c.ApplySequence(rotate)

	if revealFaceMajor {
		fmt.Fprintln(out, c.FaceMajorPayload())
	} else {
		fmt.Fprintln(out, c.FlatPayload())
	}
	if revealShow {
		fmt.Fprintln(out, newRenderer().Payload(c))
	}
	return nil
}

func runKey(cmd *cobra.Command, args []string) error {
	key, err := cubecipher.KeyFromState(args[0], solverOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), key)
	return nil
}

func runRetarget(cmd *cobra.Command, args []string) error {
	moves, err := cubecipher.Retarget(args[0], args[1], solverOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), moves)
	fmt.Fprintln(cmd.OutOrStdout(), len(moves))
	return nil
}
