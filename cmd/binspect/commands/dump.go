package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/dverbeek/binspect/pkg/binstream"
	"github.com/spf13/cobra"
)

var (
	dumpOffset int
	dumpLength int
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Hex dump a bounded window of a file",
	Long: `Hex dump the bytes in [offset, offset+length).

A length running past the end of the file is clamped, matching window
semantics: the dump never fails on a short tail, it just ends early.

Example:
  binspect dump song.mp3 --offset 128 --length 64`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().IntVar(&dumpOffset, "offset", 0, "Byte offset to dump from")
	dumpCmd.Flags().IntVar(&dumpLength, "length", 256, "Number of bytes to dump")
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	c := binstream.NewCursor(data)
	if err := c.Seek(dumpOffset); err != nil {
		return fmt.Errorf("offset %d outside file of %d bytes", dumpOffset, len(data))
	}

	w := binstream.NewWindow("dump", c, dumpLength)
	fmt.Print(hex.Dump(w.Bytes()))
	return nil
}
