package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dverbeek/binspect/internal/cli/output"
	"github.com/dverbeek/binspect/internal/logger"
	"github.com/dverbeek/binspect/pkg/binstream"
	"github.com/spf13/cobra"
)

var (
	scanMagic string
	scanWidth int
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Find magic-number signatures in a file",
	Long: `Scan a file for every occurrence of a 24-bit or 32-bit magic number.

The magic value is given as an integer ("0x494433" or decimal) and must
fit the chosen width. The scan uses a rolling window and rewinds after
each hit, so overlapping occurrences are all reported.

Examples:
  binspect scan song.mp3 --magic 0x494433 --width 3
  binspect scan video.avi --magic 0x52494646 --width 4`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanMagic, "magic", "", "Magic number to search for (required)")
	scanCmd.Flags().IntVar(&scanWidth, "width", 4, "Signature width in bytes (3 or 4)")
	_ = scanCmd.MarkFlagRequired("magic")
}

func runScan(cmd *cobra.Command, args []string) error {
	want, err := parseMagic(scanMagic, scanWidth)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	logger.Debug("scanning", "file", args[0], "size", len(data), "magic", scanMagic, "width", scanWidth)

	offsets := scanOffsets(binstream.NewCursor(data), want, scanWidth)

	if len(offsets) == 0 {
		fmt.Printf("no match for %s in %s (%d bytes)\n", scanMagic, args[0], len(data))
		return nil
	}

	table := output.NewTableData("#", "Offset", "Offset (hex)")
	for i, off := range offsets {
		table.AddRow(strconv.Itoa(i+1), strconv.Itoa(off), fmt.Sprintf("0x%08X", off))
	}
	return output.PrintTable(os.Stdout, table)
}

// scanOffsets collects every match offset, overlapping ones included:
// after each hit the cursor rewinds to one byte past the match start so
// a signature sharing bytes with a reported match is still found.
func scanOffsets(c *binstream.Cursor, want uint32, width int) []int {
	var offsets []int
	for {
		var found bool
		if width == 3 {
			found = c.ScanUint24(want)
		} else {
			found = c.ScanUint32(want)
		}
		if !found {
			return offsets
		}
		off := c.Position() - width
		offsets = append(offsets, off)
		if err := c.Seek(off + 1); err != nil {
			return offsets
		}
	}
}

// parseMagic parses the magic flag and checks it fits the width.
func parseMagic(s string, width int) (uint32, error) {
	if width != 3 && width != 4 {
		return 0, fmt.Errorf("invalid width %d: must be 3 or 4", width)
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid magic %q: %w", s, err)
	}
	if width == 3 && v > 0xFFFFFF {
		return 0, fmt.Errorf("magic %q does not fit in 3 bytes", s)
	}
	return uint32(v), nil
}
