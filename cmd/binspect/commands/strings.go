package commands

import (
	"fmt"
	"os"

	"github.com/dverbeek/binspect/internal/logger"
	"github.com/dverbeek/binspect/pkg/binstream"
	"github.com/spf13/cobra"
)

var (
	strOffset     int
	strLength     int
	strEncoding   string
	strZString    bool
	strAllowShort bool
)

var stringsCmd = &cobra.Command{
	Use:   "strings <file>",
	Short: "Decode embedded text at a given offset",
	Long: `Decode text embedded in a binary file.

A window of --length bytes starting at --offset is decoded in the named
encoding. With --zstring the text ends at its null terminator (1 byte
for latin1/utf8, 2 bytes for utf16) instead of running to the window
end; --allow-short tolerates a missing terminator and prints what was
accumulated.

Examples:
  binspect strings song.mp3 --offset 24 --length 30 --encoding latin1
  binspect strings song.mp3 --offset 70 --length 64 --encoding utf16 --zstring --allow-short`,
	Args: cobra.ExactArgs(1),
	RunE: runStrings,
}

func init() {
	stringsCmd.Flags().IntVar(&strOffset, "offset", 0, "Byte offset to decode at")
	stringsCmd.Flags().IntVar(&strLength, "length", 0, "Window length in bytes (0 = to end of file)")
	stringsCmd.Flags().StringVar(&strEncoding, "encoding", "latin1", "Text encoding (latin1, utf8, utf16)")
	stringsCmd.Flags().BoolVar(&strZString, "zstring", false, "Stop at a null terminator")
	stringsCmd.Flags().BoolVar(&strAllowShort, "allow-short", false, "Tolerate a missing terminator")
}

func runStrings(cmd *cobra.Command, args []string) error {
	if strLength < 0 {
		return fmt.Errorf("invalid length %d: must not be negative", strLength)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	c := binstream.NewCursor(data)
	if err := c.Seek(strOffset); err != nil {
		return fmt.Errorf("offset %d outside file of %d bytes", strOffset, len(data))
	}

	var w *binstream.Window
	if strLength > 0 {
		w = binstream.NewWindow("strings", c, strLength)
	} else {
		w = binstream.NewWindowToEnd("strings", c)
	}
	logger.Debug("decoding", "file", args[0], "offset", strOffset, "window", w.Remaining(), "encoding", strEncoding)

	s, err := decodeWindow(w, strEncoding, strZString, strAllowShort)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func decodeWindow(w *binstream.Window, encoding string, zstring, allowShort bool) (string, error) {
	switch encoding {
	case "latin1":
		if zstring {
			return w.ReadZStringLatin1(allowShort)
		}
		return w.ReadStringLatin1(), nil
	case "utf8":
		if zstring {
			return w.ReadZStringUTF8(allowShort)
		}
		return w.ReadStringUTF8(), nil
	case "utf16":
		if zstring {
			return w.ReadZStringUTF16(allowShort)
		}
		return w.ReadStringUTF16(), nil
	default:
		return "", fmt.Errorf("unknown encoding %q: want latin1, utf8 or utf16", encoding)
	}
}
