package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binstreamio/binstream/internal/codec/stream"
)

var (
	hexdumpOffset string
	hexdumpLen    int
	hexdumpWidth  int
)

// hexdumpCmd represents the hexdump command
var hexdumpCmd = &cobra.Command{
	Use:   "hexdump <file>",
	Short: "Show an offset/hex/ASCII dump",
	Long: `Render a region of a file as rows of offset, hex bytes and ASCII.
Defaults for the region length and row width come from the configuration.

Examples:
    binspect hexdump image.dat
    binspect hexdump image.dat --offset 0x200 --len 64 --width 8`,
	Args: cobra.ExactArgs(1),
	RunE: runHexdump,
}

func init() {
	rootCmd.AddCommand(hexdumpCmd)

	hexdumpCmd.Flags().StringVarP(&hexdumpOffset, "offset", "o", "0", "offset to start at (decimal or 0x hex)")
	hexdumpCmd.Flags().IntVarP(&hexdumpLen, "len", "l", 0, "bytes to dump (default from config)")
	hexdumpCmd.Flags().IntVarP(&hexdumpWidth, "width", "w", 0, "bytes per row (default from config)")
}

func runHexdump(cmd *cobra.Command, args []string) error {
	offset, err := parseOffset(hexdumpOffset)
	if err != nil {
		return err
	}
	length := hexdumpLen
	if length == 0 {
		length = cfg.HexdumpLength
	}
	width := hexdumpWidth
	if width == 0 {
		width = cfg.HexdumpWidth
	}
	if width <= 0 {
		return fmt.Errorf("width must be positive, got %d", width)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	st := stream.NewReader(f)
	if _, err := st.Seek(offset); err != nil {
		return err
	}

	for length > 0 {
		rowLen := width
		if length < rowLen {
			rowLen = length
		}
		pos, err := st.Position()
		if err != nil {
			return err
		}
		row, err := st.ReadString(rowLen)
		if err != nil {
			return err
		}
		if row == "" {
			break
		}
		printRow(pos, []byte(row), width)
		length -= len(row)
		if len(row) < rowLen {
			break
		}
	}
	return nil
}

func printRow(pos int64, row []byte, width int) {
	fmt.Printf("0x%08X  ", pos)
	for i := 0; i < width; i++ {
		if i < len(row) {
			fmt.Printf("%02X ", row[i])
		} else {
			fmt.Print("   ")
		}
	}
	fmt.Print(" |")
	for _, b := range row {
		if b >= 0x20 && b < 0x7F {
			fmt.Printf("%c", b)
		} else {
			fmt.Print(".")
		}
	}
	fmt.Println("|")
}
