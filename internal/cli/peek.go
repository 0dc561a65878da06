package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/binstreamio/binstream/internal/codec/prim"
	"github.com/binstreamio/binstream/internal/codec/stream"
)

var (
	peekOffset string
	peekKind   string
	peekOrder  string
	peekCount  int
)

// peekCmd represents the peek command
var peekCmd = &cobra.Command{
	Use:   "peek <file>",
	Short: "Decode primitives at an offset",
	Long: `Decode one or more fixed-width primitives from a file at the given
offset, in the given byte order.

Kinds: int8 uint8 int16 uint16 int24 uint24 int32 uint32 int64 uint64
float32 float64.

Examples:
    binspect peek header.bin --kind uint32 --offset 0x10
    binspect peek samples.raw --kind int24 --order little --count 8`,
	Args: cobra.ExactArgs(1),
	RunE: runPeek,
}

func init() {
	rootCmd.AddCommand(peekCmd)

	peekCmd.Flags().StringVarP(&peekOffset, "offset", "o", "0", "offset to read at (decimal or 0x hex)")
	peekCmd.Flags().StringVarP(&peekKind, "kind", "k", "uint8", "primitive kind to decode")
	peekCmd.Flags().StringVar(&peekOrder, "order", "", "byte order: big or little (default from config)")
	peekCmd.Flags().IntVarP(&peekCount, "count", "c", 1, "number of consecutive values to decode")
}

func runPeek(cmd *cobra.Command, args []string) error {
	kind, err := prim.ParseKind(peekKind)
	if err != nil {
		return err
	}
	order := cfg.Order()
	if peekOrder != "" {
		if order, err = prim.ParseByteOrder(peekOrder); err != nil {
			return err
		}
	}
	offset, err := parseOffset(peekOffset)
	if err != nil {
		return err
	}
	if peekCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", peekCount)
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

	for i := 0; i < peekCount; i++ {
		pos, err := st.Position()
		if err != nil {
			return err
		}
		v, err := st.ReadAny(kind, order)
		if err != nil {
			return fmt.Errorf("read %s at offset %d: %w", kind, pos, err)
		}
		fmt.Printf("0x%08X  %-8s %v\n", pos, kind, v)
	}
	return nil
}

// parseOffset accepts decimal and 0x-prefixed hex offsets.
func parseOffset(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("offset must not be negative: %d", v)
	}
	return v, nil
}
