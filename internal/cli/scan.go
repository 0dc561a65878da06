package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binstreamio/binstream/internal/codec/stream"
)

var (
	scanOffset string
	scanToken  string
	scanMax    int
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Extract token-delimited strings",
	Long: `Read token-delimited strings from a file, starting at the given
offset. The default token is a single NUL byte, which extracts
C-style strings. Scanning stops at the first stretch with no further
delimiter, or after --max strings.

Examples:
    binspect scan strings.bin
    binspect scan records.dat --token ";" --offset 0x40 --max 10`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanOffset, "offset", "o", "0", "offset to start at (decimal or 0x hex)")
	scanCmd.Flags().StringVarP(&scanToken, "token", "t", "\x00", "delimiter token")
	scanCmd.Flags().IntVarP(&scanMax, "max", "m", 0, "stop after this many strings (0 = no limit)")
}

func runScan(cmd *cobra.Command, args []string) error {
	offset, err := parseOffset(scanOffset)
	if err != nil {
		return err
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

	for n := 0; scanMax == 0 || n < scanMax; n++ {
		before, err := st.Position()
		if err != nil {
			return err
		}
		s, err := st.ReadUntil(scanToken)
		if err != nil {
			return err
		}
		after, err := st.Position()
		if err != nil {
			return err
		}
		// An unmoved position is the not-found sentinel; an empty string
		// with the position advanced is a genuine empty field.
		if after == before {
			break
		}
		fmt.Printf("0x%08X  %q\n", before, s)
	}
	return nil
}
