package cli

import (
	"bmpsteg/pkg/carrier"
	"fmt"

	"github.com/spf13/cobra"
)

func carrierCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "carrier <image> <output.bmp>",
		Example: "bmpsteg carrier holiday.png carrier.bmp",
		Short:   "Convert a PNG, JPEG, GIF or BMP image into an uncompressed 24 bit carrier bitmap",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := carrier.ConvertFile(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %s image %s into carrier %s\n", format, args[0], args[1])
			return nil
		},
	}
}
