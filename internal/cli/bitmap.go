package cli

import (
	"bmpsteg/pkg/bitmap"
	"bmpsteg/pkg/config"
	"bmpsteg/pkg/model"
	"bmpsteg/pkg/stego"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type encodeBitmapOpts struct {
	payloadFile string
}

func encodeBitmapCommand(rOpts *rootOpts) *cobra.Command {
	opts := encodeBitmapOpts{}

	encodeCmd := &cobra.Command{
		Use:     "encode <input.bmp> <output.bmp> [message]",
		Example: "bmpsteg encode carrier.bmp stego.bmp \"meet me at noon\"\nbmpsteg encode carrier.bmp stego.bmp --payload-file secret.txt",
		Short:   "Hide a message or a file in a bitmap",
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.payloadFile != "" {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, closePayload, err := opts.inputPayload(args)
			if err != nil {
				return err
			}
			defer closePayload()

			return EncodeBitmapWithPayload(cmd.OutOrStdout(), args[0], args[1], payload, rOpts.stegoConfig())
		},
	}

	encodeCmd.Flags().StringVar(&opts.payloadFile, "payload-file", "", "File whose content is hidden instead of a message given on the command line")

	return encodeCmd
}

func (o encodeBitmapOpts) inputPayload(args []string) (model.InputPayload, func(), error) {
	if o.payloadFile == "" {
		message := args[2]
		return model.InputPayload{
			Name:    "message",
			Content: strings.NewReader(message),
			Size:    int64(len(message)),
		}, func() {}, nil
	}

	file, err := os.Open(o.payloadFile)
	if err != nil {
		return model.InputPayload{}, nil, err
	}

	fileStat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return model.InputPayload{}, nil, err
	}
	return model.InputPayload{
		Name:    file.Name(),
		Content: file,
		Size:    fileStat.Size(),
	}, func() { _ = file.Close() }, nil
}

// EncodeBitmapWithPayload hides payload in the bitmap at inputPath and writes the result to outputPath. Nothing is
// written when the payload does not fit.
func EncodeBitmapWithPayload(out io.Writer, inputPath, outputPath string, payload model.InputPayload, sConfig config.StegoConfig) error {
	s := NewSpinner(out)
	s.Prefix = fmt.Sprintf("Loading carrier bitmap %s ", inputPath)
	s.Start()
	defer s.Stop()

	bm, err := bitmap.Load(inputPath)
	if err != nil {
		return err
	}

	bitmapEncoder, err := stego.NewEncoder(bm, sConfig)
	if err != nil {
		return err
	}

	s.Prefix = fmt.Sprintf("Embedding payload (%s) ", humanize.Bytes(uint64(payload.Size)))
	if err = bitmapEncoder.EmbedPayload(payload); err != nil {
		return err
	}

	s.Prefix = "Writing output bitmap "
	if err = bitmapEncoder.SaveEncodedBitmap(outputPath); err != nil {
		return err
	}

	s.Stop()
	stats := bitmapEncoder.Stats()
	fmt.Fprintf(out, "Generated %s with %s hidden in it\n", outputPath, humanize.Bytes(uint64(payload.Size)))
	fmt.Fprintf(out, "Encoder setup time: %s\n", stats.Setup)
	fmt.Fprintf(out, "Data encode time: %s\n", stats.DataEncoding)
	fmt.Fprintf(out, "Output bitmap encode time: %s\n", stats.OutputBitmapWriting)
	return nil
}

func decodeBitmapCommand(rOpts *rootOpts) *cobra.Command {
	var outputFile string

	decodeCmd := &cobra.Command{
		Use:     "decode <stego.bmp>",
		Example: "bmpsteg decode stego.bmp\nbmpsteg decode stego.bmp --output secret.txt",
		Short:   "Recover a payload hidden by bmpsteg",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodePayloadFromBitmap(cmd.OutOrStdout(), args[0], outputFile, rOpts.stegoConfig())
		},
	}

	decodeCmd.Flags().StringVar(&outputFile, "output", "", "Write the raw payload to this file instead of printing it")
	return decodeCmd
}

// DecodePayloadFromBitmap prints the payload hidden in the bitmap at stegoPath, or writes it to outputPath when one is
// given. A bitmap without a payload is not an error.
func DecodePayloadFromBitmap(out io.Writer, stegoPath, outputPath string, sConfig config.StegoConfig) error {
	bm, err := bitmap.Load(stegoPath)
	if err != nil {
		return err
	}

	decoder, err := stego.NewDecoder(bm, sConfig)
	if err != nil {
		return err
	}

	payload, err := decoder.Extract()
	if errors.Is(err, stego.ErrPayloadNotFound) {
		fmt.Fprintf(out, "No valid message found in %s\n", stegoPath)
		return nil
	} else if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Fprintf(out, "DECODED PAYLOAD: %s\n", payload)
		return nil
	}

	if err = os.WriteFile(outputPath, payload, 0664); err != nil {
		return fmt.Errorf("%w: %w", bitmap.ErrFileOpen, err)
	}
	fmt.Fprintf(out, "Decoded %s from %s into %s\n", humanize.Bytes(uint64(len(payload))), stegoPath, outputPath)
	return nil
}

func inspectBitmapCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <image.bmp>",
		Example: "bmpsteg inspect carrier.bmp",
		Short:   "Print the headers of a bitmap and how much data it can hide",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return InspectBitmap(cmd.OutOrStdout(), args[0])
		},
	}
}

func InspectBitmap(out io.Writer, path string) error {
	bm, err := bitmap.Load(path)
	if err != nil {
		return err
	}

	summary := stego.Summarize(bm)
	fmt.Fprintf(out, "File size:         %s (%d bytes)\n", humanize.Bytes(uint64(summary.FileSize)), summary.FileSize)
	fmt.Fprintf(out, "Dimensions:        %dx%d\n", summary.Width, summary.Height)
	fmt.Fprintf(out, "Bits per pixel:    %d\n", summary.BitCount)
	fmt.Fprintf(out, "Compression:       %d\n", summary.Compression)
	fmt.Fprintf(out, "Pixel data offset: %d\n", summary.OffsetData)
	fmt.Fprintf(out, "Pixel data:        %s (%d bytes)\n", humanize.Bytes(uint64(summary.PixelBytes)), summary.PixelBytes)
	fmt.Fprintf(out, "Payload capacity:  %s (%d bytes)\n", humanize.Bytes(uint64(summary.PayloadCapacity)), summary.PayloadCapacity)
	if bm.IsCompressed() {
		fmt.Fprintln(out, "Warning: pixel data is compressed, hidden data will not survive")
	}
	return nil
}
