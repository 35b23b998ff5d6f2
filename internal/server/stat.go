package server

import (
	"bmpsteg/pkg/model"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// encodeStatsAttr groups the phase timings of one encode request under "stats"
func encodeStatsAttr(encodeStats model.EncodeStats, payloadLen int) slog.Attr {
	return slog.Group("stats",
		slog.String("payload_size", humanize.Bytes(uint64(payloadLen))),
		slog.String("setup", encodeStats.Setup.String()),
		slog.String("data_encoding", encodeStats.DataEncoding.String()),
		slog.String("output_bitmap_writing", encodeStats.OutputBitmapWriting.String()),
		slog.Int64("total_ns", int64(encodeStats.Setup+encodeStats.DataEncoding+encodeStats.OutputBitmapWriting)),
	)
}

func decodeStatsAttr(decodeStats model.DecodeStats, payloadLen int) slog.Attr {
	return slog.Group("stats",
		slog.String("payload_size", humanize.Bytes(uint64(payloadLen))),
		slog.String("setup", decodeStats.Setup.String()),
		slog.String("data_decoding", decodeStats.DataDecoding.String()),
		slog.Int64("total_ns", int64(decodeStats.Setup+decodeStats.DataDecoding)),
	)
}
