package bitmap

import "encoding/binary"

const (
	FileHeaderLen = 14
	InfoHeaderLen = 40
	HeadersLen    = FileHeaderLen + InfoHeaderLen

	// CompressionRGB is the BI_RGB compression code, meaning uncompressed pixel data
	CompressionRGB = 0
)

var Signature = [2]byte{'B', 'M'}

// FileHeader is the BITMAPFILEHEADER record found at the start of every BMP file.
type FileHeader struct {
	Signature  [2]byte // "BM"
	FileSize   uint32  // Size of the whole file in bytes
	Reserved1  uint16
	Reserved2  uint16
	OffsetData uint32 // Offset from the start of the file to the pixel array
}

// InfoHeader is the 40 byte BITMAPINFOHEADER record that follows the file header.
type InfoHeader struct {
	HeaderSize      uint32 // Size of this header as declared in the file
	Width           int32
	Height          int32 // Negative for top-down bitmaps
	Planes          uint16
	BitCount        uint16 // Bits per pixel
	Compression     uint32
	SizeImage       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

func (h *FileHeader) unmarshal(b []byte) {
	le := binary.LittleEndian
	h.Signature = [2]byte{b[0], b[1]}
	h.FileSize = le.Uint32(b[2:6])
	h.Reserved1 = le.Uint16(b[6:8])
	h.Reserved2 = le.Uint16(b[8:10])
	h.OffsetData = le.Uint32(b[10:14])
}

func (h *FileHeader) marshal(b []byte) {
	le := binary.LittleEndian
	b[0], b[1] = h.Signature[0], h.Signature[1]
	le.PutUint32(b[2:6], h.FileSize)
	le.PutUint16(b[6:8], h.Reserved1)
	le.PutUint16(b[8:10], h.Reserved2)
	le.PutUint32(b[10:14], h.OffsetData)
}

func (h *InfoHeader) unmarshal(b []byte) {
	le := binary.LittleEndian
	h.HeaderSize = le.Uint32(b[0:4])
	h.Width = int32(le.Uint32(b[4:8]))
	h.Height = int32(le.Uint32(b[8:12]))
	h.Planes = le.Uint16(b[12:14])
	h.BitCount = le.Uint16(b[14:16])
	h.Compression = le.Uint32(b[16:20])
	h.SizeImage = le.Uint32(b[20:24])
	h.XPixelsPerMeter = int32(le.Uint32(b[24:28]))
	h.YPixelsPerMeter = int32(le.Uint32(b[28:32]))
	h.ColorsUsed = le.Uint32(b[32:36])
	h.ColorsImportant = le.Uint32(b[36:40])
}

func (h *InfoHeader) marshal(b []byte) {
	le := binary.LittleEndian
	le.PutUint32(b[0:4], h.HeaderSize)
	le.PutUint32(b[4:8], uint32(h.Width))
	le.PutUint32(b[8:12], uint32(h.Height))
	le.PutUint16(b[12:14], h.Planes)
	le.PutUint16(b[14:16], h.BitCount)
	le.PutUint32(b[16:20], h.Compression)
	le.PutUint32(b[20:24], h.SizeImage)
	le.PutUint32(b[24:28], uint32(h.XPixelsPerMeter))
	le.PutUint32(b[28:32], uint32(h.YPixelsPerMeter))
	le.PutUint32(b[32:36], h.ColorsUsed)
	le.PutUint32(b[36:40], h.ColorsImportant)
}
