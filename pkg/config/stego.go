package config

// StegoConfig tunes the LSB encoder and decoder. The zero value accepts any bitmap regardless of its compression field.
type StegoConfig struct {
	// RequireUncompressed rejects bitmaps whose info header declares a compression other than BI_RGB, as their
	// pixel bytes are not raw samples
	RequireUncompressed bool
}
