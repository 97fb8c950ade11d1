package save

import "io"

// Compression selects the encoding of a saved database.
type Compression int

// Compression constants.
const (
	CompressionNone Compression = iota
	CompressionBrotli
)

// IsValid checks if the compression is valid.
func (c Compression) IsValid() bool {
	switch c {
	case CompressionNone, CompressionBrotli:
		return true
	default:
		return false
	}
}

// String returns the string representation of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionBrotli:
		return "brotli"
	}
	return "unknown"
}

// Options is the configuration for save.
type Options struct {
	path        string
	writer      io.Writer
	compression Compression
	keepPlain   bool
}

// Path returns the path for the save options.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the writer for the save options.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Compression returns the compression for the save options.
func (s *Options) Compression() Compression {
	return s.compression
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{
		compression: CompressionNone,
		keepPlain:   true,
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithCompression for compressed copies.
func WithCompression(c Compression) Option {
	return func(s *Options) {
		s.compression = c
	}
}

// WithPath for filesystem saves.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter for custom outputs.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}

// WithoutPlain skips the uncompressed file when compression is enabled.
func WithoutPlain() Option {
	return func(s *Options) {
		s.keepPlain = false
	}
}
