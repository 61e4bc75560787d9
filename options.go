package vrmmeta

// Option configures behavior when opening files.
//
// Example:
//
//	file, err := vrmmeta.Open("avatar.vrm",
//	    vrmmeta.WithStrictLength(),
//	    vrmmeta.WithMaxJSONSize(16<<20),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool  // Fail on any warning
	ignoreWarnings bool  // Suppress all warnings
	strictLength   bool  // Declared length must match file size
	maxJSONSize    int64 // Maximum JSON chunk size in bytes (0 = no limit)
}

func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, issues such as an unexpected container version are
// collected in File.Warnings and reading continues.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// File.Warnings will always be empty. Takes precedence over
// WithStrictParsing.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithStrictLength fails with a LengthMismatch FormatError when the
// header's declared total length disagrees with the file size.
//
// Without it the mismatch is only a warning. Streams of unknown size
// (compressed or piped input) are never checked.
func WithStrictLength() Option {
	return func(o *openOptions) {
		o.strictLength = true
	}
}

// WithMaxJSONSize rejects files whose JSON chunk declares more than
// bytes bytes, failing with a TooLarge FormatError before the payload
// is read.
//
// Default is 0 (no limit).
func WithMaxJSONSize(bytes int64) Option {
	return func(o *openOptions) {
		o.maxJSONSize = bytes
	}
}
