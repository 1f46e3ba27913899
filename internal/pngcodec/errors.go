package pngcodec

// FormatError reports a stream that is not a well-formed PNG.
type FormatError string

func (e FormatError) Error() string { return "png: invalid format: " + string(e) }

// UnsupportedFormatError reports a valid PNG feature this codec does not handle.
type UnsupportedFormatError string

func (e UnsupportedFormatError) Error() string { return "png: unsupported feature: " + string(e) }

// IntegrityError reports a chunk whose stored CRC does not match its contents.
type IntegrityError string

func (e IntegrityError) Error() string { return "png: integrity check failed: " + string(e) }
