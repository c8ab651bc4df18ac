package parse

type parseOpts struct {
	comments      bool
	requireBraces bool
}

// ParseOption configures Parse.
type ParseOption func(*parseOpts)

// ParseComments controls whether comments are collected, defaulting to
// true. With false the parser still tolerates comments in the input
// but Result.Comments comes back empty.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) {
		o.comments = v
	}
}

// RequireBraces reports a syntax diagnostic when the document root is
// an object written without braces. The document still parses.
func RequireBraces() ParseOption {
	return func(o *parseOpts) {
		o.requireBraces = true
	}
}
