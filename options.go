package hls

// Option configures a Scanner at construction time.
type Option func(*Scanner)

// Verbose controls whether Advance returns structural tokens (markers,
// separators, terminators, end-of-line) in addition to substantive ones.
// The default is false: only Uri, Comment, TagName, TagValue,
// AttributeName, AttributeValue, QuotedAttributeValue and UnexpectedData
// tokens surface.
//
// The state machine runs identically regardless of this setting; Verbose
// only changes which emitted tokens Advance reports back.
func Verbose(v bool) Option {
	return func(s *Scanner) {
		s.verbose = v
	}
}
