package hls

import (
	"github.com/fr830/hls/source"
	"github.com/fr830/hls/token"
)

// minBufferCapacity is the smallest character window a Scanner ever
// allocates (spec: "a growable character buffer of capacity >= 2048 code
// units").
const minBufferCapacity = 2048

// sentinel is the value kept one slot past the buffered data at all times.
// The scanning loops still check bounds through atEOF/hasLookahead before
// every read of buf[cursor], so the sentinel is never read as input and a
// real NUL appearing in the input is not special-cased.
const sentinel = rune(0)

// stateFn is both a lexical state and the action taken while in it. It
// consumes characters from the window, emits at most one token, and
// returns the state to transition to next.
type stateFn func(s *Scanner) stateFn

// Scanner tokenizes HLS playlist text read from a source.Source. A Scanner
// is not safe for concurrent use: Advance mutates the character window,
// the cursor, and the state machine on whichever goroutine calls it.
type Scanner struct {
	src source.Source

	buf         []rune
	cursor      int // next unread rune
	bufferedLen int // buf[:bufferedLen] holds real data; buf[bufferedLen] is the sentinel
	lineAnchor  int // offset of the start of the current line within buf
	lineNumber  int // 0-based; exposed as Line() == lineNumber+1

	state    stateFn
	verbose  bool
	finished bool
	emitted  bool

	srcEOF bool
	err    error

	tokenAnchor int
	tokenLine   int
	tokenColumn int

	kind  token.Kind
	value string
	start token.Position
}

// New creates a Scanner reading from src. A Scanner must not be reused
// across sources; create a new one for each input.
func New(src source.Source, opts ...Option) *Scanner {
	s := &Scanner{
		src:   src,
		buf:   make([]rune, minBufferCapacity),
		state: stateUriOrCommentMarker,
	}
	s.buf[0] = sentinel
	for _, o := range opts {
		o(s)
	}
	return s
}

// Line returns the 1-based line number immediately following the last
// character consumed.
func (s *Scanner) Line() int { return s.lineNumber + 1 }

// Column returns the 1-based column immediately following the last
// character consumed.
func (s *Scanner) Column() int { return s.cursor - s.lineAnchor + 1 }

// TokenKind returns the kind of the last token emitted by Advance.
func (s *Scanner) TokenKind() token.Kind { return s.kind }

// TokenValue returns the verbatim source text of the last token emitted by
// Advance.
func (s *Scanner) TokenValue() string { return s.value }

// TokenStart returns the position of the first character of the last token
// emitted by Advance.
func (s *Scanner) TokenStart() token.Position { return s.start }

// Err returns the error that caused the underlying source to fail, if any.
// Once Err returns non-nil, the Scanner is in a sticky failed state and
// Advance will keep returning false.
func (s *Scanner) Err() error { return s.err }

// Advance runs the state machine until it emits a token of the kind the
// caller is configured to see (all kinds in verbose mode, only substantive
// kinds otherwise), then returns true. It returns false once the input
// (and, in verbose mode, the trailing EndOfFile token) is exhausted, or
// once the underlying source has failed -- check Err to tell the two
// apart.
func (s *Scanner) Advance() bool {
	for !s.finished {
		s.emitted = false
		s.state = s.state(s)
		if s.err != nil {
			s.finished = true
			return false
		}
		if s.emitted && (s.verbose || s.kind.Substantive()) {
			return true
		}
	}
	return false
}

// ReadToken advances the scanner and returns a snapshot of the resulting
// token, or the zero Token and false once exhausted.
func (s *Scanner) ReadToken() (token.Token, bool) {
	if !s.Advance() {
		return token.Token{}, false
	}
	return token.Token{Kind: s.kind, Value: s.value, Start: s.start}, true
}

// Drain repeatedly calls ReadToken until exhausted, returning every token
// produced in source order.
func (s *Scanner) Drain() []token.Token {
	var toks []token.Token
	for {
		t, ok := s.ReadToken()
		if !ok {
			return toks
		}
		toks = append(toks, t)
	}
}

// emit snapshots the current token: its kind, the verbatim slice of the
// buffer between tokenAnchor and cursor, and the start position recorded
// by beginToken. This is the one place a stateFn hands data back to
// Advance.
func (s *Scanner) emit(k token.Kind) {
	s.kind = k
	s.value = string(s.buf[s.tokenAnchor:s.cursor])
	s.start = token.Position{Line: s.tokenLine, Column: s.tokenColumn}
	s.emitted = true
}

// beginToken marks the current cursor as the start of the token about to
// be scanned. Every stateFn calls this before consuming any characters of
// its own token.
func (s *Scanner) beginToken() {
	s.tokenAnchor = s.cursor
	s.tokenLine = s.Line()
	s.tokenColumn = s.Column()
}
