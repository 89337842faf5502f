package hls_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fr830/hls"
	"github.com/fr830/hls/source"
	"github.com/fr830/hls/token"
)

func tokenStrings(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = fmt.Sprintf("%s %s %q", t.Start, t.Kind, t.Value)
	}
	return out
}

func drain(t *testing.T, input string, opts ...hls.Option) []string {
	t.Helper()
	s := hls.New(source.FromString(input), opts...)
	toks := s.Drain()
	if err := s.Err(); err != nil {
		t.Fatalf("unexpected scanner error: %v", err)
	}
	return tokenStrings(toks)
}

func TestScanner_EndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple tag",
			input: "#EXTM3U\n",
			want:  []string{`1:2 TagName "EXTM3U"`},
		},
		{
			name:  "tag value then uri",
			input: "#EXTINF:3.5,Title\nhttp://a/b\n",
			want: []string{
				`1:2 TagName "EXTINF"`,
				`1:9 TagValue "3.5,Title"`,
				`2:1 Uri "http://a/b"`,
			},
		},
		{
			name:  "attribute list with quoted value",
			input: "#EXT-X-STREAM-INF:BANDWIDTH=1280000,CODECS=\"avc1.4d401f\"\n",
			want: []string{
				`1:2 TagName "EXT-X-STREAM-INF"`,
				`1:19 AttributeName "BANDWIDTH"`,
				`1:29 AttributeValue "1280000"`,
				`1:37 AttributeName "CODECS"`,
				`1:45 QuotedAttributeValue "avc1.4d401f"`,
			},
		},
		{
			name:  "CRLF comment",
			input: "#comment\r\n",
			want:  []string{`1:2 Comment "comment"`},
		},
		{
			name:  "unexpected data after quoted value",
			input: "#EXT-X-KEY:URI=\"k\"junk,NEXT=1\n",
			want: []string{
				`1:2 TagName "EXT-X-KEY"`,
				`1:12 AttributeName "URI"`,
				`1:17 QuotedAttributeValue "k"`,
				`1:19 UnexpectedData "junk"`,
				`1:24 AttributeName "NEXT"`,
				`1:29 AttributeValue "1"`,
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(t, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanner_EmptyInputFinalPosition(t *testing.T) {
	s := hls.New(source.FromString(""))
	if s.Advance() {
		t.Fatalf("expected no tokens from empty input")
	}
	if s.Line() != 1 || s.Column() != 1 {
		t.Errorf("got line %d column %d, want 1 1", s.Line(), s.Column())
	}
}

func TestScanner_TagValueWithEmbeddedEquals(t *testing.T) {
	// The one-shot latch must not re-split at a later '=' once the payload
	// has already been classified as a tag value.
	got := drain(t, "#EXTINF:3.2,Title with = sign\n")
	want := []string{
		`1:2 TagName "EXTINF"`,
		`1:9 TagValue "3.2,Title with = sign"`,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanner_UnterminatedQuotedValue(t *testing.T) {
	// No terminator token is synthesized when a quote never closes.
	got := drain(t, "#EXT-X-KEY:URI=\"abc\n")
	want := []string{
		`1:2 TagName "EXT-X-KEY"`,
		`1:12 AttributeName "URI"`,
		`1:17 QuotedAttributeValue "abc"`,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanner_LowercaseAttributeNameDemotesToTagValue(t *testing.T) {
	// A lowercase (or otherwise non-attr-name) run before the first '='
	// reclassifies the whole payload as a TagValue.
	got := drain(t, "#EXT-X-FOO:bandwidth=5\n")
	want := []string{
		`1:2 TagName "EXT-X-FOO"`,
		`1:12 TagValue "bandwidth=5"`,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanner_VerboseIncludesStructuralTokens(t *testing.T) {
	got := drain(t, "#EXTM3U\n", hls.Verbose(true))
	want := []string{
		`1:1 CommentMarker "#"`,
		`1:2 TagName "EXTM3U"`,
		`1:8 EndOfLine "\n"`,
		`2:1 EndOfFile ""`,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanner_TagNameEOFImmediatelyAfterEXT(t *testing.T) {
	// Open question in the spec: "#EXT" at EOF emits a TagName ("EXT"),
	// not a Comment.
	got := drain(t, "#EXT")
	want := []string{`1:2 TagName "EXT"`}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestScanner_NoStarvationBound(t *testing.T) {
	input := "#EXT-X-KEY:A=1,B=2,C=3\nhttp://example/seg.ts\n"
	s := hls.New(source.FromString(input), hls.Verbose(true))
	toks := s.Drain()
	if max := 4*len([]rune(input)) + 2; len(toks) > max {
		t.Fatalf("produced %d tokens, exceeds bound %d", len(toks), max)
	}
	if len(toks) == 0 {
		t.Fatal("expected at least one token")
	}
}

// failingSource yields the runes of text and then a fixed error instead of
// io.EOF, simulating an underlying stream (a socket, a file) that fails
// mid-read.
type failingSource struct {
	runes []rune
	pos   int
	err   error
}

func (s *failingSource) Read(p []rune) (int, error) {
	if s.pos >= len(s.runes) {
		return 0, s.err
	}
	n := copy(p, s.runes[s.pos:])
	s.pos += n
	return n, nil
}

func TestScanner_SourceErrorIsSticky(t *testing.T) {
	// A source failure can only be discovered while the scanner looks
	// ahead for more input (here, for a second line); from that point on
	// Advance returns false and Err reports the failure.
	wantErr := errors.New("connection reset")
	src := &failingSource{runes: []rune("#EXTM3U\n"), err: wantErr}
	s := hls.New(src, hls.Verbose(true))

	for s.Advance() {
	}

	if err := s.Err(); err != wantErr {
		t.Fatalf("Err() = %v, want %v", err, wantErr)
	}

	// The sticky failed state must persist: further Advance calls keep
	// returning false and Err keeps reporting the same error.
	for i := 0; i < 3; i++ {
		if s.Advance() {
			t.Fatalf("Advance() returned true after a source failure")
		}
		if err := s.Err(); err != wantErr {
			t.Fatalf("Err() = %v on repeat call, want %v", err, wantErr)
		}
	}
}
