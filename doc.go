// Copyright 2017 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

/*
Package hls implements an incremental lexer for HLS (HTTP Live Streaming)
playlist text: the #EXTM3U family of line-oriented media playlist documents.

A Scanner consumes characters from a source.Source and emits a flat,
ordered sequence of token.Token values, each carrying its kind, verbatim
source text, and 1-based line/column position. It does no semantic
interpretation of tags or attributes and builds no tree; higher-level
parsers, linters or editors are expected to be built on top of it.

State functions

The scanner is a deterministic state machine of thirteen states, each
implemented as a stateFn:

	type stateFn func(s *Scanner) stateFn

Each stateFn consumes characters from the current position, emits at most
one token via Scanner.emit, and returns the stateFn to run next. Advance
runs this loop until a token of the caller-visible kind (see Verbose) has
been emitted.

Unlike a general-purpose lexer toolkit, the state graph here is fixed: a
playlist line is either a comment, a tag, or a URI, and a tag's payload is
either a free-form value or a comma-separated attribute list. The one
genuinely tricky piece of context-sensitivity is telling a bare tag value
apart from the first attribute of an attribute list before the deciding
character (an '=') has even been read; stateTagValueOrAttributeName
resolves this with a one-shot latch, never revisiting the decision once
made (see its doc comment).

Buffering

The character window is a growable rune slice with a trailing sentinel,
following the same shape as a classic lexer ring buffer: refill on demand,
shift the unread tail down to reclaim space, grow geometrically only when
shifting isn't enough. Lines and columns are derived from the cursor and a
line-anchor offset rather than stored per character, so buffer shifts are
O(1) bookkeeping, not a rewrite of retained positions.

Verbose mode

By default the scanner only surfaces substantive tokens (Uri, Comment,
TagName, TagValue, AttributeName, AttributeValue, QuotedAttributeValue,
UnexpectedData).
Structural tokens -- markers, separators, terminators, end-of-line -- are
always computed by the state machine, whichever mode is active; Verbose
just controls whether Advance returns them to the caller.
*/
package hls
