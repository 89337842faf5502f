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

// Package token defines the lexical vocabulary emitted by an HLS playlist
// scanner: token kinds, source positions, and the Token value type itself.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

// Reserved token kinds. None is the zero value, exposed before the first
// successful Advance. The remaining kinds split into substantive tokens
// (carry playlist content, including ill-formed content) and structural
// tokens (carry punctuation or a line terminator); Kind.Substantive
// reports which is which.
const (
	None Kind = iota

	// Substantive tokens.
	Uri
	Comment
	TagName
	TagValue
	AttributeName
	AttributeValue
	QuotedAttributeValue
	UnexpectedData

	// Structural tokens, suppressed when a Scanner is not in verbose mode.
	CommentMarker
	TagNameValueSeparator
	AttributeNameValueSeparator
	QuotedAttributeValueMarker
	QuotedAttributeValueTerminator
	AttributeSeparator
	EndOfLine
	EndOfFile
)

// Substantive reports whether k is one of the content-bearing token kinds
// (Uri, Comment, TagName, TagValue, AttributeName, AttributeValue,
// QuotedAttributeValue, UnexpectedData). UnexpectedData belongs here
// despite carrying ill-formed rather than well-formed content: it is the
// lexer's way of surfacing bad syntax without aborting, and a caller that
// only asks for substantive tokens still needs to see it. All other
// non-None kinds are structural.
func (k Kind) Substantive() bool {
	switch k {
	case Uri, Comment, TagName, TagValue, AttributeName, AttributeValue, QuotedAttributeValue, UnexpectedData:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Uri:
		return "Uri"
	case Comment:
		return "Comment"
	case TagName:
		return "TagName"
	case TagValue:
		return "TagValue"
	case AttributeName:
		return "AttributeName"
	case AttributeValue:
		return "AttributeValue"
	case QuotedAttributeValue:
		return "QuotedAttributeValue"
	case CommentMarker:
		return "CommentMarker"
	case TagNameValueSeparator:
		return "TagNameValueSeparator"
	case AttributeNameValueSeparator:
		return "AttributeNameValueSeparator"
	case QuotedAttributeValueMarker:
		return "QuotedAttributeValueMarker"
	case QuotedAttributeValueTerminator:
		return "QuotedAttributeValueTerminator"
	case AttributeSeparator:
		return "AttributeSeparator"
	case UnexpectedData:
		return "UnexpectedData"
	case EndOfLine:
		return "EndOfLine"
	case EndOfFile:
		return "EndOfFile"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Position is a 1-based line/column source location.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit produced by a Scanner: its kind, the
// verbatim source text it covers, and the position of its first character.
// Tokens are value types with no reference to scanner state; once emitted
// they outlive the scanner that produced them.
type Token struct {
	Kind  Kind
	Value string
	Start Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s: %s %q", t.Start, t.Kind, t.Value)
}
