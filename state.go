package hls

import "github.com/fr830/hls/token"

// This file implements the thirteen-state lexical state machine. Every
// stateFn except stateFinished follows the same shape: call beginToken,
// consume characters belonging to its token, call emit at most once
// (stateUriOrCommentMarker emits nothing when it finds the input already
// exhausted), and return the next stateFn. None of them loop back to themselves across a newline --
// newline sequences are only ever consumed by stateEndOfLine, which is why
// every other state can treat "not atEOF and newlineLengthAt(0) == 0" as
// its continuation condition.

// stateUriOrCommentMarker is the initial state: the start of a logical
// line. A '#' starts a comment or tag; anything else, including an empty
// line, is a URI (possibly empty).
func stateUriOrCommentMarker(s *Scanner) stateFn {
	s.beginToken()
	if s.atEOF() {
		return stateEndOfFile
	}
	if s.buf[s.cursor] == '#' {
		s.cursor++
		s.emit(token.CommentMarker)
		return stateCommentOrTagName
	}
	for !s.atEOF() && s.newlineLengthAt(0) == 0 {
		s.cursor++
	}
	s.emit(token.Uri)
	if s.atEOF() {
		return stateEndOfFile
	}
	return stateEndOfLine
}

// stateCommentOrTagName runs just after a '#'. If the next three
// characters are exactly "EXT" this is a tag name (including that "EXT"
// prefix and any following name characters up to ':', a newline, or EOF);
// otherwise everything to the end of the line is a comment.
func stateCommentOrTagName(s *Scanner) stateFn {
	s.beginToken()
	if s.hasLookahead(2) &&
		s.buf[s.cursor] == 'E' && s.buf[s.cursor+1] == 'X' && s.buf[s.cursor+2] == 'T' {
		s.cursor += 3
		for !s.atEOF() && s.newlineLengthAt(0) == 0 && s.buf[s.cursor] != ':' {
			s.cursor++
		}
		s.emit(token.TagName)
		if s.atEOF() {
			return stateEndOfFile
		}
		if s.newlineLengthAt(0) > 0 {
			return stateEndOfLine
		}
		return stateTagNameValueSeparator
	}

	for !s.atEOF() && s.newlineLengthAt(0) == 0 {
		s.cursor++
	}
	s.emit(token.Comment)
	if s.atEOF() {
		return stateEndOfFile
	}
	return stateEndOfLine
}

// stateTagNameValueSeparator sits on the ':' following a tag name.
func stateTagNameValueSeparator(s *Scanner) stateFn {
	s.beginToken()
	s.cursor++
	s.emit(token.TagNameValueSeparator)
	return stateTagValueOrAttributeName
}

// stateTagValueOrAttributeName scans the payload immediately after a
// tag's ':'. It is the one state with genuine contextual ambiguity: until
// the first '=' is seen, the accumulated text could turn out to be either
// a free-form tag value or the name of the first attribute in an
// attribute list.
//
// The moment an '=' is found, the decision is made once and for all: if
// every character accumulated so far belongs to the attribute-name class
// (A-Z, 0-9, '-'), this is an AttributeName and the rest of the line is
// parsed as an attribute list. Otherwise the '=' and everything before it
// -- and everything after it, to the end of the line -- are a single
// TagValue; no later '=' on the same line is re-examined. Without this
// one-shot latch, a value like "3.2,Title with = sign" would be wrongly
// re-split at the embedded '='.
func stateTagValueOrAttributeName(s *Scanner) stateFn {
	s.beginToken()
	for {
		if s.atEOF() {
			s.emit(token.TagValue)
			return stateEndOfFile
		}
		if s.newlineLengthAt(0) > 0 {
			s.emit(token.TagValue)
			return stateEndOfLine
		}
		if s.buf[s.cursor] != '=' {
			s.cursor++
			continue
		}
		if isAttributeName(s.buf[s.tokenAnchor:s.cursor]) {
			s.emit(token.AttributeName)
			return stateAttributeNameValueSeparator
		}
		// Latch: definitely a tag value. Consume the rest of the line
		// as-is; no further '=' or ',' on it has any special meaning.
		s.cursor++
		for !s.atEOF() && s.newlineLengthAt(0) == 0 {
			s.cursor++
		}
		s.emit(token.TagValue)
		if s.atEOF() {
			return stateEndOfFile
		}
		return stateEndOfLine
	}
}

// isAttributeName reports whether every rune of name belongs to the
// attribute-name character class (A-Z, 0-9, '-'). An empty name does not
// qualify: the grammar requires at least one character.
func isAttributeName(name []rune) bool {
	if len(name) == 0 {
		return false
	}
	for _, r := range name {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}

// stateAttributeNameValueSeparator sits on the '=' following an attribute
// name.
func stateAttributeNameValueSeparator(s *Scanner) stateFn {
	s.beginToken()
	s.cursor++
	s.emit(token.AttributeNameValueSeparator)
	return stateAttributeValueOrQuotedAttributeValueMarker
}

// stateAttributeValueOrQuotedAttributeValueMarker runs just after an
// attribute's '='. A '"' starts a quoted value; anything else is an
// unquoted value running to the next ',', a newline, or EOF.
func stateAttributeValueOrQuotedAttributeValueMarker(s *Scanner) stateFn {
	s.beginToken()
	if s.atEOF() {
		s.emit(token.AttributeValue)
		return stateEndOfFile
	}
	if s.newlineLengthAt(0) > 0 {
		s.emit(token.AttributeValue)
		return stateEndOfLine
	}
	if s.buf[s.cursor] == '"' {
		s.cursor++
		s.emit(token.QuotedAttributeValueMarker)
		return stateQuotedAttributeValue
	}
	for !s.atEOF() && s.newlineLengthAt(0) == 0 && s.buf[s.cursor] != ',' {
		s.cursor++
	}
	s.emit(token.AttributeValue)
	if s.atEOF() {
		return stateEndOfFile
	}
	if s.newlineLengthAt(0) > 0 {
		return stateEndOfLine
	}
	return stateAttributeSeparator
}

// stateQuotedAttributeValue runs inside a quoted attribute value. It ends
// at the next '"', a newline, or EOF -- whichever comes first. An
// unterminated value (newline or EOF reached first) is emitted as-is, with
// no synthesized terminator token.
func stateQuotedAttributeValue(s *Scanner) stateFn {
	s.beginToken()
	for !s.atEOF() && s.newlineLengthAt(0) == 0 && s.buf[s.cursor] != '"' {
		s.cursor++
	}
	s.emit(token.QuotedAttributeValue)
	if s.atEOF() {
		return stateEndOfFile
	}
	if s.newlineLengthAt(0) > 0 {
		return stateEndOfLine
	}
	return stateQuotedAttributeValueTerminator
}

// stateQuotedAttributeValueTerminator sits on the closing '"' of a quoted
// attribute value.
func stateQuotedAttributeValueTerminator(s *Scanner) stateFn {
	s.beginToken()
	s.cursor++
	s.emit(token.QuotedAttributeValueTerminator)
	if s.atEOF() {
		return stateEndOfFile
	}
	if s.newlineLengthAt(0) > 0 {
		return stateEndOfLine
	}
	if s.buf[s.cursor] == ',' {
		return stateAttributeSeparator
	}
	return stateUnexpectedPostQuotedAttributeValueTerminatorData
}

// stateUnexpectedPostQuotedAttributeValueTerminatorData runs between a
// quoted value's closing '"' and the next delimiter, surfacing the junk as
// an UnexpectedData token rather than aborting the scan.
func stateUnexpectedPostQuotedAttributeValueTerminatorData(s *Scanner) stateFn {
	s.beginToken()
	for !s.atEOF() && s.newlineLengthAt(0) == 0 && s.buf[s.cursor] != ',' {
		s.cursor++
	}
	s.emit(token.UnexpectedData)
	if s.atEOF() {
		return stateEndOfFile
	}
	if s.newlineLengthAt(0) > 0 {
		return stateEndOfLine
	}
	return stateAttributeSeparator
}

// stateAttributeSeparator sits on the ',' between two attributes.
func stateAttributeSeparator(s *Scanner) stateFn {
	s.beginToken()
	s.cursor++
	s.emit(token.AttributeSeparator)
	return stateAttributeName
}

// stateAttributeName scans an attribute name following a ','. Unlike
// stateTagValueOrAttributeName, there is no ambiguity here -- the scanner
// is already committed to attribute-list mode -- so this always scans
// forward to the next '=', a newline, or EOF and emits whatever it
// accumulated as an AttributeName, malformed or not.
func stateAttributeName(s *Scanner) stateFn {
	s.beginToken()
	for !s.atEOF() && s.newlineLengthAt(0) == 0 && s.buf[s.cursor] != '=' {
		s.cursor++
	}
	s.emit(token.AttributeName)
	if s.atEOF() {
		return stateEndOfFile
	}
	if s.newlineLengthAt(0) > 0 {
		return stateEndOfLine
	}
	return stateAttributeNameValueSeparator
}

// stateEndOfLine sits on a newline sequence (LF or CRLF) and consumes it,
// advancing the line tracker. The EndOfLine token's own position, recorded
// by beginToken before the newline is consumed, is on the line it
// terminates.
func stateEndOfLine(s *Scanner) stateFn {
	s.beginToken()
	n := s.newlineLengthAt(0)
	s.consumeNewline(n)
	s.emit(token.EndOfLine)
	return stateUriOrCommentMarker
}

// stateEndOfFile emits a single EndOfFile token the first time the stream
// is found exhausted, then hands off to stateFinished.
func stateEndOfFile(s *Scanner) stateFn {
	s.beginToken()
	s.emit(token.EndOfFile)
	return stateFinished
}

// stateFinished is the terminal state: it produces no further tokens.
func stateFinished(s *Scanner) stateFn {
	s.finished = true
	return stateFinished
}
