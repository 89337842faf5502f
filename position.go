package hls

// Position tracking is derived, not stored: Line and Column (scanner.go)
// compute their result from lineNumber and lineAnchor on every call rather
// than being maintained per character. The only state this concern owns is
// lineNumber (how many newline sequences have been consumed so far) and
// lineAnchor (the buffer offset where the current line began). Only
// lineAnchor is adjusted by window.go's maybeShift, by the same delta as
// the cursor, so a buffer relocation never changes a derived position.

// consumeNewline advances the cursor across the newline sequence starting
// at the current position (already confirmed present by the caller via
// newlineLengthAt(0)) and folds it into the position tracker: the line
// count advances and the anchor for the next line is set to just past it.
// This is the only place lineNumber changes -- a newline that is merely
// looked ahead, never crossed by the cursor, does not advance the line.
func (s *Scanner) consumeNewline(length int) {
	s.cursor += length
	s.lineNumber++
	s.lineAnchor = s.cursor
}
