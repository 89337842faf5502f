package hls

import (
	"errors"
	"io"
	"math"
)

// hasLookahead reports whether buf[cursor+k] holds real input data,
// refilling the window as needed; a full window is first shifted and only
// grown if shifting frees no space. A false return means fewer
// than k+1 characters remain from the cursor -- either the source is
// exhausted or it has failed (check Err).
func (s *Scanner) hasLookahead(k int) bool {
	for s.cursor+k >= s.bufferedLen {
		if s.srcEOF || s.err != nil {
			return false
		}
		if s.bufferedLen >= len(s.buf)-1 {
			s.maybeShift()
		}
		if s.bufferedLen >= len(s.buf)-1 {
			s.grow(s.cursor + k + 2)
			if s.err != nil {
				return false
			}
		}
		s.fill()
	}
	return true
}

// atEOF reports whether the cursor has reached the end of all available
// input. It compares the cursor with bufferedLen through hasLookahead
// (refilling first if needed); the sentinel itself is not read.
func (s *Scanner) atEOF() bool {
	return !s.hasLookahead(0)
}

// shiftDivisor sets when maybeShift relocates the buffer: once no more
// than capacity/shiftDivisor slots remain past the cursor.
const shiftDivisor = 16

// maybeShift relocates buf[tokenAnchor:bufferedLen] (plus the sentinel),
// which holds the in-progress token and the unread tail, down to offset 0
// when the space past the cursor has shrunk to a small fraction of the
// buffer's capacity. It adjusts cursor, lineAnchor and tokenAnchor by the
// same delta so derived columns and in-progress token values stay correct;
// lineNumber is never touched by a shift.
func (s *Scanner) maybeShift() {
	capacity := len(s.buf)
	if capacity-s.cursor > capacity/shiftDivisor || s.tokenAnchor == 0 {
		return
	}
	n := s.tokenAnchor
	copy(s.buf, s.buf[n:s.bufferedLen+1]) // +1 carries the sentinel along
	s.bufferedLen -= n
	s.cursor -= n
	s.lineAnchor -= n
	s.tokenAnchor = 0
}

// grow doubles the buffer's capacity until it can hold at least minCap
// characters plus the trailing sentinel slot. Growth is capped at the
// largest representable positive size; if that cap is reached without
// satisfying minCap, growth is terminal and reported through Err.
func (s *Scanner) grow(minCap int) {
	const maxGrowable = math.MaxInt - 1
	newCap := len(s.buf)
	for newCap <= minCap {
		if newCap > maxGrowable/2 {
			s.srcEOF = true
			s.err = errors.New("hls: input line exceeds the maximum buffer size")
			return
		}
		newCap *= 2
	}
	nb := make([]rune, newCap)
	copy(nb, s.buf[:s.bufferedLen+1])
	s.buf = nb
}

// fill requests more characters from the source, first reclaiming space
// via maybeShift; it never grows the window (hasLookahead does). A single
// successful (possibly partial) read is enough for fill to return, so
// callers that need more must call it again; two consecutive zero-length
// reads with no error are treated as the source having nothing further to
// offer.
func (s *Scanner) fill() {
	if s.srcEOF || s.err != nil {
		return
	}
	s.maybeShift()

	zeroReads := 0
	for s.bufferedLen < len(s.buf)-1 {
		n, err := s.src.Read(s.buf[s.bufferedLen : len(s.buf)-1])
		if n > 0 {
			s.bufferedLen += n
			s.buf[s.bufferedLen] = sentinel
		}
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			s.srcEOF = true
			return
		}
		if n == 0 {
			zeroReads++
			if zeroReads >= 2 {
				s.srcEOF = true
				return
			}
			continue
		}
		return
	}
}

// newlineLengthAt returns the length (1 or 2) of a newline sequence
// starting at lookahead offset k, or 0 if none starts there. A lone CR not
// followed by LF is not a newline sequence: it reports 0 and is treated as
// a literal character by callers, per the HLS text grammar's asymmetry
// between LF and CRLF.
func (s *Scanner) newlineLengthAt(k int) int {
	if !s.hasLookahead(k) {
		return 0
	}
	switch s.buf[s.cursor+k] {
	case '\n':
		return 1
	case '\r':
		if s.hasLookahead(k+1) && s.buf[s.cursor+k+1] == '\n' {
			return 2
		}
	}
	return 0
}
