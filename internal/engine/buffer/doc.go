// Package buffer provides the line-oriented text store at the bottom of the
// editing engine.
//
// The buffer package provides:
//
//   - Position: a (line, column) coordinate with total ordering
//   - Range: an unordered pair of positions, normalized on demand
//   - Buffer: the document as an ordered, never-empty sequence of lines
//
// Columns are byte offsets within a line. No grapheme or rune awareness is
// applied; callers that need it must translate before addressing the buffer.
//
// Basic usage:
//
//	buf := buffer.New()
//	buf.SetText("hello\r\nworld") // carriage returns are stripped
//	buf.LineCount()               // 2
//	buf.LineLen(1)                // 5
//	buf.Text()                    // "hello\nworld"
//
// Line Endings:
//
// Whole-document text always uses "\n" as the separator. Every "\r" is
// dropped on ingestion, so CRLF and LF input produce identical lines.
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. It is owned by a single editor and
// driven from one event loop.
package buffer
