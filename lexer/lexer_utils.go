/*
File: monkey-go/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

// isWhitespace reports whether b is a space, tab, newline, or carriage
// return — the only whitespace Monkey recognizes.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isLetter reports whether b can start or continue an identifier:
// ASCII letters and underscore. Monkey identifiers never contain
// digits.
func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || b == '_'
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
