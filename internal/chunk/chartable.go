package chunk

// Identifier character classes. Kw1 characters may start an identifier,
// Kw2 characters may continue one. Bytes >= 0x80 are UTF-8 continuation
// or lead bytes and are allowed in identifiers only.

// IsKw1 reports whether ch can start an identifier.
func IsKw1(ch byte) bool {
	return ch == '_' || ch == '$' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch >= 0x80
}

// IsKw2 reports whether ch can continue an identifier.
func IsKw2(ch byte) bool {
	return IsKw1(ch) || (ch >= '0' && ch <= '9')
}
