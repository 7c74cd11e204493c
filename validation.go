package hdrscan

// IsValidIdent reports whether s is a valid C/C++ identifier as this
// scanner recognizes one: the first byte must be ASCII alphanumeric
// (a leading underscore is rejected, matching the "reject _foo" rule
// the original implementation's validator documents), and every
// remaining byte must be ASCII alphanumeric or underscore.
//
// Ported from original_source/src/validation.rs's valid_name.
func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	if !isASCIIAlnum(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isASCIIAlnum(c) && c != '_' {
			return false
		}
	}
	return true
}

func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
