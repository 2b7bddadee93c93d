package mirc

const (
	maxColorDigits = 2
	hexColorDigits = 6
)

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// scanRun returns the length of the longest prefix of s, at most max bytes,
// made of bytes accepted by accept.
func scanRun(s string, max int, accept func(byte) bool) int {
	n := 0
	for n < len(s) && n < max && accept(s[n]) {
		n++
	}
	return n
}

// matchColor matches "d[d][,d[d]]" at the start of s.
// The foreground digits are mandatory; size is 0 when nothing matched.
func matchColor(s string) (fg, bg string, size int) {
	n := scanRun(s, maxColorDigits, isDigit)
	if n == 0 {
		return "", "", 0
	}
	fg, size = s[:n], n

	if size < len(s) && s[size] == ',' {
		if m := scanRun(s[size+1:], maxColorDigits, isDigit); m > 0 {
			bg = s[size+1 : size+1+m]
			size += 1 + m
		}
	}

	return fg, bg, size
}

// matchHexColor matches "hhhhhh[,hhhhhh]" at the start of s, case-insensitive.
func matchHexColor(s string) (fg, bg string, size int) {
	if scanRun(s, hexColorDigits, isHexDigit) != hexColorDigits {
		return "", "", 0
	}
	fg, size = s[:hexColorDigits], hexColorDigits

	rest := s[size:]
	if len(rest) > 0 && rest[0] == ',' && scanRun(rest[1:], hexColorDigits, isHexDigit) == hexColorDigits {
		bg = rest[1 : 1+hexColorDigits]
		size += 1 + hexColorDigits
	}

	return fg, bg, size
}
