package parser

import "strings"

func normalize(s string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
}

func splitLines(block string) []string {
	lines := strings.Split(normalize(block), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSpace(ln)
	}
	return lines
}

func every(lines []string, f func(string) bool) bool {
	for _, ln := range lines {
		if !f(ln) {
			return false
		}
	}
	return true
}

func stripHeading(line string) string {
	return strings.TrimPrefix(strings.TrimLeft(line, "#"), " ")
}

func stripQuote(line string) string {
	return strings.TrimPrefix(strings.TrimPrefix(line, ">"), " ")
}

func stripBullet(line string) string {
	if isUnorderedItem(line) {
		return line[2:]
	}
	return line
}

func stripOrdered(line string) string {
	if _, rest, ok := strings.Cut(line, ". "); ok {
		return rest
	}
	return line
}

func codeContent(block string) string {
	lines := strings.Split(normalize(block), "\n")
	if len(lines) >= 2 {
		lines = lines[1 : len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
