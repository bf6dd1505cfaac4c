package output

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// SanitizeTerminal makes a string safe to print to an interactive terminal.
// Descriptor targets are symlink texts read out of another process's fd
// table, so a hostile process could embed escape sequences in them; control
// runes and invalid UTF-8 bytes are rewritten as visible escapes ("\x1b")
// while tabs and newlines pass through.
func SanitizeTerminal(s string) string {
	idx := 0
	// fast path: scan until the first control rune / invalid UTF-8 byte
	for idx < len(s) {
		r, size := utf8.DecodeRuneInString(s[idx:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		if r == '\n' || r == '\t' {
			idx += size
			continue
		}
		if unicode.IsControl(r) {
			break
		}
		idx += size
	}
	if idx == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:idx])

	for idx < len(s) {
		r, size := utf8.DecodeRuneInString(s[idx:])
		if r == utf8.RuneError && size == 1 {
			appendEscapedByte(&b, s[idx])
			idx++
			continue
		}

		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			idx += size
			continue
		}

		if unicode.IsControl(r) {
			appendEscapedRune(&b, r)
			idx += size
			continue
		}
		b.WriteString(s[idx : idx+size])
		idx += size
	}

	return b.String()
}

func appendEscapedByte(b *strings.Builder, bt byte) {
	b.WriteString(`\\x`)
	b.WriteByte(hexDigits[bt>>4])
	b.WriteByte(hexDigits[bt&0x0f])
}

// appendEscapedRune writes "\xHH" for byte-range runes, "\uHHHH" for the
// BMP and "\UHHHHHHHH" above it.
func appendEscapedRune(b *strings.Builder, r rune) {
	if r <= 0xFF {
		appendEscapedByte(b, byte(r))
		return
	}

	if r <= 0xFFFF {
		b.WriteString(`\\u`)
		b.WriteByte(hexDigits[(r>>12)&0x0f])
		b.WriteByte(hexDigits[(r>>8)&0x0f])
		b.WriteByte(hexDigits[(r>>4)&0x0f])
		b.WriteByte(hexDigits[r&0x0f])
		return
	}

	b.WriteString(`\\U`)
	b.WriteByte(hexDigits[(r>>28)&0x0f])
	b.WriteByte(hexDigits[(r>>24)&0x0f])
	b.WriteByte(hexDigits[(r>>20)&0x0f])
	b.WriteByte(hexDigits[(r>>16)&0x0f])
	b.WriteByte(hexDigits[(r>>12)&0x0f])
	b.WriteByte(hexDigits[(r>>8)&0x0f])
	b.WriteByte(hexDigits[(r>>4)&0x0f])
	b.WriteByte(hexDigits[r&0x0f])
}
