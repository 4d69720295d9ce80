// Package extract pulls labeled sections and itemized lists out of
// semi-structured model output.
//
// Model responses are expected to contain marker tokens such as "GOAL:",
// each followed by free text until the next recognized marker. Nothing about
// that layout is guaranteed, so every lookup degrades to an empty value when
// a marker is absent or its section is malformed; a missing marker never
// aborts extraction of sibling sections.
package extract

import (
	"fmt"
	"strings"
	"unicode"
)

// Section locates the first case-insensitive occurrence of marker in text
// and returns everything after it up to the next-occurring of the other
// known markers, or end of text if none follows. The second return value is
// false when the marker is absent.
//
// Each lookup is independent: callers pass the full known-marker set and the
// bound is computed per call, so out-of-order or missing markers degrade
// gracefully instead of corrupting adjacent sections.
func Section(text, marker string, known ...string) (string, bool) {
	// Case folding must not change byte offsets: model output is arbitrary
	// UTF-8 and some runes grow or shrink under strings.ToLower. Markers are
	// ASCII, so folding only ASCII letters keeps every index valid in text.
	lower := asciiLower(text)
	start := strings.Index(lower, asciiLower(marker))
	if start < 0 {
		return "", false
	}
	start += len(marker)

	end := len(text)
	rest := lower[start:]
	for _, other := range known {
		if strings.EqualFold(other, marker) {
			continue
		}
		if i := strings.Index(rest, asciiLower(other)); i >= 0 && start+i < end {
			end = start + i
		}
	}
	return text[start:end], true
}

// asciiLower lowercases the ASCII letters of s byte-for-byte, leaving all
// other bytes (including multi-byte runes) untouched.
func asciiLower(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}

// Prose returns the trimmed text block of a section, or "" when the marker
// is absent.
func Prose(text, marker string, known ...string) string {
	section, ok := Section(text, marker, known...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(section)
}

// Items returns the list items found in a section. A line qualifies when,
// after trimming, it starts with a digit eventually followed by a '.'
// (numbered style) or with a bullet character ('-' or '•'). The item content
// is everything after the first '.' or after the bullet, trimmed. Blank
// lines, non-qualifying lines and items that trim to nothing are skipped.
func Items(text, marker string, known ...string) []string {
	section, ok := Section(text, marker, known...)
	if !ok {
		return nil
	}
	return ListItems(section)
}

// ListItems applies the line-qualification rules to an already-bounded block.
func ListItems(section string) []string {
	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		item, ok := listItem(line)
		if !ok {
			continue
		}
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func listItem(line string) (string, bool) {
	r := []rune(line)
	switch {
	case r[0] == '-' || r[0] == '•':
		return string(r[1:]), true
	case unicode.IsDigit(r[0]):
		// Numbered style: content starts after the first dot.
		if _, after, found := strings.Cut(line, "."); found {
			return after, true
		}
		return "", false
	default:
		return "", false
	}
}

// HasToken reports whether text contains the literal token, ignoring ASCII
// case.
func HasToken(text, token string) bool {
	return strings.Contains(asciiLower(text), asciiLower(token))
}

// NumberedList renders items as "1. item" lines, one per item, 1-based.
func NumberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, item)
	}
	return b.String()
}
