package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/litchilabs/lychee/pkg/extract"
)

func TestSection(t *testing.T) {
	known := []string{"LABEL:", "OTHER:"}

	t.Run("Bounded By Next Marker", func(t *testing.T) {
		got := extract.Prose("LABEL: X\nOTHER: Y", "LABEL:", known...)
		assert.Equal(t, "X", got)
	})

	t.Run("Order Independent", func(t *testing.T) {
		got := extract.Prose("OTHER: Y\nLABEL: X", "LABEL:", known...)
		assert.Equal(t, "X", got)
	})

	t.Run("Runs To End Without Next Marker", func(t *testing.T) {
		got := extract.Prose("LABEL: X\nmore text", "LABEL:", known...)
		assert.Equal(t, "X\nmore text", got)
	})

	t.Run("Missing Marker", func(t *testing.T) {
		section, found := extract.Section("no markers here", "LABEL:", known...)
		assert.False(t, found)
		assert.Empty(t, section)
	})

	t.Run("Case Insensitive Marker", func(t *testing.T) {
		got := extract.Prose("label: X\nother: Y", "LABEL:", known...)
		assert.Equal(t, "X", got)
	})

	t.Run("Sibling Sections Do Not Corrupt Each Other", func(t *testing.T) {
		text := "LABEL: X\nOTHER: Y"
		assert.Equal(t, "X", extract.Prose(text, "LABEL:", known...))
		assert.Equal(t, "Y", extract.Prose(text, "OTHER:", known...))
	})

	// Runes like U+0130 and U+023A change byte length under lowercasing, so
	// indices found in a naively lowered copy would not line up with the
	// original text.
	t.Run("Non ASCII Text Before Marker", func(t *testing.T) {
		got := extract.Prose(strings.Repeat("İ", 10)+"LABEL: X", "LABEL:", known...)
		assert.Equal(t, "X", got)
	})

	t.Run("Length Changing Runes Do Not Panic", func(t *testing.T) {
		section, found := extract.Section(strings.Repeat("Ⱥ", 10)+"LABEL:", "LABEL:", known...)
		assert.True(t, found)
		assert.Empty(t, section)
	})

	t.Run("Non ASCII Inside Section Preserved", func(t *testing.T) {
		got := extract.Prose("LABEL: café İstanbul\nOTHER: Y", "LABEL:", known...)
		assert.Equal(t, "café İstanbul", got)
	})
}

func TestListItems(t *testing.T) {
	t.Run("Numbered", func(t *testing.T) {
		got := extract.ListItems("1. a\n2. b\n3. c")
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("Bulleted", func(t *testing.T) {
		got := extract.ListItems("- a\n- b")
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("Unicode Bullet", func(t *testing.T) {
		got := extract.ListItems("• a\n• b")
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("Blank And Prose Lines Skipped", func(t *testing.T) {
		got := extract.ListItems("Here are the steps:\n\n1. a\n\nsome aside\n2. b\n")
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("Empty Items Discarded", func(t *testing.T) {
		got := extract.ListItems("1. a\n2.\n3. c")
		assert.Equal(t, []string{"a", "c"}, got)
	})

	t.Run("Multi Digit Numbering", func(t *testing.T) {
		got := extract.ListItems("9. i\n10. j\n11. k")
		assert.Equal(t, []string{"i", "j", "k"}, got)
	})

	t.Run("Dot Inside Item Kept", func(t *testing.T) {
		got := extract.ListItems("1. Use go.mod for versions")
		assert.Equal(t, []string{"Use go.mod for versions"}, got)
	})
}

func TestItems(t *testing.T) {
	text := "NEEDS_CLARIFICATION: yes\nQUESTIONS:\n1. What language?\n2. What deadline?"
	got := extract.Items(text, "QUESTIONS:", "NEEDS_CLARIFICATION:", "QUESTIONS:")
	assert.Equal(t, []string{"What language?", "What deadline?"}, got)

	assert.Nil(t, extract.Items("no list here", "QUESTIONS:", "QUESTIONS:"))
}

func TestHasToken(t *testing.T) {
	assert.True(t, extract.HasToken("NEEDS_CLARIFICATION: Yes\n", "needs_clarification: yes"))
	assert.False(t, extract.HasToken("NEEDS_CLARIFICATION: no", "NEEDS_CLARIFICATION: yes"))
}

func TestNumberedList(t *testing.T) {
	assert.Equal(t, "1. a\n2. b", extract.NumberedList([]string{"a", "b"}))
	assert.Equal(t, "", extract.NumberedList(nil))
}
