package ui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		width       int
		want        string
	}{
		{"empty", 0, 0, 10, "░░░░░░░░░░   0%"},
		{"half", 2, 4, 10, "█████░░░░░  50%"},
		{"full", 3, 3, 5, "█████ 100%"},
		{"width clamped", 1, 1, 1, "█████ 100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressBar(tt.done, tt.total, tt.width))
		})
	}
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, ThemeNeon, ThemeByName("NEON").Name)
	assert.Equal(t, ThemeMono, ThemeByName("mono").Name)
	assert.Equal(t, ThemeClassic, ThemeByName("").Name)
	assert.Equal(t, ThemeClassic, ThemeByName("nope").Name)

	assert.True(t, IsTheme("Classic"))
	assert.False(t, IsTheme("solarized"))
}

func TestGroupLines_Mono(t *testing.T) {
	th := ThemeByName(ThemeMono)
	lines := th.GroupLines("To do",
		[]model.Item{{ID: 2, Text: "B"}},
		"Done",
		[]model.Item{{ID: 1, Text: "A", Done: true}},
	)

	assert.Equal(t, []string{
		"To do",
		" 2. [ ] B",
		"",
		"Done",
		" 1. [x] A",
	}, lines)
}

func TestGroupLines_EmptyViews(t *testing.T) {
	th := ThemeByName(ThemeMono)
	lines := th.GroupLines("To do", nil, "Done", nil)
	assert.Equal(t, []string{"To do", "(none)", "", "Done", "(none)"}, lines)
}

func TestItemLine_Width(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		truncated bool
	}{
		{"short ascii", "buy milk", false},
		{"exactly 80 ascii", strings.Repeat("x", 80), false},
		{"long ascii", strings.Repeat("x", 100), true},
		{"wide text that fits", strings.Repeat("日", 30), false},
		{"accented text that fits", strings.Repeat("é", 80), false},
		{"ascii then wide past the limit", strings.Repeat("x", 76) + "日本語", true},
		{"long wide text", strings.Repeat("日", 50), true},
	}
	th := ThemeByName(ThemeMono)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := th.ItemLine(model.Item{ID: 1, Text: tt.text})
			require.True(t, strings.HasPrefix(line, "[ ] "))
			text := strings.TrimPrefix(line, "[ ] ")

			assert.True(t, utf8.ValidString(text))
			assert.LessOrEqual(t, ansi.StringWidth(text), 80)
			if tt.truncated {
				assert.True(t, strings.HasSuffix(text, "..."))
			} else {
				assert.Equal(t, tt.text, text)
			}
		})
	}
}

func TestPanel_ContainsLines(t *testing.T) {
	out := ThemeByName(ThemeMono).Panel([]string{"hello", "world"})
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
	assert.True(t, strings.HasPrefix(out, "+"))
}

func TestStatusLines(t *testing.T) {
	th := ThemeByName(ThemeMono)
	var buf bytes.Buffer
	th.OK(&buf, "added")
	th.Fail(&buf, "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "x added", lines[0])
	assert.Equal(t, "✖ boom", lines[1])
}
