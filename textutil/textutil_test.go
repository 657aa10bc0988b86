package textutil

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert"
)

func TestParseIntPrefix(t *testing.T) {
	tests := []struct {
		s    string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{"12abc", 12, true},
		{"  42", 42, true},
		{"-7|x", -7, true},
		{"+3", 3, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"   ", 0, false},
		{"99 red balloons", 99, true},
	}
	for _, test := range tests {
		got, ok := ParseIntPrefix(test.s)
		assert.Equal(t, test.ok, ok, "%q", test.s)
		assert.Equal(t, test.want, got, "%q", test.s)
	}
}

func TestParseIntStrict(t *testing.T) {
	tests := []struct {
		s    string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{" 12 ", 12, true},
		{"-7", -7, true},
		{"12abc", 0, false},
		{"", 0, false},
		{"1 2", 0, false},
	}
	for _, test := range tests {
		got, ok := ParseIntStrict(test.s)
		assert.Equal(t, test.ok, ok, "%q", test.s)
		assert.Equal(t, test.want, got, "%q", test.s)
	}
}

func TestNormalizeName(t *testing.T) {
	name, truncated := NormalizeName("  Ada Lovelace  ")
	assert.Equal(t, "Ada Lovelace", name)
	assert.False(t, truncated)

	name, truncated = NormalizeName("   ")
	assert.Equal(t, DefaultName, name)
	assert.False(t, truncated)

	long := strings.Repeat("x", MaxNameLen+20)
	name, truncated = NormalizeName(long)
	assert.Equal(t, MaxNameLen, len(name))
	assert.True(t, truncated)
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []string{
		"a\r\nb", "a\nb",
		"a\rb", "a\nb",
		"a\nb", "a\nb",
		"a\r\n\r\nb", "a\n\nb",
	}
	for i := 0; i < len(tests); i += 2 {
		got := NormalizeNewlines([]byte(tests[i]))
		assert.Equal(t, tests[i+1], string(got))
	}
}
