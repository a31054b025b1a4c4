package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultOptions = Options{MaxPatternLength: 32, MinTermLength: 1}

func TestCompile(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		opts      Options
		wantText  string
		wantTerms []string
	}{
		{"single term", "Biology", defaultOptions, "biology", []string{"biology"}},
		{"surrounding whitespace", "  bio  ", defaultOptions, "bio", []string{"bio"}},
		{"multiple terms", "Intro   to\tBiology", defaultOptions, "intro to biology", []string{"intro", "to", "biology"}},
		{"empty", "", defaultOptions, "", nil},
		{"whitespace only", " \t\n ", defaultOptions, "", nil},
		{"short terms dropped", "a lab", Options{MaxPatternLength: 32, MinTermLength: 2}, "lab", []string{"lab"}},
		{"all terms too short", "a b", Options{MaxPatternLength: 32, MinTermLength: 2}, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compile(tt.query, tt.opts)
			assert.Equal(t, tt.wantText, p.Text)

			if tt.wantTerms == nil {
				assert.True(t, p.IsEmpty())
				return
			}

			require.Len(t, p.Terms, len(tt.wantTerms))
			for i, term := range p.Terms {
				assert.Equal(t, tt.wantTerms[i], term.Text)
				assert.Equal(t, []rune(tt.wantTerms[i]), term.Runes)
			}
		})
	}
}

func TestCompile_Masks(t *testing.T) {
	p := Compile("abca", defaultOptions)
	require.Len(t, p.Terms, 1)

	term := p.Terms[0]
	require.True(t, term.Accelerated())
	assert.Equal(t, uint64(0b1001), term.Masks['a'])
	assert.Equal(t, uint64(0b0010), term.Masks['b'])
	assert.Equal(t, uint64(0b0100), term.Masks['c'])
	assert.Equal(t, uint64(0), term.Masks['z'])
}

func TestCompile_LongTermsAreNotAccelerated(t *testing.T) {
	p := Compile("chemistry lab", Options{MaxPatternLength: 5, MinTermLength: 1})
	require.Len(t, p.Terms, 2)

	assert.False(t, p.Terms[0].Accelerated(), "chemistry exceeds the bound")
	assert.Nil(t, p.Terms[0].Masks)
	assert.True(t, p.Terms[1].Accelerated(), "lab fits the bound")
}

func TestCompile_UnicodeLength(t *testing.T) {
	p := Compile("Überblick", defaultOptions)
	require.Len(t, p.Terms, 1)
	assert.Equal(t, 9, p.Terms[0].Len())
	assert.Equal(t, 9, p.Len())
	assert.Equal(t, "überblick", p.Text)
}

func TestPattern_Whole(t *testing.T) {
	single := Compile("biology", defaultOptions)
	assert.Equal(t, single.Terms[0], single.Whole())

	multi := Compile("Biology Lab", defaultOptions)
	whole := multi.Whole()
	assert.Equal(t, "biology lab", whole.Text)
	assert.Equal(t, 11, whole.Len())
}

func TestFold(t *testing.T) {
	assert.Equal(t, "intro to biology", Fold("Intro To BIOLOGY"))
	assert.Equal(t, len([]rune("ÀÉÎ")), len([]rune(Fold("ÀÉÎ"))))
}
