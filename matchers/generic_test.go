package matchers

import (
	"testing"

	"github.com/sr-ssh/vue-table.api/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesCaseSensitive_Match(t *testing.T) {
	assert.True(t, MatchesCaseSensitive("Ada Lovelace", "Ada"))
	assert.True(t, MatchesCaseSensitive("Ada Lovelace", "Lovelace"))
	assert.True(t, MatchesCaseSensitive("Ada", "Ada"))
}

func TestMatchesCaseSensitive_NoMatch(t *testing.T) {
	assert.False(t, MatchesCaseSensitive("Ada Lovelace", "ada"))
	assert.False(t, MatchesCaseSensitive("Ada Lovelace", "LOVELACE"))
	assert.False(t, MatchesCaseSensitive("", "Ada"))
}

func TestMatchesPartially_Match(t *testing.T) {
	assert.True(t, MatchesPartially("Ada Lovelace", "ada"))
	assert.True(t, MatchesPartially("Canada", "ADA"))
	assert.True(t, MatchesPartially("1 Infinite Loop", "infinite"))
	assert.True(t, MatchesPartially("ÉCOLE", "école"))
}

func TestMatchesPartially_NoMatch(t *testing.T) {
	assert.False(t, MatchesPartially("Grace Hopper", "ada"))
	assert.False(t, MatchesPartially("", "ada"))
}

func TestMatchesPartially_EdgeCases(t *testing.T) {
	assert.True(t, MatchesPartially("ada", ""))
	assert.True(t, MatchesPartially("", ""))
}

func TestMatchesRegex(t *testing.T) {
	ok, err := MatchesRegex("555-0100", `^\d{3}-\d{4}$`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = MatchesRegex("Ada", `^ada$`)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = MatchesRegex("Ada", `(?i)^ada$`)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchesRegex_InvalidPattern(t *testing.T) {
	ok, err := MatchesRegex("Ada", `(unclosed`)
	assert.False(t, ok)

	var patternErr *InvalidPatternError
	require.ErrorAs(t, err, &patternErr)
	assert.Equal(t, `(unclosed`, patternErr.Pattern)
}

func TestNewMatcher_NoneMatchesEverything(t *testing.T) {
	m, err := NewMatcher(enums.SearchTypeNone, "anything")
	require.NoError(t, err)

	assert.True(t, m.Match(""))
	assert.True(t, m.Match("Ada"))
}

func TestNewMatcher_EmptyQueryMatchesEverything(t *testing.T) {
	for _, st := range enums.SearchTypes() {
		m, err := NewMatcher(st, "")
		require.NoError(t, err)
		assert.True(t, m.Match("whatever"), "search type %s", st)
	}
}

func TestNewMatcher_Modes(t *testing.T) {
	cs, err := NewMatcher(enums.SearchTypeCaseSensitive, "Ada")
	require.NoError(t, err)
	assert.True(t, cs.Match("Ada Lovelace"))
	assert.False(t, cs.Match("ada lovelace"))

	pm, err := NewMatcher(enums.SearchTypePartialMatch, "ADA")
	require.NoError(t, err)
	assert.True(t, pm.Match("Ada Lovelace"))
	assert.True(t, pm.Match("canada"))
	assert.False(t, pm.Match("Grace"))

	re, err := NewMatcher(enums.SearchTypeRegex, `^20\d{2}-01-`)
	require.NoError(t, err)
	assert.True(t, re.Match("2024-01-01"))
	assert.False(t, re.Match("2024-02-01"))
}

func TestNewMatcher_InvalidRegex(t *testing.T) {
	m, err := NewMatcher(enums.SearchTypeRegex, `[a-`)
	assert.Nil(t, m)

	var patternErr *InvalidPatternError
	require.ErrorAs(t, err, &patternErr)
	assert.Equal(t, `[a-`, patternErr.Pattern)
	assert.Contains(t, err.Error(), `invalid regex "[a-"`)
}

func TestNewMatcher_InvalidSearchType(t *testing.T) {
	m, err := NewMatcher(enums.SearchType("fuzzy"), "ada")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, enums.ErrUnknownSearchType)

	_, err = NewMatcher(enums.SearchTypeInvalid, "")
	assert.ErrorIs(t, err, enums.ErrUnknownSearchType)
}
