package matchers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/sr-ssh/vue-table.api/enums"
)

// MatchesCaseSensitive returns true if query appears in text with the same case.
func MatchesCaseSensitive(text, query string) bool {
	return strings.Contains(text, query)
}

// MatchesPartially returns true if query appears anywhere in text, ignoring case.
func MatchesPartially(text, query string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

func MatchesRegex(text, pattern string) (bool, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// Matcher reports whether a single value satisfies a search.
type Matcher interface {
	Match(text string) bool
}

type MatcherFunc func(text string) bool

func (f MatcherFunc) Match(text string) bool {
	return f(text)
}

var matchAll = MatcherFunc(func(string) bool { return true })

// NewMatcher builds a Matcher for the given search type and query.
// SearchTypeNone and an empty query both accept everything.
func NewMatcher(searchType enums.SearchType, query string) (Matcher, error) {
	if !searchType.IsValid() {
		return nil, errors.Wrap(enums.ErrUnknownSearchType, "new matcher")
	}

	if searchType == enums.SearchTypeNone || query == "" {
		return matchAll, nil
	}

	switch searchType {
	case enums.SearchTypeCaseSensitive:
		return MatcherFunc(func(text string) bool {
			return MatchesCaseSensitive(text, query)
		}), nil
	case enums.SearchTypePartialMatch:
		return MatcherFunc(func(text string) bool {
			return MatchesPartially(text, query)
		}), nil
	default:
		re, err := compilePattern(query)
		if err != nil {
			return nil, err
		}
		return MatcherFunc(re.MatchString), nil
	}
}

type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid regex %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}
