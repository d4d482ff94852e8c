package enums

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

var ErrUnknownSearchType = errors.New("unknown search type")

type SearchType string

const (
	SearchTypeInvalid SearchType = ""

	// SearchTypeCaseSensitive matches the query as a substring, respecting case.
	// For example, "Ada" matches "Ada Lovelace" but not "ada lovelace".
	SearchTypeCaseSensitive SearchType = "caseSensitive"

	// SearchTypePartialMatch matches the query as a substring, ignoring case.
	// For example, "ada" matches "Ada Lovelace" and "Canada".
	SearchTypePartialMatch SearchType = "partialMatch"

	// SearchTypeRegex treats the query as a regular expression (RE2 syntax).
	SearchTypeRegex SearchType = "regex"

	// SearchTypeNone disables filtering entirely.
	SearchTypeNone SearchType = "none"
)

func SearchTypes() []SearchType {
	return []SearchType{
		SearchTypeCaseSensitive,
		SearchTypePartialMatch,
		SearchTypeRegex,
		SearchTypeNone,
	}
}

// ParseSearchType maps a tag to its SearchType. Tags are compared exactly.
func ParseSearchType(s string) (SearchType, error) {
	t := SearchType(s)
	if !t.IsValid() {
		return SearchTypeInvalid, fmt.Errorf("%w: %q", ErrUnknownSearchType, s)
	}
	return t, nil
}

func (t SearchType) IsValid() bool {
	switch t {
	case SearchTypeCaseSensitive, SearchTypePartialMatch, SearchTypeRegex, SearchTypeNone:
		return true
	}
	return false
}

func (t SearchType) String() string {
	return string(t)
}

func (t SearchType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSearchType, string(t))
	}
	return []byte(t), nil
}

func (t *SearchType) UnmarshalText(text []byte) error {
	parsed, err := ParseSearchType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t SearchType) Value() (driver.Value, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSearchType, string(t))
	}
	return string(t), nil
}

func (t *SearchType) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	case nil:
		return fmt.Errorf("%w: null", ErrUnknownSearchType)
	default:
		return fmt.Errorf("scan search type: unsupported type %T", src)
	}
}
