package matchers

import (
	"strconv"

	"github.com/sr-ssh/vue-table.api/enums"
	"github.com/sr-ssh/vue-table.api/models"
)

// MatchesUser returns true if any column of the user satisfies m.
// The id column is compared in its decimal form.
func MatchesUser(m Matcher, user models.User) bool {
	return m.Match(strconv.Itoa(user.ID)) ||
		m.Match(user.Name) ||
		m.Match(user.Date) ||
		m.Match(user.Address) ||
		m.Match(user.Phone)
}

// FilterUsers returns the users matching query under searchType, in their original order.
func FilterUsers(users []models.User, searchType enums.SearchType, query string) ([]models.User, error) {
	m, err := NewMatcher(searchType, query)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if MatchesUser(m, u) {
			filtered = append(filtered, u)
		}
	}

	return filtered, nil
}
