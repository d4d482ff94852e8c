package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/sr-ssh/vue-table.api/data"
	"github.com/sr-ssh/vue-table.api/enums"
	"github.com/sr-ssh/vue-table.api/matchers"
	"github.com/sr-ssh/vue-table.api/metrics"
	"github.com/sr-ssh/vue-table.api/models"
)

// maxBodyBytes bounds user create and update payloads.
const maxBodyBytes = 1 << 16

type UserStore interface {
	InsertUser(user data.User) (int, error)
	GetUserByID(id int) (*data.User, error)
	GetUsers() ([]data.User, error)
	UpdateUser(user data.User) (bool, error)
	DeleteUser(id int) (bool, error)
}

type UserHandler struct {
	userRepo          UserStore
	defaultSearchType enums.SearchType
}

func NewUserHandler(repo UserStore, defaultSearchType enums.SearchType) *UserHandler {
	return &UserHandler{
		userRepo:          repo,
		defaultSearchType: defaultSearchType,
	}
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) Result {
	query := r.URL.Query().Get("q")

	searchType, res, ok := h.searchTypeFromRequest(r, query)
	if !ok {
		return res
	}

	users, err := h.userRepo.GetUsers()
	if err != nil {
		return InternalError(err, "get users")
	}

	all := make([]models.User, 0, len(users))
	for _, u := range users {
		all = append(all, u.ToModel())
	}

	filtered, err := matchers.FilterUsers(all, searchType, query)
	if err != nil {
		var patternErr *matchers.InvalidPatternError
		if errors.As(err, &patternErr) {
			metrics.SearchErrorsTotal.WithLabelValues("invalid_pattern").Inc()
			return BadRequest("Invalid regular expression.")
		}
		return InternalError(err, "get users: filter")
	}
	metrics.SearchesTotal.WithLabelValues(searchType.String()).Inc()

	return Ok(models.GetUsersResponse{
		Users:      filtered,
		Total:      len(filtered),
		Query:      query,
		SearchType: searchType,
	})
}

// searchTypeFromRequest resolves the searchType query parameter. Without one, a
// non-empty query uses the configured default and an empty query uses none.
func (h *UserHandler) searchTypeFromRequest(r *http.Request, query string) (enums.SearchType, Result, bool) {
	raw := r.URL.Query().Get("searchType")
	if raw == "" {
		if query == "" {
			return enums.SearchTypeNone, Result{}, true
		}
		return h.defaultSearchType, Result{}, true
	}

	searchType, err := enums.ParseSearchType(raw)
	if err != nil {
		metrics.SearchErrorsTotal.WithLabelValues("unknown_search_type").Inc()
		return enums.SearchTypeInvalid, BadRequest("Invalid search type. Valid types are caseSensitive, partialMatch, regex and none."), false
	}

	return searchType, Result{}, true
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) Result {
	id, ok := userID(r)
	if !ok {
		return BadRequest("Invalid user ID.")
	}

	user, err := h.userRepo.GetUserByID(id)
	if err != nil {
		return InternalError(err, "get user")
	}
	if user == nil {
		return NotFound("User not found.")
	}

	return Ok(user.ToModel())
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) Result {
	var req models.CreateUserRequest
	if res, ok := decodeJSON(w, r, &req); !ok {
		return res
	}

	if err := models.Validate(req); err != nil {
		return BadRequest(models.ValidationMessage(err))
	}

	id, err := h.userRepo.InsertUser(data.User{
		Name:    req.Name,
		Date:    req.Date,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return InternalError(err, "create user")
	}

	return Created(id)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) Result {
	id, ok := userID(r)
	if !ok {
		return BadRequest("Invalid user ID.")
	}

	var req models.UpdateUserRequest
	if res, ok := decodeJSON(w, r, &req); !ok {
		return res
	}

	user := models.User{
		ID:      id,
		Name:    req.Name,
		Date:    req.Date,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := models.Validate(user); err != nil {
		return BadRequest(models.ValidationMessage(err))
	}

	found, err := h.userRepo.UpdateUser(data.FromModel(user))
	if err != nil {
		return InternalError(err, "update user")
	}
	if !found {
		return NotFound("User not found.")
	}

	return Ok(user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) Result {
	id, ok := userID(r)
	if !ok {
		return BadRequest("Invalid user ID.")
	}

	found, err := h.userRepo.DeleteUser(id)
	if err != nil {
		return InternalError(err, "delete user")
	}
	if !found {
		return NotFound("User not found.")
	}

	return Ok(nil)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) (Result, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return BadRequest("Request body too large."), false
		}
		return BadRequest("Invalid request."), false
	}
	return Result{}, true
}

// userID reads the id path value. Ids live in an int4 SERIAL column.
func userID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 || id > math.MaxInt32 {
		return 0, false
	}
	return id, true
}
