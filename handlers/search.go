package handlers

import (
	"net/http"

	"github.com/sr-ssh/vue-table.api/enums"
	"github.com/sr-ssh/vue-table.api/models"
)

type SearchHandler struct {
	defaultSearchType enums.SearchType
}

func NewSearchHandler(defaultSearchType enums.SearchType) *SearchHandler {
	return &SearchHandler{defaultSearchType}
}

func (h *SearchHandler) GetSearchTypes(w http.ResponseWriter, r *http.Request) Result {
	return Ok(models.GetSearchTypesResponse{
		SearchTypes: enums.SearchTypes(),
		Default:     h.defaultSearchType,
	})
}
