package models

import "github.com/sr-ssh/vue-table.api/enums"

type User struct {
	ID      int    `json:"id" validate:"gt=0,lte=2147483647"`
	Name    string `json:"name" validate:"required,max=100"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Address string `json:"address" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=32"`
}

type CreateUserRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Address string `json:"address" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=32"`
}

type UpdateUserRequest = CreateUserRequest

type GetUsersResponse struct {
	Users      []User           `json:"users"`
	Total      int              `json:"total"`
	Query      string           `json:"query"`
	SearchType enums.SearchType `json:"searchType"`
}

type GetSearchTypesResponse struct {
	SearchTypes []enums.SearchType `json:"searchTypes"`
	Default     enums.SearchType   `json:"default"`
}
