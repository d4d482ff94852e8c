package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Handler returns the outcome of a request as a Result; Respond writes it.
type Handler func(http.ResponseWriter, *http.Request) Result

type Result struct {
	Error error
	Code  int
	Body  any
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreatedResponse struct {
	ID int `json:"id"`
}

// Respond writes the status code and, when present, the JSON body.
// Internal errors never reach the client.
func (res Result) Respond(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(res.Body)
}

func (res Result) IsInternal() bool {
	return res.Code == http.StatusInternalServerError
}

func BadRequest(message string) Result {
	return errorResult(http.StatusBadRequest, message)
}

func NotFound(message string) Result {
	return errorResult(http.StatusNotFound, message)
}

func errorResult(code int, message string) Result {
	return Result{Code: code, Body: ErrorResponse{message}}
}

func InternalError(err error, message string) Result {
	return Result{
		Error: errors.Join(errors.New(message), err),
		Code:  http.StatusInternalServerError,
	}
}

func Ok(body any) Result {
	return Result{Code: http.StatusOK, Body: body}
}

func Created(id int) Result {
	return Result{Code: http.StatusCreated, Body: CreatedResponse{id}}
}
