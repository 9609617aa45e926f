// Package httpx holds the JSON request/response plumbing shared by the
// route handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var ErrInvalidID = errors.New("invalid id")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Error: message})
}

func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, OKResponse{OK: true})
}

// Decode reads a JSON body into dst and runs the presence checks declared
// on it. The error is already written when ok is false.
func Decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			Error(w, http.StatusBadRequest, "invalid request body")
			return false
		}
		fields := make(map[string]string, len(ve))
		for _, fieldErr := range ve {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		JSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: fields})
		return false
	}
	return true
}

// PathID parses a numeric route variable.
func PathID(r *http.Request, name string) (uint, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
