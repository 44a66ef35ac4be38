package util

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var ErrInvalidID = errors.New("invalid id format")

// UintParam reads a positive integer id from the chi route.
func UintParam(r *http.Request, name string) (uint, error) {
	return ParseID(chi.URLParam(r, name))
}

func ParseID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidID
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, ErrInvalidID
	}
	return uint(v), nil
}
