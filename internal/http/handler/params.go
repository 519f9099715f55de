package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"graphtrace/internal/http/handler/middleware"
)

func requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func intQuery(values url.Values, name string, fallback int) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be an integer", name)
	}
	return parsed, nil
}

func uintPath(r *http.Request, name string) (uint, error) {
	parsed, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be a positive integer", name)
	}
	return uint(parsed), nil
}

func boolQuery(values url.Values, name string) bool {
	return values.Get(name) == "true"
}
