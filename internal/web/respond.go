package web

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	apperr "github.com/characterforge/characterforge/internal/errors"
)

// httpStatus maps an error's code to a response status.
func httpStatus(err error) int {
	switch apperr.GetCode(err) {
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeInvalidArgument, apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeAlreadyExists:
		return http.StatusConflict
	case apperr.CodePermissionDenied:
		return http.StatusForbidden
	case apperr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case apperr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, err error) {
	writeJSON(w, httpStatus(err), map[string]string{"error": err.Error()})
}

// redirectFlash redirects carrying a one-line message in the query string;
// templates surface it as a flash banner.
func redirectFlash(w http.ResponseWriter, r *http.Request, path, kind, message string) {
	q := url.Values{}
	q.Set(kind, message)
	http.Redirect(w, r, path+"?"+q.Encode(), http.StatusSeeOther)
}

func redirectOK(w http.ResponseWriter, r *http.Request, path, message string) {
	redirectFlash(w, r, path, "ok", message)
}

func redirectError(w http.ResponseWriter, r *http.Request, path string, err error) {
	if status := httpStatus(err); status >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		redirectFlash(w, r, path, "error", "something went wrong")
		return
	}
	redirectFlash(w, r, path, "error", err.Error())
}
