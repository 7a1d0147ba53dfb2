package jsonerr

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Body is the error envelope written by Error.
type Body struct {
	Success bool   `json:"success"`
	Error   Detail `json:"error"`
}

// Detail describes what went wrong.
type Detail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error writes structured error information to w using the Wusul API error
// envelope. The given status code is used if it is non-zero, otherwise it
// is set to 500. The error code is derived from the status text, e.g.
// "NOT_FOUND" for 404.
//
// If err is nil it sets the status to 200 OK and writes:
//
//	{"success": true}
func Error(w http.ResponseWriter, err error, code int) {
	if code == 0 {
		code = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if err == nil {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": true}` + "\n"))
		return
	}

	data, _ := json.MarshalIndent(&Body{
		Success: false,
		Error: Detail{
			Code:    Code(code),
			Message: err.Error(),
		},
	}, "", "  ")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// Code returns the error code used for an HTTP status.
func Code(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}
