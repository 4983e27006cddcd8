package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mialde/Micheldekker/internal/common"
)

// ErrorCollector counts 5xx responses; wired to the metrics collector.
type ErrorCollector interface {
	IncErrors()
}

var collector ErrorCollector

func SetErrorCollector(c ErrorCollector) {
	collector = c
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Error  string            `json:"error"`
	Code   common.Code       `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

func Error(w http.ResponseWriter, err error) {
	var coded *common.Error
	if !errors.As(err, &coded) {
		coded = common.NewError(common.CodeInternal, "internal error", err)
	}
	status := statusFor(coded.Code)
	if status >= http.StatusInternalServerError && collector != nil {
		collector.IncErrors()
	}
	JSON(w, status, errorBody{Error: coded.Message, Code: coded.Code, Fields: coded.Fields})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
