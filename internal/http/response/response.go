package response

import (
	"encoding/json"
	"net/http"

	"hrsuite/internal/common"
)

type errorBody struct {
	Code    common.Code       `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, err error) {
	appErr, ok := err.(*common.Error)
	if !ok {
		appErr = common.NewError(common.CodeInternal, "internal error", err)
	}
	JSON(w, statusFor(appErr.Code), errorEnvelope{Error: errorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Fields:  appErr.Fields,
	}})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeInvalidTransition:
		return http.StatusUnprocessableEntity
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	case common.CodePersistence, common.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
