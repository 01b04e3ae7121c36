package api

import "github.com/sabi-health/sabi-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrPhoneTaken.Error(),
		1101: store.ErrUserNotFound.Error(),
		1102: store.ErrLogNotFound.Error(),
		1103: store.ErrNotificationNotFound.Error(),
		1104: "invalid response value",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorPhoneTaken           = errorJSON(1100)
	errorUserNotFound         = errorJSON(1101)
	errorLogNotFound          = errorJSON(1102)
	errorNotificationNotFound = errorJSON(1103)
	errorInvalidResponse      = errorJSON(1104)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
