package ads

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// QueryError reports a query the API rejected.
type QueryError struct {
	StatusCode int
	Status     string // e.g. INVALID_ARGUMENT
	Message    string
	RequestID  string
}

func (e *QueryError) Error() string {
	return e.Message
}

// apiError is the google.rpc.Status JSON envelope.
type apiError struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []errorDetail `json:"details"`
}

// errorDetail carries a GoogleAdsFailure when @type says so.
type errorDetail struct {
	Type   string `json:"@type"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	RequestID string `json:"requestId"`
}

// queryError prefers the first GoogleAdsFailure message, which names the
// offending field, over the generic status message.
func (e *apiError) queryError(statusCode int) *QueryError {
	qe := &QueryError{StatusCode: statusCode, Status: e.Status, Message: e.Message}
	if e.Code != 0 {
		qe.StatusCode = e.Code
	}
	for _, d := range e.Details {
		if !strings.HasSuffix(d.Type, "GoogleAdsFailure") {
			continue
		}
		qe.RequestID = d.RequestID
		if len(d.Errors) > 0 && d.Errors[0].Message != "" {
			qe.Message = d.Errors[0].Message
		}
		break
	}
	if qe.Message == "" {
		qe.Message = http.StatusText(qe.StatusCode)
	}
	return qe
}

// parseErrorBody decodes a failed response. searchStream wraps the error in
// an array; the other methods return it bare.
func parseErrorBody(statusCode int, body []byte) error {
	var env struct {
		Error *apiError `json:"error"`
	}
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var batches []struct {
			Error *apiError `json:"error"`
		}
		if err := json.Unmarshal(body, &batches); err == nil && len(batches) > 0 {
			env.Error = batches[0].Error
		}
	} else {
		_ = json.Unmarshal(body, &env)
	}
	if env.Error == nil {
		return &QueryError{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("status %d: %s", statusCode, trimmed),
		}
	}
	return env.Error.queryError(statusCode)
}
