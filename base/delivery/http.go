package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
	// JsonResponseStatusPending is a submitted transaction without a verdict
	JsonResponseStatusPending JsonResponseStatus = "pending"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

type ErrorBody struct {
	Message string        `json:"message"`
	Rule    string        `json:"rule,omitempty"`
	Hash    domain.TxHash `json:"hash,omitempty"`
	Reason  string        `json:"reason,omitempty"`
}

// StatusOf maps the error taxonomy to an http status, fallback otherwise
func StatusOf(err error, fallback int) int {
	var (
		validationErr *domain.ValidationError
		unknownErr    *domain.StatusUnknownError
	)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNotMounted):
		return http.StatusNotFound
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrUnsupportedAction):
		return http.StatusBadRequest
	case domain.IsSignatureError(err):
		return http.StatusUnauthorized
	case errors.As(err, &unknownErr):
		return http.StatusAccepted
	case domain.IsSubmissionError(err):
		return http.StatusConflict
	case domain.IsSyncError(err):
		return http.StatusServiceUnavailable
	}
	return fallback
}

func errorBody(err error) ErrorBody {
	body := ErrorBody{Message: err.Error()}
	var (
		validationErr *domain.ValidationError
		submissionErr *domain.SubmissionError
		unknownErr    *domain.StatusUnknownError
	)
	if errors.As(err, &validationErr) {
		body.Rule = validationErr.Rule
	}
	if errors.As(err, &submissionErr) {
		body.Hash = submissionErr.Hash
		body.Reason = submissionErr.Reason
	}
	if errors.As(err, &unknownErr) {
		body.Hash = unknownErr.Hash
	}
	return body
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		body := errorBody(err)
		if status == http.StatusAccepted {
			return c.JSON(status, JsonResponse{body, JsonResponseStatusPending})
		}
		return c.JSON(status, JsonResponse{body, JsonResponseStatusFail})
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
