package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"adreach/internal/delivery/api/response"
	deliverycontext "adreach/internal/delivery/context"
	domainerrors "adreach/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// echoErrorCodes names the router and middleware failures echo raises itself.
var echoErrorCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusTooManyRequests:       "RATE_LIMITED",
}

// ErrorMiddleware is the API's echo.HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError renders err as an error envelope. Domain errors keep their
// code and details, echo errors get a code by status and everything else is
// logged with its stack and reported as an opaque 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c, err)
		}
		_ = response.HandleAppError(c, err)

	case errors.As(err, &httpErr):
		code, ok := echoErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.log(c, err)
		}
		_ = response.Error(c, httpErr.Code, code, message, nil)

	default:
		m.log(c, err)
		_ = response.Error(c, http.StatusInternalServerError,
			domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later", nil)
	}
}

func (m *ErrorMiddleware) log(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("request failed",
		slog.Any("error", err),
		slog.String("stack", fmt.Sprintf("%+v", err)),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
}
