package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-favorites/internal/domain/model"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
)

var validate = validator.New()

// bindAndValidate decodes the body into dto. Type mismatches (a number where a string is
// expected) fail here with InvalidArgument.
func bindAndValidate(c echo.Context, dto any) error {
	if err := c.Bind(dto); err != nil {
		return apperr.InvalidArgument(msg.GetMessage("error.invalid-payload", bindMessage(err)))
	}
	if err := validate.Struct(dto); err != nil {
		return apperr.InvalidArgument(msg.GetMessage("error.invalid-payload", err.Error()))
	}
	return nil
}

func bindMessage(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if he.Internal != nil {
			return he.Internal.Error()
		}
		if m, ok := he.Message.(string); ok {
			return m
		}
	}
	return err.Error()
}

// respondError maps application errors to status codes. Unclassified errors are logged and
// hidden behind a generic message.
func respondError(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidArgument, apperr.KindNotFound, apperr.KindAlreadyExists:
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
	case apperr.KindUnauthorized:
		return c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: err.Error()})
	case apperr.KindEmptyCollection:
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
	}

	log.Error(msg.GetMessage("error.unexpected"),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("error.unexpected")})
}

// respondSoft renders a provider failure as a 200 failure payload and any other error through
// respondError.
func respondSoft(c echo.Context, value any, err error) error {
	if err == nil {
		return c.JSON(http.StatusOK, value)
	}
	if failure, ok := apperr.AsProviderFailure(err); ok {
		return c.JSON(http.StatusOK, model.ProviderFailurePayload(failure))
	}
	return respondError(c, err)
}
