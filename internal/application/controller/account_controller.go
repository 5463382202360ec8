package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-favorites/internal/application/middleware"
	"weather-favorites/internal/domain/model"
	"weather-favorites/internal/domain/usecase/account"
	"weather-favorites/internal/domain/usecase/session"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/msg"
)

type AccountController struct {
	api            *echo.Group
	accountUseCase account.UseCase
	sessionUseCase session.UseCase
}

func NewAccountController(api *echo.Group, accountUseCase account.UseCase, sessionUseCase session.UseCase) *AccountController {
	return &AccountController{api: api, accountUseCase: accountUseCase, sessionUseCase: sessionUseCase}
}

func (controller *AccountController) InitAccountRoutes() {
	controller.api.POST("/create-user", controller.CreateUser)
	controller.api.DELETE("/remove-user", controller.RemoveUser)
	controller.api.POST("/change-password", controller.ChangePassword)
	controller.api.POST("/login", controller.Login)
	controller.api.POST("/logout", controller.Logout)
}

// CreateUser godoc
// @Summary Create a user
// @Tags account
// @Accept json
// @Produce json
// @Param user body model.CredentialsDTO true "Credentials"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse "Invalid payload or duplicated user"
// @Failure 500 {object} model.ErrorResponse
// @Router /create-user [post]
func (controller *AccountController) CreateUser(c echo.Context) error {
	var dto model.CredentialsDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return respondError(c, err)
	}

	if err := controller.accountUseCase.CreateUser(c.Request().Context(), dto.Username, dto.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResponse{Status: "success", Username: dto.Username})
}

// RemoveUser godoc
// @Summary Remove a user
// @Description Marks the user as deleted; the row is purged later by the purge job.
// @Tags account
// @Accept json
// @Produce json
// @Param user body model.UsernameDTO true "Username"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse "User not found"
// @Failure 500 {object} model.ErrorResponse
// @Router /remove-user [delete]
func (controller *AccountController) RemoveUser(c echo.Context) error {
	var dto model.UsernameDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return respondError(c, err)
	}

	if err := controller.accountUseCase.RemoveUser(c.Request().Context(), dto.Username); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResponse{Status: "success", Username: dto.Username})
}

// ChangePassword godoc
// @Summary Change the password of a user
// @Tags account
// @Accept json
// @Produce json
// @Param user body model.CredentialsDTO true "Username and new password"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse "User not found"
// @Failure 500 {object} model.ErrorResponse
// @Router /change-password [post]
func (controller *AccountController) ChangePassword(c echo.Context) error {
	var dto model.CredentialsDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return respondError(c, err)
	}

	if err := controller.accountUseCase.ChangePassword(c.Request().Context(), dto.Username, dto.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResponse{Status: "success", Username: dto.Username})
}

// Login godoc
// @Summary Log in
// @Description Checks the credentials and restores the saved favorites. Send the returned user_id as X-User-Id.
// @Tags account
// @Accept json
// @Produce json
// @Param user body model.CredentialsDTO true "Credentials"
// @Success 200 {object} model.LoginResult
// @Failure 400 {object} model.ErrorResponse "Invalid payload or unknown user"
// @Failure 401 {object} model.LoginResult "Wrong password"
// @Failure 500 {object} model.ErrorResponse
// @Router /login [post]
func (controller *AccountController) Login(c echo.Context) error {
	var dto model.CredentialsDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	result, err := controller.accountUseCase.Login(ctx, dto.Username, dto.Password)
	if err != nil {
		return respondError(c, err)
	}
	if !result.Success {
		return c.JSON(http.StatusUnauthorized, result)
	}

	if _, err := controller.sessionUseCase.Login(ctx, result.UserID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Logout godoc
// @Summary Log out
// @Description Saves the favorites into the session and clears them from memory.
// @Tags account
// @Produce json
// @Param X-User-Id header string true "User id returned by login"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse "Session not found"
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /logout [post]
func (controller *AccountController) Logout(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return respondError(c, apperr.Unauthorized(msg.GetMessage("error.login-required")))
	}

	if err := controller.sessionUseCase.Logout(c.Request().Context(), userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResponse{Status: "success", UserID: userID})
}
