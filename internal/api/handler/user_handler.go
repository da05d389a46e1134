package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/metrics"
	"github.com/vidtube/video-platform/internal/api/response"
	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// UserHandler handles HTTP requests for the account lifecycle.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

type authResponse struct {
	User         domain.PublicProfile `json:"user"`
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
}

// --- Cookie helpers ---

func authCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

func setAuthCookies(c echo.Context, tokens ports.TokenPair) {
	c.SetCookie(authCookie("accessToken", tokens.AccessToken, 0))
	c.SetCookie(authCookie("refreshToken", tokens.RefreshToken, 0))
}

func clearAuthCookies(c echo.Context) {
	c.SetCookie(authCookie("accessToken", "", -1))
	c.SetCookie(authCookie("refreshToken", "", -1))
}

// formFile opens one multipart file by field name. Returns (nil, nil, nil)
// when the field is absent so optional uploads fall through cleanly.
func formFile(c echo.Context, field string) (*ports.FileUpload, multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	return &ports.FileUpload{
		Reader:      f,
		Size:        fh.Size,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}, f, nil
}

// Register creates a new account from a multipart form.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        username   formData  string  true   "Unique handle"
// @Param        email      formData  string  true   "Email address"
// @Param        fullName   formData  string  true   "Display name"
// @Param        password   formData  string  true   "Password"
// @Param        avatar     formData  file    true   "Avatar image"
// @Param        coverImage formData  file    false  "Cover image"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Error
// @Failure      409  {object}  response.Error
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	avatar, avatarFile, err := formFile(c, "avatar")
	if err != nil {
		return err
	}
	if avatarFile != nil {
		defer avatarFile.Close()
	}

	cover, coverFile, err := formFile(c, "coverImage")
	if err != nil {
		return err
	}
	if coverFile != nil {
		defer coverFile.Close()
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Username:   c.FormValue("username"),
		Email:      c.FormValue("email"),
		FullName:   c.FormValue("fullName"),
		Password:   c.FormValue("password"),
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues("avatar").Inc()
	if cover != nil {
		metrics.UploadsTotal.WithLabelValues("cover_image").Inc()
	}
	return response.JSON(c, http.StatusCreated, user, "user registered successfully")
}

// Login authenticates by username or email and starts a session.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Error
// @Failure      404   {object}  response.Error
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	setAuthCookies(c, result.Tokens)
	return response.JSON(c, http.StatusOK, authResponse{
		User:         result.User.Public(),
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}, "user logged in successfully")
}

// Logout ends the session and clears the auth cookies.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Logout(c.Request().Context(), user.ID); err != nil {
		return err
	}
	clearAuthCookies(c)
	return response.JSON(c, http.StatusOK, nil, "user logged out successfully")
}

// Refresh rotates the session from a refresh token found in the cookie or,
// failing that, the request body.
//
// @Summary      Refresh the session tokens
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  false  "Refresh token (when not sent as cookie)"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Error
// @Router       /users/refresh-token [post]
func (h *UserHandler) Refresh(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie("refreshToken"); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized request")
	}

	result, err := h.service.Refresh(c.Request().Context(), token)
	if err != nil {
		return err
	}

	setAuthCookies(c, result.Tokens)
	return response.JSON(c, http.StatusOK, authResponse{
		User:         result.User.Public(),
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}, "access token refreshed")
}

// ChangePassword replaces the caller's password after re-verifying the old one.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Error
// @Router       /users/change-password [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ChangePassword(c.Request().Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, nil, "password changed successfully")
}

// CurrentUser returns the authenticated account.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /users/current-user [get]
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, user, "current user fetched successfully")
}

// UpdateAccount updates the caller's full name and email.
//
// @Summary      Update account details
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateAccountRequest  true  "New details"
// @Success      200   {object}  response.Response
// @Router       /users/update-account [patch]
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateAccount(c.Request().Context(), user.ID, req.FullName, req.Email)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, updated, "account details updated successfully")
}

// UpdateAvatar replaces the caller's avatar image.
//
// @Summary      Update avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData  file  true  "Avatar image"
// @Success      200     {object}  response.Response
// @Router       /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	avatar, file, err := formFile(c, "avatar")
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	updated, err := h.service.UpdateAvatar(c.Request().Context(), user.ID, avatar)
	if err != nil {
		return err
	}
	metrics.UploadsTotal.WithLabelValues("avatar").Inc()
	return response.JSON(c, http.StatusOK, updated, "avatar updated successfully")
}

// UpdateCoverImage replaces the caller's cover image.
//
// @Summary      Update cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        coverImage  formData  file  true  "Cover image"
// @Success      200         {object}  response.Response
// @Router       /users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	cover, file, err := formFile(c, "coverImage")
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	updated, err := h.service.UpdateCoverImage(c.Request().Context(), user.ID, cover)
	if err != nil {
		return err
	}
	metrics.UploadsTotal.WithLabelValues("cover_image").Inc()
	return response.JSON(c, http.StatusOK, updated, "cover image updated successfully")
}

// ChannelProfile returns a channel page with subscriber counts. When the
// viewer is authenticated the response carries their subscription flag.
//
// @Summary      Get a channel profile by username
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Channel handle"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Error
// @Router       /users/c/{username} [get]
func (h *UserHandler) ChannelProfile(c echo.Context) error {
	profile, err := h.service.ChannelProfile(c.Request().Context(), c.Param("username"), ctxUserID(c))
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, profile, "channel profile fetched successfully")
}

// WatchHistory returns the caller's watch history, most recent last.
//
// @Summary      Get watch history
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /users/history [get]
func (h *UserHandler) WatchHistory(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	history, err := h.service.WatchHistory(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, history, "watch history fetched successfully")
}
