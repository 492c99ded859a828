package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/accounts/internal/server/http/dto"
	"github.com/polkiloo/accounts/internal/server/http/middleware"
)

// AccountHandler processes the account routes.
type AccountHandler struct {
	facade   AccountFacade
	statuses StatusMapper
	logger   *slog.Logger
}

// NewAccountHandler creates AccountHandler instance.
func NewAccountHandler(facade AccountFacade, statuses StatusMapper, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{facade: facade, statuses: statuses, logger: logger}
}

// Home handles GET /.
func (h *AccountHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, dto.AccountResponse{Status: dto.OutcomeOK, Message: "accounts service is running"})
}

// Register handles POST /register.
func (h *AccountHandler) Register(c *gin.Context) {
	form, err := bindAccountForm(c)
	if err != nil {
		h.fail(c, RouteRegister, err)
		return
	}

	if err := h.facade.Register(c.Request.Context(), form.Email, form.Username, form.Password); err != nil {
		h.fail(c, RouteRegister, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{Status: dto.OutcomeRegistered, Message: "registration successful"})
}

// Login handles POST /login.
func (h *AccountHandler) Login(c *gin.Context) {
	form, err := bindAccountForm(c)
	if err != nil {
		h.fail(c, RouteLogin, err)
		return
	}

	username, token, err := h.facade.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		h.fail(c, RouteLogin, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AccountResponse{Status: dto.OutcomeLoginOK, Message: "login successful", Username: username})
}

// Update handles POST /update.
func (h *AccountHandler) Update(c *gin.Context) {
	form, err := bindAccountForm(c)
	if err != nil {
		h.fail(c, RouteUpdate, err)
		return
	}

	username, err := h.facade.Update(c.Request.Context(), form.Email, form.Username, form.Password)
	if err != nil {
		h.fail(c, RouteUpdate, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{Status: dto.OutcomeUpdated, Message: "account updated", Username: username})
}

// Delete handles POST /delete.
func (h *AccountHandler) Delete(c *gin.Context) {
	form, err := bindAccountForm(c)
	if err != nil {
		h.fail(c, RouteDelete, err)
		return
	}

	if err := h.facade.Delete(c.Request.Context(), form.Email, form.Password); err != nil {
		h.fail(c, RouteDelete, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{Status: dto.OutcomeDeleted, Message: "account deleted"})
}

// Profile handles GET /me for an authenticated session.
func (h *AccountHandler) Profile(c *gin.Context) {
	user, err := h.facade.Profile(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		h.fail(c, RouteProfile, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Status: dto.OutcomeOK, Username: user.Username, Email: user.Email})
}

func (h *AccountHandler) fail(c *gin.Context, route Route, err error) {
	outcome, message := describe(err)
	if outcome == dto.OutcomeInternalError {
		h.logger.Error("account request failed",
			slog.String("route", string(route)),
			slog.String("request_id", middleware.RequestIDFrom(c)),
			slog.String("error", err.Error()),
		)
	}
	c.JSON(h.statuses.Status(route, err), dto.AccountResponse{Status: outcome, Message: message})
}
