package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/server/http/dto"
	"github.com/polkiloo/accounts/internal/server/http/middleware"
)

const maxFormMemory = 1 << 20

// CurrentEmail extracts the authenticated account email from context.
func CurrentEmail(c *gin.Context) string {
	return c.GetString(middleware.EmailContextKey)
}

// bindAccountForm reads the form body, rejecting requests without fields or
// without an email key before binding.
func bindAccountForm(c *gin.Context) (dto.AccountForm, error) {
	var form dto.AccountForm
	err := c.Request.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return form, fmt.Errorf("parse form: %w", err)
	}

	fields := c.Request.PostForm
	if len(fields) == 0 {
		return form, domainErrors.ErrEmptyRequest
	}
	if _, ok := fields["email"]; !ok {
		return form, domainErrors.ErrMissingEmail
	}

	if err := c.ShouldBindWith(&form, binding.FormPost); err != nil {
		return form, fmt.Errorf("bind form: %w", err)
	}
	return form, nil
}
