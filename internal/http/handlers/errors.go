package handlers

import (
	"errors"
	"net/http"
	"strings"

	intdb "travelbook/internal/db"
	"travelbook/internal/domain"
	"travelbook/internal/http/middleware"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondDomainError maps an error to its kind's status. Internal errors are
// logged with the request id and answered with a generic message.
func RespondDomainError(c *gin.Context, module, action string, err error) {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		if intdb.IsBadConn(err) {
			action += ".bad_conn"
		}
		utils.LogFailure(middleware.GetRequestID(c), module, action, err)
	}
	RespondError(c, kind.HTTPStatus(), kind.Code(), domain.PublicMessage(err), nil)
}

// FieldError is one failed binding rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// RespondBindError turns gin binding failures into a 400 with per-field details.
func RespondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: strings.ToLower(fe.Field()), Rule: fe.Tag()})
		}
		RespondError(c, http.StatusBadRequest, "validation_error", "invalid request payload", details)
		return
	}
	RespondError(c, http.StatusBadRequest, "validation_error", "invalid request payload", nil)
}
