package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/saradorri/rpsarena/internal/domain"
)

// bindJSON binds the request body and converts binding failures into the
// field-error array the API contract expects. Returns false after writing
// the 400 response when the body is rejected.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  toFieldErrors(err),
		})
		return false
	}
	return true
}

// toFieldErrors maps validator errors to the response array shape
func toFieldErrors(err error) domain.ValidationErrors {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return domain.ValidationErrors{{Field: "body", Message: "Invalid request body"}}
	}

	out := make(domain.ValidationErrors, 0, len(vErrs))
	for _, fe := range vErrs {
		out = append(out, domain.FieldError{
			Field:   jsonFieldName(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// jsonFieldName lowercases the leading rune so struct names line up with
// their camelCase JSON tags.
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	default:
		return "is invalid"
	}
}

// respondError writes an error in the API envelope. AppErrors carry their
// own HTTP status; anything else is a generic 500.
func respondError(c *gin.Context, err error) {
	var vErrs domain.ValidationErrors
	if errors.As(err, &vErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": vErrs})
		return
	}

	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, gin.H{"success": false, "message": appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
}
