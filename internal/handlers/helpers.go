package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "budgetapi/internal/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Not found"`
}

// bindJSON decodes the request body into obj and runs its binding rules.
// Any failure is returned as ErrInvalidInput with a field-level message.
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return invalidInput(err)
	}
	return nil
}

func invalidInput(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fieldMessage(verrs[0]))
	}
	if errors.Is(err, io.EOF) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "request body is required")
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "transaction_type", "category_type":
		return fe.Field() + " must be income or expense"
	default:
		return fe.Field() + " is invalid"
	}
}

// queryPtr returns a pointer to the query value, or nil when it is absent or
// empty.
func queryPtr[T ~string](c *gin.Context, key string) *T {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	t := T(v)
	return &t
}
