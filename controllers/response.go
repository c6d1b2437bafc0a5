package controllers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kendall-kelly/ecommerce-api/apperrors"
	"github.com/kendall-kelly/ecommerce-api/middleware"
	"github.com/kendall-kelly/ecommerce-api/utils"
	"go.uber.org/zap"
)

// MessageResponse is the body of operations that return no record
type MessageResponse struct {
	Message string `json:"message"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report JSON keys ("user_id")
// instead of Go field names ("UserID")
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(field reflect.StructField) string {
				name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

// bindJSON decodes and validates the request body into obj. Failures come
// back as application errors carrying a per-field message map.
func bindJSON(c *gin.Context, obj interface{}) error {
	useJSONFieldNames()

	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return apperrors.Validation(fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.Validation(map[string]string{
			typeErr.Field: "Not a valid " + typeName(typeErr.Type.Kind()) + ".",
		})
	}

	return apperrors.InvalidJSON(err)
}

// validationMessage renders a single validator failure for API clients
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "email":
		return "Not a valid email address."
	case "gte":
		return "Must be greater than or equal to " + fe.Param() + "."
	case "gt":
		return "Must be greater than " + fe.Param() + "."
	case "min":
		return "Shorter than minimum length " + fe.Param() + "."
	case "max":
		return "Longer than maximum length " + fe.Param() + "."
	}
	return "Invalid value."
}

func typeName(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	}
	return "value"
}

// pathID parses a positive integer path parameter. A malformed value means
// no route matched, so it is answered with 404.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseID(name, c.Param(name))
	if err != nil {
		notFound := apperrors.NotFound("Resource not found")
		c.JSON(notFound.Status, notFound)
		return 0, false
	}
	return id, true
}

// respondError writes err as a JSON error body. Unexpected errors are logged
// and rendered as 500 without leaking their cause.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	appErr := apperrors.From(err)
	if appErr.Status >= 500 {
		_ = c.Error(err)
		log.Error(appErr.Message,
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.Status, appErr)
}
