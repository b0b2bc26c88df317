package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// Error kinds form a closed set; every failure response carries one of
// these alongside a free-text message.
const (
	ErrKindValidation     = "validation"
	ErrKindCredentials    = "credentials"
	ErrKindAuthentication = "authentication"
	ErrKindForbidden      = "forbidden"
	ErrKindNotFound       = "not_found"
	ErrKindUpstream       = "upstream"
)

func CreateError(statusCode int, kind string, message string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{"error": kind, "message": message})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, ErrKindUpstream, "internal server error", ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, ErrKindNotFound, "not found", ctx)
}

func CreateForbidden(ctx iris.Context) {
	CreateError(iris.StatusForbidden, ErrKindForbidden, "forbidden", ctx)
}

// HandleValidationErrors maps a ReadJSON failure onto a 422. Field errors
// from the validator are listed individually.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]iris.Map, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, iris.Map{
				"field": fieldErr.Field(),
				"tag":   fieldErr.Tag(),
			})
		}
		ctx.StopWithJSON(iris.StatusUnprocessableEntity, iris.Map{
			"error":   ErrKindValidation,
			"message": "invalid input",
			"fields":  fields,
		})
		return
	}

	CreateError(iris.StatusUnprocessableEntity, ErrKindValidation, err.Error(), ctx)
}
