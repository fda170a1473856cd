package services

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"
)

// BindClientValidation rejects create and update requests on the clients
// collection whose tax or contact fields are malformed. The API error carries
// one entry per offending field.
func BindClientValidation(app core.App) {
	validate := func(e *core.RecordRequestEvent) error {
		if errs := ValidateClientRecord(e.Record); len(errs) > 0 {
			return e.BadRequestError("Invalid client fields.", clientValidationErrors(errs))
		}
		return e.Next()
	}
	app.OnRecordCreateRequest("clients").BindFunc(validate)
	app.OnRecordUpdateRequest("clients").BindFunc(validate)
}

func clientValidationErrors(errs map[string]string) validation.Errors {
	out := make(validation.Errors, len(errs))
	for field, msg := range errs {
		out[field] = validation.NewError("validation_invalid_"+field, msg)
	}
	return out
}
