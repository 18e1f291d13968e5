// Package validation checks configuration and request input.
//
// Struct tags cover configuration and query parameters:
//
//	type topQuery struct {
//	    Count int `form:"count" validate:"gte=0,lte=500"`
//	}
//	err := validation.Validate(q)
//
// The programmatic Validator collects field errors for checks that tags
// cannot express:
//
//	v := validation.New()
//	v.Required("language", lang).Custom(lang != "None", "language", "is not supported")
//	err := v.Validate()
//
// Both report an *errors.AppError with code INVALID_INPUT and the failing
// fields under Details["fields"].
package validation
