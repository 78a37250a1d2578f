// Package validator provides declarative field validation built from small
// Rule values.
//
// A Rule pairs a Check function with the ValidationError reported when it
// fails. Apply evaluates rules and collects failures into ValidationErrors,
// which implements error and can be inspected per field with Has, Get,
// GetErrors and Fields. Every error carries a translation key and values so
// messages can be localised by the caller.
//
// # State identifiers
//
// ValidStateID adapts pkg/stateid to this rule model. The identifier check and
// the jurisdiction check report on different fields: a format problem lands on
// the identifier field, an unknown jurisdiction on the jurisdiction field.
//
//	err := validator.Apply(
//	    validator.RequiredString("number", form.Number),
//	    validator.ValidStateID("number", "us_state", form.State, form.Number),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// Rules hold no shared state and are safe to build from concurrent goroutines.
package validator
