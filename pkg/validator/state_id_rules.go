package validator

import (
	"fmt"

	"github.com/dmitrymomot/stateid/pkg/stateid"
)

// ValidStateID validates a state-issued identifier against the format of the
// jurisdiction held in state. Format errors are reported on field; an unknown
// jurisdiction is reported on stateField instead, since the identifier itself
// cannot be judged.
func ValidStateID(field, stateField, state, value string) Rule {
	verdict := stateid.Validate(state, value)

	errField := field
	key := "validation.state_id_format"
	if verdict.Kind == stateid.KindUnknownJurisdiction {
		errField = stateField
		key = "validation.state_id_jurisdiction"
	}

	return Rule{
		Check: verdict.Valid,
		Error: ValidationError{
			Field:          errField,
			Message:        verdict.Message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field":    errField,
				"state":    state,
				"synopsis": verdict.Synopsis,
			},
		},
	}
}

// ValidJurisdiction validates that state is blank or a known jurisdiction code.
func ValidJurisdiction(field, state string) Rule {
	return Rule{
		Check: func() bool {
			return stateid.IsKnown(state)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s is not valid", state),
			TranslationKey: "validation.state_id_jurisdiction",
			TranslationValues: map[string]any{
				"field": field,
				"state": state,
			},
		},
	}
}
