package validators

import "context"

// Validator performs structural validation of inbound domain models before
// they reach the service layer's business rules.
//
// Validate dispatches on the dynamic type of obj. Optional field names
// restrict validation to the named subset; when omitted, the full default
// field set of the model is validated.
//
// Rule violations are reported as a single *[ValidationError] carrying every
// violation found in one pass, so callers can surface all problems at once
// instead of the first only.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
