// Package errors provides the structured errors used across rpg-spellbook.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Codes survive wrapping, so a NotFound raised by a repository is
// still a NotFound when the handler converts it to a gRPC status.
//
// Creating and wrapping:
//
//	err := errors.NotFoundf("filter view %s not found", id)
//	return errors.Wrap(err, "failed to load view")
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // fall back to the default columns
//	}
//
// Validating configs:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("Field", cfg.Field, vb)
//	return vb.Build()
//
// Layer guidelines:
//   - repositories return NotFound for missing keys and wrap storage errors
//   - orchestrators validate inputs with InvalidArgument
//   - handlers convert with ToGRPCError
//
// The column filters themselves never return errors: bad external input
// degrades to "matches nothing" or "inactive".
package errors
