// Package validator provides composable field validation rules for the
// request pipeline and the auth flows.
//
// Rules are small closures bundled with the user-facing error they produce.
// Apply runs every rule and collects all failures; First runs rules in order
// and stops at the first failure, which is the behavior the HTTP validation
// middleware depends on.
//
//	err := validator.Apply(
//		validator.ValidEmail("email", email),
//		validator.StrongPassword("password", password),
//	)
//
// Numeric request fields arrive as JSON numbers or as strings from the URL;
// the Parse* helpers coerce and validate them in one step and return the
// typed value alongside a ValidationError on failure.
package validator
