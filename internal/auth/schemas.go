package auth

import "github.com/inkwellhq/inkwell/pkg/schema"

// Request schemas for the auth surface. Composed once at init; a field
// collision between composed parts is a programming error and panics.
var (
	emailSchema = schema.Schema{
		Name: "email",
		Body: schema.FieldSpec{
			{Name: "email", Parse: schema.Email()},
		},
	}

	passwordSchema = schema.Schema{
		Name: "password",
		Body: schema.FieldSpec{
			{Name: "password", Parse: schema.Password()},
		},
	}

	tokenSchema = schema.Schema{
		Name: "token",
		Body: schema.FieldSpec{
			{Name: "token", Parse: schema.Token()},
		},
	}

	credentialsSchema = schema.MustCompose("credentials", emailSchema, passwordSchema)
	magicLoginSchema  = schema.MustCompose("magic_login", tokenSchema, emailSchema)
)
