package schema

import "context"

type contextKey struct{}

// Validated carries the coerced request data for a request that passed
// validation. Keys are field names; values are whatever the field's parse
// function returned (string for text fields, int64 for numeric ones).
type Validated struct {
	Body  map[string]any
	Param map[string]any
	Query map[string]any
}

// BodyString returns a string body field, or "" when absent.
func (v Validated) BodyString(name string) string {
	s, _ := v.Body[name].(string)
	return s
}

// QueryString returns a string query field, or "" when absent.
func (v Validated) QueryString(name string) string {
	s, _ := v.Query[name].(string)
	return s
}

// ParamInt returns a numeric URL param, or 0 when absent.
func (v Validated) ParamInt(name string) int64 {
	n, _ := v.Param[name].(int64)
	return n
}

// QueryInt returns a numeric query field, or 0 when absent.
func (v Validated) QueryInt(name string) int64 {
	n, _ := v.Query[name].(int64)
	return n
}

func withValidated(ctx context.Context, v Validated) context.Context {
	return context.WithValue(ctx, contextKey{}, v)
}

// FromContext returns the validated request data attached by Middleware.
func FromContext(ctx context.Context) (Validated, error) {
	v, ok := ctx.Value(contextKey{}).(Validated)
	if !ok {
		return Validated{}, ErrNotValidated
	}
	return v, nil
}
