package schema

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwellhq/inkwell/pkg/response"
	"github.com/inkwellhq/inkwell/pkg/validator"
)

// Middleware validates the request against s and attaches the coerced data
// to the context. Fields run in declared order, body first, then query, then
// URL params; the first failure short-circuits with a 400 envelope carrying
// that field's message. Fields the schema does not declare are ignored.
func Middleware(s Schema) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := decodeBody(r)
			if err != nil {
				response.Fail(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			v := Validated{
				Body:  make(map[string]any, len(s.Body)),
				Param: make(map[string]any, len(s.Param)),
				Query: make(map[string]any, len(s.Query)),
			}

			if err := runSpec(s.Body, v.Body, func(name string) (any, bool) {
				val, ok := raw[name]
				return val, ok
			}); err != nil {
				failValidation(w, err)
				return
			}

			query := r.URL.Query()
			if err := runSpec(s.Query, v.Query, func(name string) (any, bool) {
				if !query.Has(name) {
					return nil, false
				}
				return query.Get(name), true
			}); err != nil {
				failValidation(w, err)
				return
			}

			if err := runSpec(s.Param, v.Param, func(name string) (any, bool) {
				val := chi.URLParam(r, name)
				return val, val != ""
			}); err != nil {
				failValidation(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withValidated(r.Context(), v)))
		})
	}
}

// decodeBody reads the JSON body into a flat map. An empty body behaves as
// an empty object so that required-field checks produce the generic
// "Required" message rather than a decode error.
func decodeBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}

	raw := make(map[string]any)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, errors.Join(ErrMalformedBody, err)
	}
	return raw, nil
}

func runSpec(spec FieldSpec, out map[string]any, lookup func(name string) (any, bool)) error {
	for _, f := range spec {
		raw, ok := lookup(f.Name)
		if !ok {
			if f.Optional {
				continue
			}
			return validator.ValidationError{Field: f.Name, Message: validator.MsgRequired}
		}

		val, err := f.Parse(f.Name, raw)
		if err != nil {
			return err
		}
		out[f.Name] = val
	}
	return nil
}

func failValidation(w http.ResponseWriter, err error) {
	msg := "Invalid request"
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		msg = errs[0].Message
	}
	response.Fail(w, http.StatusBadRequest, msg)
}
