package schema

import "fmt"

// FieldFunc validates and type-coerces a raw field value. It returns the
// coerced value or an error whose message is shown to the client verbatim.
type FieldFunc func(field string, raw any) (any, error)

// Field is a single named field in a request section.
type Field struct {
	Name     string
	Parse    FieldFunc
	Optional bool
}

// FieldSpec is an ordered list of fields. Order matters: validation stops at
// the first failing field, so the declaration order is part of the contract.
type FieldSpec []Field

func (fs FieldSpec) has(name string) bool {
	for _, f := range fs {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Schema describes the full expected shape of a request.
type Schema struct {
	Name  string
	Body  FieldSpec
	Param FieldSpec
	Query FieldSpec
}

func mergeSpec(dst, src FieldSpec, section string) (FieldSpec, error) {
	for _, f := range src {
		if dst.has(f.Name) {
			return nil, fmt.Errorf("%w: %s field %q", ErrFieldCollision, section, f.Name)
		}
		dst = append(dst, f)
	}
	return dst, nil
}

// Compose merges schemas into one, preserving field order left to right.
// A field name declared in the same section by more than one schema is a
// configuration error and fails immediately.
func Compose(name string, schemas ...Schema) (Schema, error) {
	out := Schema{Name: name}

	var err error
	for _, s := range schemas {
		if out.Body, err = mergeSpec(out.Body, s.Body, "body"); err != nil {
			return Schema{}, err
		}
		if out.Param, err = mergeSpec(out.Param, s.Param, "param"); err != nil {
			return Schema{}, err
		}
		if out.Query, err = mergeSpec(out.Query, s.Query, "query"); err != nil {
			return Schema{}, err
		}
	}

	return out, nil
}

// MustCompose is Compose that panics on collision. Schemas are composed at
// package init, so a collision is a programming error surfaced at startup.
func MustCompose(name string, schemas ...Schema) Schema {
	s, err := Compose(name, schemas...)
	if err != nil {
		panic(err)
	}
	return s
}
