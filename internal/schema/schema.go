// Package schema validates request bodies against embedded JSON schemas.
package schema

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names.
const (
	Preferences   = "preferences"
	AccountDelete = "account_delete"
)

//go:embed schemas/*.json
var files embed.FS

// compiled caches compiled schemas by name.
var compiled sync.Map // map[string]*jsonschema.Schema

// Error reports a body that does not match its schema. Field is the JSON
// pointer of the offending value, empty for the body itself.
type Error struct {
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validate checks raw against the named schema.
func Validate(name string, raw []byte) error {
	sch, err := get(name)
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &Error{Message: "request body is not valid JSON", Err: err}
	}

	if err := sch.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := deepest(ve)
			return &Error{
				Field:   pointer(leaf.InstanceLocation),
				Message: "does not match the expected format",
				Err:     err,
			}
		}
		return &Error{Message: "request body is invalid", Err: err}
	}
	return nil
}

// MustCompileAll compiles every embedded schema. It panics on a broken
// schema so the server fails at startup rather than on first request.
func MustCompileAll() {
	for _, name := range []string{Preferences, AccountDelete} {
		if _, err := get(name); err != nil {
			panic(err)
		}
	}
}

func get(name string) (*jsonschema.Schema, error) {
	if cached, ok := compiled.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	path := "schemas/" + name + ".json"
	b, err := files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", name, err)
	}

	compiled.Store(name, sch)
	return sch, nil
}

func deepest(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

func pointer(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	return "/" + strings.Join(loc, "/")
}
