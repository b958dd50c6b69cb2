package aitools

import (
	"fmt"

	"google.golang.org/genai"
)

// FieldType enumerates the value kinds a tool response schema can declare.
type FieldType string

const (
	TypeObject  FieldType = "object"
	TypeArray   FieldType = "array"
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
)

// Schema declares the shape a tool's JSON response must conform to. It is
// passed to the completion capability as an output constraint and used again
// locally to validate whatever text comes back; the model is not trusted to
// honor the constraint.
type Schema struct {
	Type        FieldType
	Description string
	Properties  map[string]*Schema // object fields
	Required    []string           // object fields that must be present
	Items       *Schema            // array element schema
	Enum        []string           // allowed values for string fields
}

// Validate checks a decoded JSON value against the schema. Optional object
// fields are validated when present; unknown extra fields are ignored.
func (s *Schema) Validate(v any) error {
	return s.validate(v, "$")
}

func (s *Schema) validate(v any, path string) error {
	switch s.Type {
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %T", path, v)
		}
		for _, name := range s.Required {
			if _, present := obj[name]; !present {
				return fmt.Errorf("%s: missing required field %q", path, name)
			}
		}
		for name, field := range s.Properties {
			val, present := obj[name]
			if !present {
				continue
			}
			if err := field.validate(val, path+"."+name); err != nil {
				return err
			}
		}
		return nil

	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %T", path, v)
		}
		if s.Items != nil {
			for i, item := range arr {
				if err := s.Items.validate(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}
		return nil

	case TypeString:
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", path, v)
		}
		if len(s.Enum) > 0 {
			for _, allowed := range s.Enum {
				if str == allowed {
					return nil
				}
			}
			return fmt.Errorf("%s: value %q not in enum %v", path, str, s.Enum)
		}
		return nil

	case TypeNumber:
		if _, ok := v.(float64); !ok {
			return fmt.Errorf("%s: expected number, got %T", path, v)
		}
		return nil

	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%s: expected boolean, got %T", path, v)
		}
		return nil

	default:
		return fmt.Errorf("%s: unknown schema type %q", path, s.Type)
	}
}

// toGenAI translates the schema into the wire form the Gemini API expects.
func (s *Schema) toGenAI() *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{Description: s.Description}
	switch s.Type {
	case TypeObject:
		out.Type = genai.TypeObject
		if len(s.Properties) > 0 {
			out.Properties = make(map[string]*genai.Schema, len(s.Properties))
			for name, field := range s.Properties {
				out.Properties[name] = field.toGenAI()
			}
		}
		out.Required = s.Required
	case TypeArray:
		out.Type = genai.TypeArray
		out.Items = s.Items.toGenAI()
	case TypeString:
		out.Type = genai.TypeString
		out.Enum = s.Enum
	case TypeNumber:
		out.Type = genai.TypeNumber
	case TypeBoolean:
		out.Type = genai.TypeBoolean
	}
	return out
}
