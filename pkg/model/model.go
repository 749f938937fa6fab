// Package model defines typed read models for Control D API resources.
//
// Every resource is an open record: fields the API adds beyond the declared
// schema are preserved in an Extra side table instead of being rejected, so
// additive API changes never break decoding. Required wire fields are
// enforced; a missing one fails decoding with an error naming the resource
// and the field.
package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Extra holds wire fields present in a response but not declared on the
// resource schema. Values are kept raw so nothing is lost or reshaped.
type Extra map[string]json.RawMessage

// knownFields caches the declared wire names per struct type.
var knownFields sync.Map // reflect.Type -> map[string]struct{}

func fieldsOf(t reflect.Type) map[string]struct{} {
	if cached, ok := knownFields.Load(t); ok {
		return cached.(map[string]struct{})
	}
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name := f.Name
		if tag != "" {
			if comma := strings.Index(tag, ","); comma >= 0 {
				tag = tag[:comma]
			}
			if tag != "" {
				name = tag
			}
		}
		names[name] = struct{}{}
	}
	knownFields.Store(t, names)
	return names
}

// unmarshalResource decodes data into dst, enforcing the required wire
// fields and collecting undeclared fields into extra. dst must be a pointer
// to a struct whose type does not itself implement json.Unmarshaler (models
// pass an alias type to avoid recursion).
func unmarshalResource(data []byte, resource string, dst any, required []string, extra *Extra) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Resource: resource, Err: err}
	}
	for _, name := range required {
		if _, ok := raw[name]; !ok {
			return &MissingFieldError{Resource: resource, Field: name}
		}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &DecodeError{Resource: resource, Err: err}
	}

	known := fieldsOf(reflect.TypeOf(dst).Elem())
	for key, value := range raw {
		if _, ok := known[key]; ok {
			continue
		}
		if *extra == nil {
			*extra = make(Extra)
		}
		(*extra)[key] = value
	}
	return nil
}
