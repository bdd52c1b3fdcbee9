package schema

import (
	"reflect"
	"strings"
)

// ResolveStructKey resolves a struct field's external key used by the DSL and
// PresenceMap. Priority: json tag name > field name; "-" disables the field.
// Embedded structs without a json tag resolve to "" and are flattened by
// StructKeys.
func ResolveStructKey(sf reflect.StructField) string {
	jt, ok := sf.Tag.Lookup("json")
	if !ok {
		if sf.Anonymous {
			return ""
		}
		return sf.Name
	}
	if jt == "-" {
		return "-"
	}
	if i := strings.IndexByte(jt, ','); i >= 0 {
		jt = jt[:i]
	}
	if jt == "" {
		return sf.Name
	}
	return jt
}

// StructKeys lists the external keys of struct type t in field order.
func StructKeys(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out []string
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Tag.Get("json") == "" {
			if sf.IsExported() {
				out = append(out, StructKeys(sf.Type)...)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if k := ResolveStructKey(sf); k != "-" && k != "" {
			out = append(out, k)
		}
	}
	return out
}
