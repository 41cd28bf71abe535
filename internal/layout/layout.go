// Package layout inspects Go types to decide whether they can live in
// memory the garbage collector does not scan.
package layout

import (
	"fmt"
	"reflect"
)

// CheckPOD reports an error if t, or anything it contains, holds a Go
// pointer or is zero-sized. Values of a type that passes can be copied with
// memmove and stored off-heap without hiding references from the garbage
// collector.
func CheckPOD(t reflect.Type) error {
	if t == nil {
		return fmt.Errorf("nil type")
	}
	if t.Size() == 0 {
		return fmt.Errorf("%s is zero-sized", t)
	}
	return checkKind(t, t.String())
}

func checkKind(t reflect.Type, path string) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return checkKind(t.Elem(), path+"[]")
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if err := checkKind(f.Type, path+"."+f.Name); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%s has kind %s, which holds a pointer", path, t.Kind())
	}
}
