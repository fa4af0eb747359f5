package gomap

import (
	"cmp"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"time"

	"cloud.google.com/go/civil"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/debug"
	"github.com/signadot/valu/number"
	"github.com/signadot/valu/value"
)

// ToValue converts a Go value to a Value.
// Types implementing value.ToValueBehavior convert themselves; everything
// else is converted by reflection.
func ToValue(v any, opts ...MapOption) (value.Value, error) {
	if v == nil {
		return value.Null(), nil
	}
	cfg := newMapConfig(opts)
	visited := make(map[uintptr]string)
	res, err := toValueReflect(reflect.ValueOf(v), "", visited, cfg)
	if err != nil {
		return value.Value{}, err
	}
	if debug.Convert() {
		debug.Logf("gomap: %T -> %s\n", v, res)
	}
	return res, nil
}

// toValueSpecial handles types with a direct Value form.
func toValueSpecial(x any) (value.Value, bool) {
	switch y := x.(type) {
	case value.ToValueBehavior:
		return y.ToValue(), true
	case number.Number:
		return value.FromNumber(y), true
	case number.Int128:
		return value.FromNumber(number.FromInt128(y)), true
	case number.Uint128:
		return value.FromNumber(number.FromUint128(y)), true
	case datetime.DateTime:
		return value.FromDateTime(y), true
	case time.Time:
		return value.FromTime(y), true
	case civil.Date:
		return value.FromDateTime(datetime.FromDate(y)), true
	case civil.Time:
		return value.FromDateTime(datetime.FromTime(y)), true
	case json.Number:
		n, err := number.Parse(string(y))
		if err != nil {
			return value.FromString(string(y)), true
		}
		return value.FromNumber(n), true
	}
	return value.Value{}, false
}

func toValueReflect(val reflect.Value, fieldPath string, visited map[uintptr]string, cfg *mapConfig) (value.Value, error) {
	if !val.IsValid() {
		return value.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	if (kind == reflect.Pointer || kind == reflect.Interface) && val.IsNil() {
		return value.Null(), nil
	}
	if val.CanInterface() {
		if res, ok := toValueSpecial(val.Interface()); ok {
			return res, nil
		}
	}

	if kind == reflect.Pointer {
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return value.Value{}, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptrAddr] = fieldPath
		defer delete(visited, ptrAddr)
		return toValueReflect(val.Elem(), fieldPath, visited, cfg)
	}
	if kind == reflect.Interface {
		return toValueReflect(val.Elem(), fieldPath, visited, cfg)
	}

	if val.CanInterface() {
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return value.Value{}, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
			}
			return value.FromString(string(text)), nil
		}
	}

	switch kind {
	case reflect.String:
		return value.FromString(val.String()), nil
	case reflect.Bool:
		return value.FromBool(val.Bool()), nil
	case reflect.Int8:
		return value.FromNumber(number.FromI8(int8(val.Int()))), nil
	case reflect.Int16:
		return value.FromNumber(number.FromI16(int16(val.Int()))), nil
	case reflect.Int32:
		return value.FromNumber(number.FromI32(int32(val.Int()))), nil
	case reflect.Int, reflect.Int64:
		return value.FromNumber(number.FromI64(val.Int())), nil
	case reflect.Uint8:
		return value.FromNumber(number.FromU8(uint8(val.Uint()))), nil
	case reflect.Uint16:
		return value.FromNumber(number.FromU16(uint16(val.Uint()))), nil
	case reflect.Uint32:
		return value.FromNumber(number.FromU32(uint32(val.Uint()))), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return value.FromNumber(number.FromU64(val.Uint())), nil
	case reflect.Float32:
		return value.FromNumber(number.FromF32(float32(val.Float()))), nil
	case reflect.Float64:
		return value.FromNumber(number.FromF64(val.Float())), nil
	case reflect.Slice:
		if val.IsNil() {
			return value.Null(), nil
		}
		return toValueSlice(val, fieldPath, visited, cfg)
	case reflect.Array:
		return toValueSlice(val, fieldPath, visited, cfg)
	case reflect.Map:
		return toValueMap(val, fieldPath, visited, cfg)
	case reflect.Struct:
		return toValueStruct(val, fieldPath, visited, cfg)
	}
	return value.Value{}, &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type: %s", typ),
	}
}

func toValueSlice(val reflect.Value, fieldPath string, visited map[uintptr]string, cfg *mapConfig) (value.Value, error) {
	if val.Kind() == reflect.Slice && val.Len() > 0 {
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return value.Value{}, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}
	arr := make(value.Array, val.Len())
	for i := range arr {
		e, err := toValueReflect(val.Index(i), indexPath(fieldPath, i), visited, cfg)
		if err != nil {
			return value.Value{}, err
		}
		arr[i] = e
	}
	return value.FromArray(arr), nil
}

// toValueMap converts maps keyed by strings or integers. Keys are sorted,
// integer keys numerically.
func toValueMap(val reflect.Value, fieldPath string, visited map[uintptr]string, cfg *mapConfig) (value.Value, error) {
	if val.IsNil() {
		return value.Null(), nil
	}
	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return value.Value{}, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	keys := val.MapKeys()
	var keyString func(reflect.Value) string
	switch val.Type().Key().Kind() {
	case reflect.String:
		keyString = reflect.Value.String
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(a.String(), b.String())
		})
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		keyString = func(k reflect.Value) string { return strconv.FormatInt(k.Int(), 10) }
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(a.Int(), b.Int())
		})
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		keyString = func(k reflect.Value) string { return strconv.FormatUint(k.Uint(), 10) }
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(a.Uint(), b.Uint())
		})
	default:
		return value.Value{}, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings or integers, got %s", val.Type().Key()),
		}
	}

	obj := value.NewObject()
	for _, k := range keys {
		key := keyString(k)
		e, err := toValueReflect(val.MapIndex(k), joinPath(fieldPath, key), visited, cfg)
		if err != nil {
			return value.Value{}, err
		}
		obj.Insert(key, e)
	}
	return value.FromObject(obj), nil
}

// toValueStruct converts a struct to an object with fields in declaration
// order. Embedded structs are flattened.
func toValueStruct(val reflect.Value, fieldPath string, visited map[uintptr]string, cfg *mapConfig) (value.Value, error) {
	obj := value.NewObject()
	for _, f := range structFields(val.Type(), cfg.tagName) {
		fieldVal, err := val.FieldByIndexErr(f.index)
		if err != nil {
			// nil embedded pointer
			continue
		}
		if f.tag.omitEmpty && fieldVal.IsZero() {
			continue
		}
		if obj.Has(f.tag.name) {
			return value.Value{}, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("field name conflict: %q", f.tag.name),
			}
		}
		e, err := toValueReflect(fieldVal, joinPath(fieldPath, f.tag.name), visited, cfg)
		if err != nil {
			return value.Value{}, err
		}
		obj.Insert(f.tag.name, e)
	}
	return value.FromObject(obj), nil
}
