package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"cloud.google.com/go/civil"

	"github.com/signadot/valu/datetime"
	"github.com/signadot/valu/debug"
	"github.com/signadot/valu/number"
	"github.com/signadot/valu/value"
)

// FromValuer is implemented by types that decode themselves.
type FromValuer interface {
	FromValue(value.Value) error
}

var (
	valueType    = reflect.TypeFor[value.Value]()
	numberType   = reflect.TypeFor[number.Number]()
	int128Type   = reflect.TypeFor[number.Int128]()
	uint128Type  = reflect.TypeFor[number.Uint128]()
	dateTimeType = reflect.TypeFor[datetime.DateTime]()
	timeType     = reflect.TypeFor[time.Time]()
	dateType     = reflect.TypeFor[civil.Date]()
	civilTime    = reflect.TypeFor[civil.Time]()
	fromValuer   = reflect.TypeFor[FromValuer]()
	textUnmarsh  = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// FromValue stores v into the value dst points to.
//
// Numbers must match the destination's exact kind (int is i64, uint is
// u64) unless AllowNumericConversion is given. Null clears pointers and
// zeroes other destinations. Undefined leaves the destination unchanged.
func FromValue(v value.Value, dst any, opts ...UnmapOption) error {
	if dst == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(dst)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	if debug.Convert() {
		debug.Logf("gomap: %s -> %T\n", v, dst)
	}
	return fromValueReflect(v, val.Elem(), "", newUnmapConfig(opts))
}

func typeError(fieldPath string, expected any, v value.Value) error {
	actual := v.Type().String()
	if n, ok := v.AsNumber(); ok {
		actual = n.Type().String()
	}
	return &TypeError{
		FieldPath: fieldPath,
		Expected:  fmt.Sprint(expected),
		Actual:    actual,
	}
}

func fromValueReflect(v value.Value, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	if v.IsUndefined() {
		return nil
	}
	typ := val.Type()

	if reflect.PointerTo(typ).Implements(fromValuer) && val.CanAddr() {
		return val.Addr().Interface().(FromValuer).FromValue(v)
	}
	if typ.Kind() == reflect.Pointer {
		if v.IsNull() {
			val.SetZero()
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromValueReflect(v, val.Elem(), fieldPath, cfg)
	}
	// a Value destination keeps Null as a value
	if v.IsNull() && typ != valueType {
		val.SetZero()
		return nil
	}
	if done, err := fromValueSpecial(v, val, fieldPath); done {
		return err
	}
	if typ.Kind() == reflect.Interface {
		if typ.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("cannot decode into %s", typ)}
		}
		val.Set(reflect.ValueOf(ToAny(v)))
		return nil
	}
	if s, ok := v.AsString(); ok && reflect.PointerTo(typ).Implements(textUnmarsh) && val.CanAddr() {
		if err := val.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalText failed", Err: err}
		}
		return nil
	}

	switch typ.Kind() {
	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			return typeError(fieldPath, value.StringType, v)
		}
		val.SetString(s)
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return typeError(fieldPath, value.BooleanType, v)
		}
		val.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromValueToInt(v, val, fieldPath, cfg)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromValueToUint(v, val, fieldPath, cfg)
	case reflect.Float32, reflect.Float64:
		return fromValueToFloat(v, val, fieldPath, cfg)
	case reflect.Slice:
		return fromValueToSlice(v, val, fieldPath, cfg)
	case reflect.Array:
		return fromValueToArray(v, val, fieldPath, cfg)
	case reflect.Map:
		return fromValueToMap(v, val, fieldPath, cfg)
	case reflect.Struct:
		return fromValueToStruct(v, val, fieldPath, cfg)
	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type: %s", typ)}
	}
	return nil
}

// fromValueSpecial decodes the types with a direct Value form. It
// reports whether it handled the destination.
func fromValueSpecial(v value.Value, val reflect.Value, fieldPath string) (bool, error) {
	switch val.Type() {
	case valueType:
		val.Set(reflect.ValueOf(v))
		return true, nil
	case numberType:
		n, ok := v.AsNumber()
		if !ok {
			return true, typeError(fieldPath, value.NumberType, v)
		}
		val.Set(reflect.ValueOf(n))
		return true, nil
	case int128Type:
		x, ok := value.AsInt128(v)
		if !ok {
			return true, typeError(fieldPath, number.I128Type, v)
		}
		val.Set(reflect.ValueOf(x))
		return true, nil
	case uint128Type:
		x, ok := value.AsUint128(v)
		if !ok {
			return true, typeError(fieldPath, number.U128Type, v)
		}
		val.Set(reflect.ValueOf(x))
		return true, nil
	case dateTimeType:
		d, err := dateTimeOf(v, fieldPath)
		if err != nil {
			return true, err
		}
		val.Set(reflect.ValueOf(d))
		return true, nil
	case timeType:
		d, err := dateTimeOf(v, fieldPath)
		if err != nil {
			return true, err
		}
		t, ok := d.AsDateTime()
		if !ok {
			return true, &TypeError{FieldPath: fieldPath, Expected: "datetime", Actual: d.Kind().String()}
		}
		val.Set(reflect.ValueOf(t))
		return true, nil
	case dateType:
		d, err := dateTimeOf(v, fieldPath)
		if err != nil {
			return true, err
		}
		x, ok := d.AsDate()
		if !ok {
			return true, &TypeError{FieldPath: fieldPath, Expected: "date", Actual: d.Kind().String()}
		}
		val.Set(reflect.ValueOf(x))
		return true, nil
	case civilTime:
		d, err := dateTimeOf(v, fieldPath)
		if err != nil {
			return true, err
		}
		x, ok := d.AsTime()
		if !ok {
			return true, &TypeError{FieldPath: fieldPath, Expected: "time", Actual: d.Kind().String()}
		}
		val.Set(reflect.ValueOf(x))
		return true, nil
	}
	return false, nil
}

// dateTimeOf accepts date-time values and strings in any form
// datetime.Parse reads.
func dateTimeOf(v value.Value, fieldPath string) (datetime.DateTime, error) {
	if d, ok := v.AsDateTime(); ok {
		return d, nil
	}
	s, ok := v.AsString()
	if !ok {
		return datetime.DateTime{}, typeError(fieldPath, value.DateTimeType, v)
	}
	d, err := datetime.Parse(s)
	if err != nil {
		return datetime.DateTime{}, &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("invalid date/time %q", s), Err: err}
	}
	return d, nil
}

// exactKind maps Go numeric kinds to the number kind they hold.
var exactKind = map[reflect.Kind]number.Type{
	reflect.Int8:    number.I8Type,
	reflect.Int16:   number.I16Type,
	reflect.Int32:   number.I32Type,
	reflect.Int64:   number.I64Type,
	reflect.Int:     number.I64Type,
	reflect.Uint8:   number.U8Type,
	reflect.Uint16:  number.U16Type,
	reflect.Uint32:  number.U32Type,
	reflect.Uint64:  number.U64Type,
	reflect.Uint:    number.U64Type,
	reflect.Uintptr: number.U64Type,
	reflect.Float32: number.F32Type,
	reflect.Float64: number.F64Type,
}

func numberFor(v value.Value, val reflect.Value, fieldPath string, cfg *unmapConfig) (number.Number, error) {
	want := exactKind[val.Kind()]
	n, ok := v.AsNumber()
	if !ok {
		return n, typeError(fieldPath, want, v)
	}
	if !cfg.convertNumbers && n.Type() != want {
		return n, typeError(fieldPath, want, v)
	}
	return n, nil
}

func fromValueToInt(v value.Value, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	n, err := numberFor(v, val, fieldPath, cfg)
	if err != nil {
		return err
	}
	i, ok := n.ToI64()
	if !ok || val.OverflowInt(i) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %s overflows %s", n, val.Type()),
		}
	}
	val.SetInt(i)
	return nil
}

func fromValueToUint(v value.Value, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	n, err := numberFor(v, val, fieldPath, cfg)
	if err != nil {
		return err
	}
	u, ok := n.ToU64()
	if !ok || val.OverflowUint(u) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %s overflows %s", n, val.Type()),
		}
	}
	val.SetUint(u)
	return nil
}

func fromValueToFloat(v value.Value, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	n, err := numberFor(v, val, fieldPath, cfg)
	if err != nil {
		return err
	}
	f, _ := n.ToF64()
	if val.OverflowFloat(f) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %s overflows %s", n, val.Type()),
		}
	}
	val.SetFloat(f)
	return nil
}

func fromValueToSlice(v value.Value, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	arr, ok := v.AsArray()
	if !ok {
		return typeError(fieldPath, value.ArrayType, v)
	}
	res := reflect.MakeSlice(val.Type(), len(arr), len(arr))
	for i, e := range arr {
		if err := fromValueReflect(e, res.Index(i), indexPath(fieldPath, i), cfg); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

func fromValueToArray(v value.Value, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	arr, ok := v.AsArray()
	if !ok {
		return typeError(fieldPath, value.ArrayType, v)
	}
	if len(arr) != val.Len() {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("array length %d does not match %s", len(arr), val.Type()),
		}
	}
	for i, e := range arr {
		if err := fromValueReflect(e, val.Index(i), indexPath(fieldPath, i), cfg); err != nil {
			return err
		}
	}
	return nil
}

func fromValueToMap(v value.Value, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	obj, ok := v.AsObject()
	if !ok {
		return typeError(fieldPath, value.ObjectType, v)
	}
	typ := val.Type()
	res := reflect.MakeMapWithSize(typ, obj.Len())
	for k, e := range obj.All() {
		key := reflect.New(typ.Key()).Elem()
		switch typ.Key().Kind() {
		case reflect.String:
			key.SetString(k)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i, err := strconv.ParseInt(k, 10, typ.Key().Bits())
			if err != nil {
				return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("invalid map key %q", k), Err: err}
			}
			key.SetInt(i)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			u, err := strconv.ParseUint(k, 10, typ.Key().Bits())
			if err != nil {
				return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("invalid map key %q", k), Err: err}
			}
			key.SetUint(u)
		default:
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported map key type %s", typ.Key())}
		}
		elem := reflect.New(typ.Elem()).Elem()
		if err := fromValueReflect(e, elem, joinPath(fieldPath, k), cfg); err != nil {
			return err
		}
		res.SetMapIndex(key, elem)
	}
	val.Set(res)
	return nil
}

func fromValueToStruct(v value.Value, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	obj, ok := v.AsObject()
	if !ok {
		return typeError(fieldPath, value.ObjectType, v)
	}
	fields := map[string]structField{}
	for _, f := range structFields(val.Type(), cfg.tagName) {
		fields[f.tag.name] = f
	}
	for k, e := range obj.All() {
		f, ok := fields[k]
		if !ok {
			if cfg.strictFields {
				return &UnmarshalError{FieldPath: joinPath(fieldPath, k), Message: "unknown field"}
			}
			continue
		}
		fieldVal := val.FieldByIndex(f.index)
		if !fieldVal.CanSet() {
			continue
		}
		if err := fromValueReflect(e, fieldVal, joinPath(fieldPath, k), cfg); err != nil {
			return err
		}
	}
	return nil
}
