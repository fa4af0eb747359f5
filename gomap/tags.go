package gomap

import (
	"reflect"
	"strings"
)

const defaultTag = "valu"

// fieldTag is the parsed form of `valu:"name,omitempty"`.
type fieldTag struct {
	name      string
	omitEmpty bool
	skip      bool
}

func parseFieldTag(f reflect.StructField, tagName string) fieldTag {
	tag, ok := f.Tag.Lookup(tagName)
	if !ok {
		tag, ok = f.Tag.Lookup("json")
	}
	res := fieldTag{name: f.Name}
	if !ok {
		return res
	}
	if tag == "-" {
		res.skip = true
		return res
	}
	name, rest, _ := strings.Cut(tag, ",")
	if name != "" {
		res.name = name
	}
	for _, opt := range strings.Split(rest, ",") {
		if opt == "omitempty" {
			res.omitEmpty = true
		}
	}
	return res
}

type structField struct {
	index []int
	tag   fieldTag
}

// structFields lists the exported fields of t in declaration order, with
// embedded struct fields promoted in place.
func structFields(t reflect.Type, tagName string) []structField {
	var res []structField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if _, tagged := f.Tag.Lookup(tagName); !tagged {
				for _, ef := range structFields(f.Type, tagName) {
					ef.index = append([]int{i}, ef.index...)
					res = append(res, ef)
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		tag := parseFieldTag(f, tagName)
		if tag.skip {
			continue
		}
		res = append(res, structField{index: f.Index, tag: tag})
	}
	return res
}
