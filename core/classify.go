package core

import (
	"math/big"
	"reflect"
	"strconv"
)

// Tag is the closed classification result of Classify. The set mirrors the
// runtime value taxonomy the wire format was designed around; TagSymbol is
// part of the closed set but is never produced for Go values.
type Tag string

const (
	TagNumber    Tag = "number"
	TagBigint    Tag = "bigint"
	TagBoolean   Tag = "boolean"
	TagSymbol    Tag = "symbol"
	TagUndefined Tag = "undefined"
	TagObject    Tag = "object"
	TagFunction  Tag = "function"
	TagArray     Tag = "array"
	TagString    Tag = "string"
	TagSnowflake Tag = "snowflake"
	TagNull      Tag = "null"
	TagUnknown   Tag = "unknown"

	TagNumberArray    Tag = "numberArray"
	TagStringArray    Tag = "stringArray"
	TagSnowflakeArray Tag = "snowflakeArray"
	TagBooleanArray   Tag = "booleanArray"
)

const (
	snowflakeMinDigits = 17
	snowflakeMaxDigits = 19
)

// IsSnowflake reports whether s is a valid resource identifier: a string of
// 17 to 19 ASCII decimal digits that parses into an unsigned 64-bit integer.
func IsSnowflake(s string) bool {
	if len(s) < snowflakeMinDigits || len(s) > snowflakeMaxDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// Classify maps an arbitrary value to its Tag. It is total and
// deterministic: the same input always yields the same tag and no input
// fails. NaN floats classify as number; a nil interface classifies as null
// while a typed nil pointer or interface classifies as undefined. Slices
// and arrays classify as the generic array tag; element-wise refinements
// are only applied by ClassifyArray.
func Classify(value any) Tag {
	if value == nil {
		return TagNull
	}
	if _, ok := value.(*big.Int); ok {
		return TagBigint
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Invalid:
		return TagNull
	case reflect.Bool:
		return TagBoolean
	case reflect.String:
		if IsSnowflake(v.String()) {
			return TagSnowflake
		}
		return TagString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TagNumber
	case reflect.Float32, reflect.Float64:
		// NaN and infinities are still numbers.
		return TagNumber
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return TagUndefined
		}
		return TagArray
	case reflect.Func:
		if v.IsNil() {
			return TagUndefined
		}
		return TagFunction
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return TagUndefined
		}
		return TagObject
	case reflect.Map:
		if v.IsNil() {
			return TagUndefined
		}
		return TagObject
	case reflect.Struct:
		return TagObject
	default:
		return TagUnknown
	}
}

// ClassifyArray refines a slice or array into a homogeneous primitive array
// tag. Mixed-type and empty collections stay the generic array tag; any
// non-array input falls back to Classify.
func ClassifyArray(value any) Tag {
	base := Classify(value)
	if base != TagArray {
		return base
	}

	v := reflect.ValueOf(value)
	if v.Len() == 0 {
		return TagArray
	}

	switch Classify(v.Index(0).Interface()) {
	case TagSnowflake:
		if IsHomogeneous(value, func(item any) bool { return Classify(item) == TagSnowflake }) {
			return TagSnowflakeArray
		}
	case TagString:
		if IsHomogeneous(value, func(item any) bool { return Classify(item) == TagString }) {
			return TagStringArray
		}
	case TagNumber:
		if IsHomogeneous(value, func(item any) bool { return Classify(item) == TagNumber }) {
			return TagNumberArray
		}
	case TagBoolean:
		if IsHomogeneous(value, func(item any) bool { return Classify(item) == TagBoolean }) {
			return TagBooleanArray
		}
	}
	return TagArray
}

// IsHomogeneous reports whether every element of a slice or array satisfies
// the predicate. Non-array values and empty collections report false.
func IsHomogeneous(value any, predicate func(any) bool) bool {
	if predicate == nil {
		return false
	}
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return false
	}
	if v.Kind() == reflect.Slice && v.IsNil() {
		return false
	}
	if v.Len() == 0 {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if !predicate(v.Index(i).Interface()) {
			return false
		}
	}
	return true
}
