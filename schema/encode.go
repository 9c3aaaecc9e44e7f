package schema

import (
	"iter"
	"reflect"
	"strconv"

	"github.com/1ean267/nexustack-sub001/example"
)

// Encoder is implemented by types whose Go values differ from their JSON
// form, such as characters (strings), byte slices (integer arrays) and
// containers of those. Renderers only see encoded examples.
type Encoder[T any] interface {
	EncodeExample(v T) any
}

// Encode returns the JSON form of v as described by t.
func Encode[T any](t Type[T], v T) any {
	if e, ok := t.(Encoder[T]); ok {
		return e.EncodeExample(v)
	}
	return v
}

// EncodedExamples returns the examples of t in their JSON form.
func EncodedExamples[T any](t Type[T]) iter.Seq[any] {
	return example.Map(t.Examples(), func(v T) any { return Encode(t, v) })
}

// encodeKey renders an encoded map key as the object key JSON uses for it.
// ok is false for values that cannot be object keys.
func encodeKey(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

func (charType) EncodeExample(r rune) any { return string(r) }

func (bytesType) EncodeExample(b []byte) any {
	out := make([]any, len(b))
	for i, v := range b {
		out[i] = int64(v)
	}
	return out
}

func (unitType) EncodeExample(struct{}) any { return nil }

func (t optionType[T]) EncodeExample(v *T) any {
	if v == nil {
		return nil
	}
	return Encode(t.inner, *v)
}

func (t sliceType[T]) EncodeExample(v []T) any {
	out := make([]any, len(v))
	for i, e := range v {
		out[i] = Encode(t.elem, e)
	}
	return out
}

func (t mapType[K, V]) EncodeExample(m map[K]V) any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key, ok := encodeKey(Encode(t.key, k))
		if !ok {
			continue
		}
		out[key] = Encode(t.value, v)
	}
	return out
}

func (t tuple2Type[A, B]) EncodeExample(p Pair[A, B]) any {
	return []any{Encode(t.a, p.First), Encode(t.b, p.Second)}
}

func (t tuple3Type[A, B, C]) EncodeExample(p Triple[A, B, C]) any {
	return []any{Encode(t.a, p.First), Encode(t.b, p.Second), Encode(t.c, p.Third)}
}

func (t namedType[T]) EncodeExample(v T) any { return Encode(t.inner, v) }
