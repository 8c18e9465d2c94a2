package typekey

import (
	"reflect"
	"strconv"
	"sync"
)

var keyCache sync.Map

func For[T any]() string {
	return Of(TypeOf[T]())
}

func Of(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if cached, ok := keyCache.Load(t); ok {
		return cached.(string)
	}

	key := buildKey(t)
	keyCache.Store(t, key)
	return key
}

func buildKey(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + buildKey(t.Elem())
	case reflect.Slice:
		return "[]" + buildKey(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + buildKey(t.Elem())
	case reflect.Map:
		return "map[" + buildKey(t.Key()) + "]" + buildKey(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + buildKey(t.Elem())
		case reflect.SendDir:
			return "chan<- " + buildKey(t.Elem())
		default:
			return "chan " + buildKey(t.Elem())
		}
	case reflect.Func:
		return t.String()
	default:
		if t.PkgPath() != "" {
			return t.PkgPath() + "." + t.Name()
		}
		return t.Name()
	}
}

func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func Name[T any]() string {
	return TypeOf[T]().String()
}

func NameOf(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func IsStruct[T any]() bool {
	t := TypeOf[T]()
	return t.Kind() == reflect.Struct && t.Name() != ""
}

// Ancestors returns the named struct types embedded in t, transitively,
// in depth-first field order. Pointer embeds are dereferenced.
func Ancestors(t reflect.Type) []reflect.Type {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var ancestors []reflect.Type
	seen := make(map[reflect.Type]bool)
	collectAncestors(t, seen, &ancestors)
	return ancestors
}

func collectAncestors(t reflect.Type, seen map[reflect.Type]bool, out *[]reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.Struct || ft.Name() == "" || seen[ft] {
			continue
		}

		seen[ft] = true
		*out = append(*out, ft)
		collectAncestors(ft, seen, out)
	}
}
