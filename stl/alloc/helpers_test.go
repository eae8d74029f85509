package alloc

import "reflect"

func reflectTypeOf(v any) reflect.Type {
	return reflect.TypeOf(v)
}

func sizeOf[T any](v T) uintptr {
	return reflect.TypeOf(v).Size()
}
