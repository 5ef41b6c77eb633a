package helper

import "github.com/bytedance/sonic"

/*
Tri-state field untuk PATCH:
- Absent : tidak diupdate
- null   : set kolom ke NULL
- value  : set ke value
*/
type UpdateField[T any] struct {
	set   bool
	null  bool
	value T
}

func (f *UpdateField[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	return sonic.Unmarshal(b, &f.value)
}

func (f UpdateField[T]) ShouldUpdate() bool { return f.set }
func (f UpdateField[T]) IsNull() bool       { return f.set && f.null }
func (f UpdateField[T]) Val() T             { return f.value }

// Ptr: nil untuk null, selain itu pointer ke value.
func (f UpdateField[T]) Ptr() *T {
	if f.null {
		return nil
	}
	v := f.value
	return &v
}

// Set dipakai test/kode internal untuk mengisi field tanpa JSON.
func Set[T any](v T) UpdateField[T] { return UpdateField[T]{set: true, value: v} }

func Null[T any]() UpdateField[T] { return UpdateField[T]{set: true, null: true} }
