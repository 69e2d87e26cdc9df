package interfaces

import "github.com/demigunkan/longint/pkg/longint"

// Store holds the registers a command interpreter works on.
type Store interface {
	Get(name byte) (*longint.Int, error)
	Set(name byte, value *longint.Int) error
	Apply(name byte, fn func(value *longint.Int)) error
	Ascend(fn func(name byte, value *longint.Int) bool)
	Len() int
	Reset()
}
