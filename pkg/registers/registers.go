package registers

import (
	"errors"
	"fmt"

	"github.com/demigunkan/longint/internal/interfaces"
	"github.com/demigunkan/longint/pkg/longint"
	"github.com/goccy/go-json"
	"github.com/google/btree"
)

var _ interfaces.Store = &Store{}

const (
	First = 'a'
	Count = 26
)

var ErrInvalidRegister = errors.New("invalid register")

// Store is the set of registers a..z. Every register starts at zero and is
// only ever overwritten. Non-zero registers are indexed by name so they can
// be listed in order.
type Store struct {
	values [Count]longint.Int
	index  *btree.BTreeG[byte]
}

func New() *Store {
	return &Store{
		index: btree.NewG(2, func(a, b byte) bool {
			return a < b
		}),
	}
}

// Valid reports whether name is a register name.
func Valid(name byte) bool {
	return name >= First && name < First+Count
}

func (s *Store) Get(name byte) (*longint.Int, error) {
	if !Valid(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRegister, name)
	}
	return new(longint.Int).Set(&s.values[name-First]), nil
}

func (s *Store) Set(name byte, value *longint.Int) error {
	return s.Apply(name, func(v *longint.Int) {
		v.Set(value)
	})
}

// Apply calls fn with the register itself so it can be updated in place.
func (s *Store) Apply(name byte, fn func(value *longint.Int)) error {
	if !Valid(name) {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, name)
	}
	v := &s.values[name-First]
	fn(v)

	if v.IsZero() {
		s.index.Delete(name)
	} else {
		s.index.ReplaceOrInsert(name)
	}
	return nil
}

// Ascend calls fn for every non-zero register in name order until fn
// returns false.
func (s *Store) Ascend(fn func(name byte, value *longint.Int) bool) {
	s.index.Ascend(func(name byte) bool {
		return fn(name, &s.values[name-First])
	})
}

// Len returns the number of non-zero registers.
func (s *Store) Len() int {
	return s.index.Len()
}

func (s *Store) Reset() {
	s.Ascend(func(name byte, value *longint.Int) bool {
		value.SetZero()
		return true
	})
	s.index.Clear(false)
}

//////////////// MARSHALLER

// MarshalJSON encodes the non-zero registers as an object keyed by name.
func (s *Store) MarshalJSON() ([]byte, error) {
	m := make(map[string]*longint.Int, s.Len())
	s.Ascend(func(name byte, value *longint.Int) bool {
		m[string(name)] = value
		return true
	})
	return json.Marshal(m)
}

// UnmarshalJSON replaces every register with the values in data; registers
// missing from data are zero. Values may also be quoted decimal or 0x
// prefixed hexadecimal strings.
func (s *Store) UnmarshalJSON(data []byte) error {
	m := make(map[string]*longint.Int)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	if s.index == nil {
		*s = *New()
	}
	s.Reset()
	for k, v := range m {
		if len(k) != 1 || !Valid(k[0]) {
			return fmt.Errorf("%w: %q", ErrInvalidRegister, k)
		}
		if v == nil {
			continue
		}
		if err := s.Set(k[0], v); err != nil {
			return err
		}
	}
	return nil
}
