// Package longint provides arbitrary precision arithmetic on non-negative
// integers stored as fixed capacity arrays of decimal digits.
//
// Every arithmetic operator mutates its receiver and returns it:
//
//	z.Add(y) // z = z + y
//	z.Mul(y) // z = z * y
//	z.Pow(y) // z = z ^ y
//	z.Div(y) // z = z / y
//
// Capacity overflow and division by zero are not recoverable at this layer,
// the operators panic with ErrOverflow or ErrDivisionByZero.
package longint

import (
	"errors"
	"strings"
)

// Int is a non-negative integer of at most Capacity decimal digits, stored
// least significant digit first. Only digits[:size] are meaningful and the
// digit at size-1 is never zero. The zero value is 0.
type Int struct {
	size   int
	digits [Capacity]uint8
}

//////////////// ERRORS

var (
	ErrEmptyString      = errors.New("empty string")
	ErrNotDecimalString = errors.New("not decimal string")
	ErrNotHexString     = errors.New("not hex string")
	ErrOverflow         = errors.New("integer overflow")
	ErrDivisionByZero   = errors.New("zero division")
	ErrNegative         = errors.New("negative value")
)

//////////////// CONSTANTS

const (
	// Capacity is the maximum number of digits of an Int.
	Capacity = 500
	// MaxPower is the largest exponent accepted by Pow. 2^1660 is the
	// largest power of two that fits in Capacity digits.
	MaxPower = 1660
)

const (
	_base      = 10
	_group     = 3
	_separator = ','
	_zero      = "0"
	_hex256    = 64
)

//////////////// NEW INSTANCE

// NewInt returns an Int set to val.
func NewInt(val uint64) *Int {
	z := &Int{}
	for val != 0 {
		z.digits[z.size] = uint8(val % _base)
		z.size++
		val /= _base
	}
	return z
}

// Parse returns the Int represented by the decimal digit string s.
// Leading zeros are ignored.
func Parse(s string) (*Int, error) {
	z := &Int{}
	if _, err := z.SetString(s); err != nil {
		return nil, err
	}
	return z, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Int {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// SetString sets z to the value of the decimal digit string s and returns z.
// On error z is left unchanged.
func (z *Int) SetString(s string) (*Int, error) {
	if len(s) == 0 {
		return z, ErrEmptyString
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return z, ErrNotDecimalString
		}
	}

	s = strings.TrimLeft(s, _zero)
	if len(s) > Capacity {
		return z, ErrOverflow
	}

	z.size = len(s)
	for i := 0; i < len(s); i++ {
		z.digits[i] = s[len(s)-1-i] - '0'
	}
	return z, nil
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.size = x.size
		copy(z.digits[:x.size], x.digits[:x.size])
	}
	return z
}

// SetZero sets z to 0 and returns z.
func (z *Int) SetZero() *Int {
	z.size = 0
	return z
}

// SetOne sets z to 1 and returns z.
func (z *Int) SetOne() *Int {
	z.size = 1
	z.digits[0] = 1
	return z
}

//////////////// ACCESSORS

// Len returns the number of decimal digits of z; 0 has none.
func (z *Int) Len() int {
	return z.size
}

func (z *Int) IsZero() bool {
	return z.size == 0
}

func (z *Int) IsOne() bool {
	return z.size == 1 && z.digits[0] == 1
}

// digit returns the digit of z at position i, or 0 past the last digit.
func (z *Int) digit(i int) int {
	if i >= z.size {
		return 0
	}
	return int(z.digits[i])
}

// norm drops leading zero digits.
func (z *Int) norm() *Int {
	for z.size > 0 && z.digits[z.size-1] == 0 {
		z.size--
	}
	return z
}

// reverse reverses digits[:size] in place.
func (z *Int) reverse() {
	for i, j := 0, z.size-1; i < j; i, j = i+1, j-1 {
		z.digits[i], z.digits[j] = z.digits[j], z.digits[i]
	}
}

// Cmp compares z and x and returns:
//
//	-1 if z <  x
//	 0 if z == x
//	+1 if z >  x
func (z *Int) Cmp(x *Int) int {
	switch {
	case z.size < x.size:
		return -1
	case z.size > x.size:
		return 1
	}
	for i := z.size - 1; i >= 0; i-- {
		switch {
		case z.digits[i] < x.digits[i]:
			return -1
		case z.digits[i] > x.digits[i]:
			return 1
		}
	}
	return 0
}

//////////////// FORMAT

// String returns the decimal representation of z.
func (z *Int) String() string {
	if z.size == 0 {
		return _zero
	}
	b := make([]byte, z.size)
	for i := 0; i < z.size; i++ {
		b[i] = '0' + z.digits[z.size-1-i]
	}
	return string(b)
}

// Grouped returns the decimal representation of z with a comma between
// every group of three digits, counting from the least significant one.
func (z *Int) Grouped() string {
	if z.size == 0 {
		return _zero
	}
	b := make([]byte, 0, z.size+z.size/_group)
	for i := z.size; i >= 1; i-- {
		if i != z.size && i%_group == 0 {
			b = append(b, _separator)
		}
		b = append(b, '0'+z.digits[i-1])
	}
	return string(b)
}
