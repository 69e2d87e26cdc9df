package longint

import "fmt"

// Add sets z to the sum z+y and returns z.
// It panics with ErrOverflow if the sum needs more than Capacity digits,
// leaving z unchanged.
func (z *Int) Add(y *Int) *Int {
	sum := new(Int).Set(z)
	if overflow := sum.add(y); overflow {
		panic(ErrOverflow)
	}
	return z.Set(sum)
}

// Mul sets z to the product z*y and returns z.
// It panics with ErrOverflow if the product needs more than Capacity digits.
func (z *Int) Mul(y *Int) *Int {
	if overflow := z.mul(y); overflow {
		panic(ErrOverflow)
	}
	return z
}

// Pow sets z to z**y and returns z. 0**y is 0 for every y, including 0.
// It panics with an error wrapping ErrOverflow if y exceeds MaxPower or
// the result needs more than Capacity digits.
func (z *Int) Pow(y *Int) *Int {
	if z.IsZero() || z.IsOne() || y.IsOne() {
		return z
	}
	if y.IsZero() {
		return z.SetOne()
	}

	p, err := y.exponent()
	if err != nil {
		panic(err)
	}

	// z**p = (z**half)**2 * z**rem
	half, rem := p/2, p%2
	base := new(Int).Set(z)
	holder := new(Int).Set(z)
	for i := 0; i < half-1; i++ {
		holder.Mul(base)
	}
	holder.Mul(holder)
	if rem == 1 {
		holder.Mul(base)
	}
	return z.Set(holder)
}

// add sets z to z+y and reports whether the result overflowed.
//
// Digits of y may exceed 9 (partial products hold up to 81 per cell); the
// carry absorbs them, so z is always left with digits in 0..9.
func (z *Int) add(y *Int) bool {
	if y.size == 0 {
		return false
	}

	n := max(z.size, y.size)
	carry := 0
	for i := 0; i < n; i++ {
		sum := z.digit(i) + y.digit(i) + carry
		z.digits[i] = uint8(sum % _base)
		carry = sum / _base
	}
	z.size = n

	if carry != 0 {
		if n+1 > Capacity {
			return true
		}
		z.digits[n] = uint8(carry)
		z.size++
	}
	return false
}

// mul sets z to z*y and reports whether the result overflowed.
// Each digit of z contributes one shifted partial product of y, which is
// accumulated through add without carrying inside the partial product.
func (z *Int) mul(y *Int) bool {
	if y.IsZero() {
		z.SetZero()
		return false
	}
	if y.IsOne() {
		return false
	}

	var total Int
	for i := 0; i < z.size; i++ {
		if y.size+i > Capacity {
			return true
		}
		d := z.digits[i]
		if d == 0 {
			continue
		}
		partial := Int{size: y.size + i}
		for j := 0; j < y.size; j++ {
			partial.digits[i+j] = d * y.digits[j]
		}
		if overflow := total.add(&partial); overflow {
			return true
		}
	}
	z.Set(&total)
	return false
}

// exponent decodes z as a machine integer for use as a power.
func (z *Int) exponent() (int, error) {
	p := 0
	for i := z.size - 1; i >= 0; i-- {
		p = p*_base + int(z.digits[i])
		if p > MaxPower {
			return 0, fmt.Errorf("%w: exponent %s exceeds %d", ErrOverflow, z, MaxPower)
		}
	}
	return p, nil
}
