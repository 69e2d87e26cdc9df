package longint

// Div sets z to the quotient z/y, truncated, and returns z.
// It panics with ErrDivisionByZero if y is 0.
//
// Div is schoolbook long division: for each position of z, from the most
// significant down, y is subtracted from the aligned window of the running
// remainder for as long as the window is not less than y, and the number of
// subtractions is the next quotient digit.
func (z *Int) Div(y *Int) *Int {
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	if y.size > z.size || z.IsZero() {
		return z.SetZero()
	}

	var quo Int
	rem := new(Int).Set(z)

	// oneOff is set while the remainder left by the previous position may
	// reach into the digit just above the current window.
	oneOff := false
	for i := z.size; i >= y.size; i-- {
		offset := i - y.size
		if cmpWindow(rem, y, offset, oneOff) {
			count, remainder := subWindow(rem, y, offset, oneOff)
			quo.digits[quo.size] = uint8(count)
			quo.size++
			oneOff = remainder
			continue
		}
		if i != z.size {
			quo.digits[quo.size] = 0
			quo.size++
		}
		oneOff = true
	}

	quo.reverse()
	return z.Set(&quo)
}

// cmpWindow reports whether the window of x starting at offset is not less
// than y. The window is as wide as y, plus one more significant digit when
// oneOff is set. Digits are compared from the most significant down.
func cmpWindow(x, y *Int, offset int, oneOff bool) bool {
	top := y.size - 1
	if oneOff {
		top++
	}
	for i := top; i >= 0; i-- {
		a, b := x.digit(i+offset), y.digit(i)
		if a > b {
			return true
		}
		if a < b {
			return false
		}
	}
	return true
}

// subWindow subtracts y from the window of x at offset until the window is
// less than y. It returns the number of subtractions and whether a non-zero
// digit is left in the window.
func subWindow(x, y *Int, offset int, oneOff bool) (count int, remainder bool) {
	width := y.size
	if oneOff {
		width++
	}
	for cmpWindow(x, y, offset, oneOff) {
		borrow := 0
		remainder = false
		for i := 0; i < width; i++ {
			d := x.digit(i+offset) - y.digit(i) - borrow
			if d < 0 {
				d += _base
				borrow = 1
			} else {
				borrow = 0
			}
			x.digits[i+offset] = uint8(d)
			if d != 0 {
				remainder = true
			}
		}
		count++
	}
	return count, remainder
}
