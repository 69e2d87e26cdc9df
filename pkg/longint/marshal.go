package longint

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

//////////////// CONVERSION

// SetBigInt sets z to b and returns z. On error z is left unchanged.
func (z *Int) SetBigInt(b *big.Int) (*Int, error) {
	if b.Sign() < 0 {
		return z, ErrNegative
	}
	return z.SetString(b.Text(_base))
}

// SetUint256 sets z to x and returns z. Every uint256 fits in Capacity digits.
func (z *Int) SetUint256(x *uint256.Int) *Int {
	if _, err := z.SetString(x.ToBig().Text(_base)); err != nil {
		panic(err)
	}
	return z
}

// SetHex sets z to the value of the 0x prefixed hexadecimal string s and
// returns z. Leading zeros are ignored. On error z is left unchanged.
func (z *Int) SetHex(s string) (*Int, error) {
	if !has0xPrefix(s) {
		return z, ErrNotHexString
	}
	if len(s) == 2 {
		return z, ErrEmptyString
	}
	digits := strings.TrimLeft(s[2:], _zero)
	if len(digits) == 0 {
		return z.SetZero(), nil
	}

	if len(digits) <= _hex256 {
		x, err := uint256.FromHex("0x" + strings.ToLower(digits))
		if err != nil {
			return z, ErrNotHexString
		}
		return z.SetUint256(x), nil
	}

	b, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return z, ErrNotHexString
	}
	return z.SetBigInt(b)
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

//////////////// MARSHALLER

// MarshalJSON encodes z as a JSON number.
func (z *Int) MarshalJSON() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalJSON accepts a JSON number, a quoted decimal string or a quoted
// 0x prefixed hexadecimal string.
func (z *Int) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
		if has0xPrefix(s) {
			_, err := z.SetHex(s)
			return err
		}
	}
	_, err := z.SetString(s)
	return err
}
