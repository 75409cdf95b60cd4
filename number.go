package kson

import (
	"math"
	"math/big"
	"strconv"

	"github.com/cybergodev/kson/internal"
	"github.com/shopspring/decimal"
)

// parseNumber scans a number literal and classifies it as int64, *big.Int,
// float64 or decimal.Decimal.
//
// Integers are accumulated as a negative int64 while scanning so that the
// whole int64 range, including math.MinInt64, is checked without a second
// pass. Literals with a fraction or an exponent become float64 when they
// have at most 15 significant digits and a small exponent, and
// decimal.Decimal otherwise.
func (p *Parser) parseNumber() (any, error) {
	p.pos = 0
	digits := 0
	negative := false
	isDecimal := false
	fitsInLong := true
	fitsInDouble := true
	var negValue int64

	// sign
	if p.ch == '-' {
		negative = true
		p.buffer[p.pos] = p.ch
		p.pos++
		if p.next() == internal.EOF {
			return nil, p.fail("malformed number")
		}
	}

	// mantissa
	n, err := p.readDigits(false)
	if err != nil {
		return nil, err
	}
	digits += n

	if p.ch == '.' {
		isDecimal = true
		p.buffer[p.pos] = p.ch
		p.pos++
		if p.next() == internal.EOF {
			return nil, p.fail("malformed number")
		}
		n, err = p.readDigits(true)
		if err != nil {
			return nil, err
		}
		digits += n
	} else if p.ch != 'e' && p.ch != 'E' {
		fitsInLong, negValue = p.accumulate(negative)
	}
	if digits > maxDoubleDigits {
		fitsInDouble = false
	}

	// exponent
	if p.ch == 'e' || p.ch == 'E' {
		isDecimal = true
		p.buffer[p.pos] = p.ch
		p.pos++
		if p.next() == internal.EOF {
			return nil, p.fail("malformed number")
		}
		if p.pos == len(p.buffer) {
			return nil, p.fail("number is too long")
		}
		if p.ch == '+' || p.ch == '-' {
			p.buffer[p.pos] = p.ch
			p.pos++
			if p.next() == internal.EOF {
				return nil, p.fail("malformed number")
			}
		}
		expPos := p.pos
		if _, err := p.readDigits(true); err != nil {
			return nil, err
		}
		if fitsInDouble && !exponentFitsDouble(p.buffer[expPos:p.pos]) {
			fitsInDouble = false
		}
	}

	var number any
	switch {
	case !isDecimal && fitsInLong && (negative || negValue != math.MinInt64) && (!negative || negValue != 0):
		if negative {
			number = negValue
		} else {
			number = -negValue
		}
	case !isDecimal:
		bi, ok := new(big.Int).SetString(string(p.buffer[:p.pos]), 10)
		if !ok {
			return nil, p.fail("malformed number")
		}
		number = bi
	default:
		literal := string(p.buffer[:p.pos])
		f, err := strconv.ParseFloat(literal, 64)
		if fitsInDouble && err == nil {
			number = f
		} else {
			d, err := decimal.NewFromString(literal)
			if err != nil {
				return nil, p.fail("malformed number")
			}
			number = d
		}
	}

	// the scan always reads one character past the literal
	p.back()
	return number, nil
}

// accumulate computes the negated value of the integer in the buffer and
// reports whether it fits in an int64, using a decile check at every digit
func (p *Parser) accumulate(negative bool) (bool, int64) {
	i := 0
	if negative {
		i = 1
	}
	negValue := -int64(p.buffer[i] - '0')
	for i++; i < p.pos; i++ {
		newNegValue := negValue*10 - int64(p.buffer[i]-'0')
		if negValue < minInt64Decile || negValue == minInt64Decile && newNegValue >= negValue {
			return false, negValue
		}
		negValue = newNegValue
	}
	return true, negValue
}

// exponentFitsDouble conservatively judges whether an exponent stays within
// float64 range. Three digit exponents pass only when their digits are at
// most 3, 0 and 7 respectively.
func exponentFitsDouble(exp []rune) bool {
	if len(exp) < maxExponentDigit {
		return true
	}
	return len(exp) == maxExponentDigit && exp[0] <= '3' && exp[1] <= '0' && exp[2] <= '7'
}

// readDigits copies a run of digits into the buffer and returns its length.
// A leading zero followed by more digits is malformed unless zeroFirstAllowed.
func (p *Parser) readDigits(zeroFirstAllowed bool) (int, error) {
	n := 0
	for p.pos < len(p.buffer) {
		if !internal.IsDigit(p.ch) {
			break
		}
		p.buffer[p.pos] = p.ch
		p.pos++
		n++
		p.next()
	}
	if p.pos == len(p.buffer) {
		return 0, p.fail("number is too long")
	}
	if n == 0 || !zeroFirstAllowed && n > 1 && p.buffer[p.pos-n] == '0' {
		return 0, p.fail("malformed number")
	}
	return n, nil
}
