// Package church implements Church-encoded natural numbers. A numeral
// is represented purely as repeated function application, so decoding a
// codepoint through this package exercises nothing but closures.
package church

// Numeral is a Church-encoded natural number: given a successor
// function it returns the function that applies it n times.
type Numeral func(f func(int) int) func(int) int

// Zero applies the successor function no times
func Zero(f func(int) int) func(int) int {
	return func(x int) int { return x }
}

// Succ returns the numeral one greater than n
func Succ(n Numeral) Numeral {
	return func(f func(int) int) func(int) int {
		return func(x int) int {
			return f(n(f)(x))
		}
	}
}

// FromInt builds a numeral by folding Succ over Zero n times
func FromInt(n int) Numeral {
	result := Numeral(Zero)
	for i := 0; i < n; i++ {
		result = Succ(result)
	}
	return result
}

// Int collapses the numeral back to a machine integer
func (n Numeral) Int() int {
	return n(func(x int) int { return x + 1 })(0)
}

// DecodeRune round-trips a codepoint through its Church encoding
func DecodeRune(codepoint int) rune {
	return rune(FromInt(codepoint).Int())
}
