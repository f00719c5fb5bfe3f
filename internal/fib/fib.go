package fib

import "sync"

// Pair encodes a single character as a Fibonacci index plus an offset
// from that Fibonacci number. Decoding computes chr(fib(Index) + Offset).
type Pair struct {
	Index  int
	Offset int
}

// memo caches computed Fibonacci numbers across calls. Watch mode can
// run two performances on overlapping goroutines, so the cache is
// guarded.
var (
	memoMu sync.Mutex
	memo   = make(map[int]int)
)

// N returns the nth Fibonacci number, memoized
func N(n int) int {
	memoMu.Lock()
	defer memoMu.Unlock()
	return fibonacci(n)
}

func fibonacci(n int) int {
	if n < 2 {
		return n
	}
	if v, ok := memo[n]; ok {
		return v
	}
	v := fibonacci(n-1) + fibonacci(n-2)
	memo[n] = v
	return v
}

// Decode converts encoded pairs back into runes
func Decode(pairs []Pair) []rune {
	runes := make([]rune, 0, len(pairs))
	for _, p := range pairs {
		runes = append(runes, rune(N(p.Index)+p.Offset))
	}
	return runes
}
