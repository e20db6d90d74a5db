package problemgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned for fraction bounds that cannot yield a
	// coprime pair.
	ErrInvalidBounds = errors.New("invalid fraction bounds")

	// ErrNoCoprimePair is returned when rejection sampling exhausts its
	// attempt budget.
	ErrNoCoprimePair = errors.New("no coprime pair found")
)

// Fraction is a numerator/denominator pair.
type Fraction struct {
	Num int
	Den int
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Mul returns the product reduced to lowest terms.
func (f Fraction) Mul(o Fraction) Fraction {
	return Fraction{Num: f.Num * o.Num, Den: f.Den * o.Den}.Reduce()
}

// Reduce divides numerator and denominator by their gcd.
func (f Fraction) Reduce() Fraction {
	g := gcd(abs(int64(f.Num)), abs(int64(f.Den)))
	if g == 0 {
		return f
	}
	return Fraction{Num: f.Num / int(g), Den: f.Den / int(g)}
}

// Fraction draws numerator and denominator uniformly from [min, max] until
// they are coprime.
func (g *Generator) Fraction(min, max int) (Fraction, error) {
	if min < 1 || max < min {
		return Fraction{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, min, max)
	}
	// A single value is coprime with itself only when it is 1.
	if min == max && min != 1 {
		return Fraction{}, fmt.Errorf("%w: [%d, %d] holds a single value greater than 1", ErrInvalidBounds, min, max)
	}

	attempts := g.config.MaxFractionAttempts
	if attempts <= 0 {
		attempts = DefaultConfig().MaxFractionAttempts
	}
	for i := 0; i < attempts; i++ {
		num := between(g.rng, min, max)
		den := between(g.rng, min, max)
		if gcd(int64(num), int64(den)) == 1 {
			return Fraction{Num: num, Den: den}, nil
		}
	}
	return Fraction{}, fmt.Errorf("%w in [%d, %d] after %d attempts", ErrNoCoprimePair, min, max, attempts)
}
