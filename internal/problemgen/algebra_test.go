package problemgen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sides evaluates both sides of a generated equation at x.
func sides(t *testing.T, plain string, x int64) (left, right int64) {
	t.Helper()
	m := linearRe.FindStringSubmatch(plain)
	require.NotNil(t, m, "unexpected equation %q", plain)

	a := coefficient(m[1])
	b, _ := strconv.ParseInt(m[2], 10, 64)
	d, _ := strconv.ParseInt(m[5], 10, 64)
	left = a*x + b
	if m[4] == "" {
		return left, d
	}
	c := coefficient(m[3])
	if m[4] == "-" {
		d = -d
	}
	return left, c*x + d
}

func TestAlgebra_Forms(t *testing.T) {
	g := New(NewRand(2024), DefaultConfig())
	seen := map[EquationForm]int{}

	for i := 0; i < 500; i++ {
		q, err := g.Algebra()
		require.NoError(t, err)
		require.Equal(t, CategoryAlgebra, q.Category)
		require.Equal(t, AnswerTypeSolution, q.AnswerType)
		seen[q.Form]++

		assert.True(t, strings.HasPrefix(q.Text, `Solve for x: \(\displaystyle `), "unexpected text %q", q.Text)
		assert.True(t, strings.HasSuffix(q.Text, `\)`))

		x, err := strconv.ParseInt(strings.TrimPrefix(q.Answer, "x = "), 10, 64)
		require.NoError(t, err, "answer %q", q.Answer)
		assert.True(t, x >= 0 && x <= 9, "solution %d out of range", x)

		left, right := sides(t, q.Plain, x)
		assert.Equal(t, left, right, "x = %d does not satisfy %q", x, q.Plain)

		if q.Form == FormTwoSided {
			m := linearRe.FindStringSubmatch(q.Plain)
			assert.NotEqual(t, coefficient(m[1]), coefficient(m[3]), "equal coefficients in %q", q.Plain)
		}
	}

	assert.Greater(t, seen[FormOneSided], 0)
	assert.Greater(t, seen[FormTwoSided], 0)
}

func TestAlgebra_ResamplesEqualCoefficient(t *testing.T) {
	// Draws: form two-sided (1), x=3 (3), a=2 (1), c=2 (1, rejected),
	// c=5 (4), b=4 (4). d = 4 + 3·(2-5) = -5.
	rng := &seqRand{vals: []int{1, 3, 1, 1, 4, 4}}
	g := New(rng, DefaultConfig())

	q, err := g.Algebra()
	require.NoError(t, err)
	assert.Equal(t, FormTwoSided, q.Form)
	assert.Equal(t, "2x + 4 = 5x - 5", q.Plain)
	assert.Equal(t, "x = 3", q.Answer)
}

func TestAlgebra_OneSidedLayout(t *testing.T) {
	// Draws: form one-sided (0), a=1 (0), x=6 (6), b=2 (2). c = 8.
	rng := &seqRand{vals: []int{0, 0, 6, 2}}
	g := New(rng, DefaultConfig())

	q, err := g.Algebra()
	require.NoError(t, err)
	assert.Equal(t, FormOneSided, q.Form)
	assert.Equal(t, "x + 2 = 8", q.Plain)
	assert.Equal(t, `Solve for x: \(\displaystyle x + 2 = 8\)`, q.Text)
	assert.Equal(t, "x = 6", q.Answer)
}
