package bitnum_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitnum"
)

func n(v uint64) bitnum.Number {
	return bitnum.FromUint64(v)
}

func TestArithmetic(t *testing.T) {
	type TC struct {
		name string
		fn   func() bitnum.Number
		want uint64
	}

	tcs := []TC{
		{"5+3", func() bitnum.Number { return n(5).Add(n(3)) }, 8},
		{"10-3", func() bitnum.Number { return n(10).Sub(n(3)) }, 7},
		{"6*7", func() bitnum.Number { return n(6).Mul(n(7)) }, 42},
		{"0+0", func() bitnum.Number { return n(0).Add(n(0)) }, 0},
		{"1+1", func() bitnum.Number { return n(1).Add(n(1)) }, 2},
		{"255+1", func() bitnum.Number { return n(255).Add(n(1)) }, 256},
		{"8-8", func() bitnum.Number { return n(8).Sub(n(8)) }, 0},
		{"200-0", func() bitnum.Number { return n(200).Sub(n(0)) }, 200},
		{"128-1", func() bitnum.Number { return n(128).Sub(n(1)) }, 127},
		{"0*9", func() bitnum.Number { return n(0).Mul(n(9)) }, 0},
		{"255*255", func() bitnum.Number { return n(255).Mul(n(255)) }, 65025},
		{"1*12345", func() bitnum.Number { return n(1).Mul(n(12345)) }, 12345},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got := tc.fn()
			require.Equal(t, tc.want, got.Uint64(), spew.Sdump(got))
			require.True(t, got.Equal(n(tc.want)))
		})
	}
}

func TestAddWidth(t *testing.T) {
	sum := bitnum.MustParse("0101").Add(bitnum.MustParse("11"))
	require.Equal(t, 4, sum.BitWidth())
	require.Equal(t, uint64(8), sum.Uint64())

	sum = bitnum.MustParse("1111").Add(bitnum.MustParse("1"))
	require.Equal(t, 5, sum.BitWidth())
	require.Equal(t, "10000", mustText(t, sum))

	sum = bitnum.Number{}.Add(bitnum.Number{})
	require.Equal(t, 0, sum.BitWidth())
}

func TestSub(t *testing.T) {
	type TC struct {
		a, b string
		want string
	}

	tcs := []TC{
		{a: "1010", b: "0011", want: "0111"},
		{a: "1010", b: "11", want: "0111"},
		{a: "1111", b: "1111", want: "0000"},
		{a: "10000000", b: "1", want: "01111111"},

		// A wide subtrahend holding a small value.
		{a: "110", b: "00000101", want: "001"},

		// Wraparound when the subtrahend is larger.
		{a: "0011", b: "0101", want: "1110"},
		{a: "11", b: "101", want: "10"},
		{a: "0000", b: "1", want: "1111"},
		{a: "", b: "1", want: ""},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s-%s", i, tc.a, tc.b), func(t *testing.T) {
			a := bitnum.MustParse(tc.a)
			b := bitnum.MustParse(tc.b)

			got := a.Sub(b)
			require.Equal(t, tc.want, mustText(t, got))
			require.Equal(t, a.BitWidth(), got.BitWidth())
		})
	}
}

func TestDivMod(t *testing.T) {
	type TC struct {
		a, b uint64
		q, r uint64
	}

	tcs := []TC{
		{a: 17, b: 5, q: 3, r: 2},
		{a: 3, b: 5, q: 0, r: 3},
		{a: 5, b: 5, q: 1, r: 0},
		{a: 0, b: 7, q: 0, r: 0},
		{a: 100, b: 1, q: 100, r: 0},
		{a: 255, b: 16, q: 15, r: 15},
		{a: 1000000, b: 999, q: 1001, r: 1},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d/%d", i, tc.a, tc.b), func(t *testing.T) {
			q, r, err := n(tc.a).DivMod(n(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.q, q.Uint64())
			require.Equal(t, tc.r, r.Uint64())

			q, err = n(tc.a).Div(n(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.q, q.Uint64())

			r, err = n(tc.a).Mod(n(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.r, r.Uint64())
		})
	}
}

func TestDivModWidth(t *testing.T) {
	q, r, err := bitnum.MustParse("10001").DivMod(bitnum.MustParse("101"))
	require.NoError(t, err)
	require.Equal(t, "00011", mustText(t, q))
	require.Equal(t, uint64(2), r.Uint64())

	q, r, err = bitnum.MustParse("0011").DivMod(bitnum.MustParse("101"))
	require.NoError(t, err)
	require.Equal(t, 0, q.BitWidth())
	require.Equal(t, "0011", mustText(t, r))
}

func TestDivisionByZero(t *testing.T) {
	for i, divisor := range []bitnum.Number{
		n(0),
		bitnum.MustParse("0"),
		bitnum.MustParse("0000"),
	} {
		t.Run(fmt.Sprintf("[%d]%s", i, divisor), func(t *testing.T) {
			_, err := n(17).Div(divisor)
			require.True(t, bitnum.DivisionByZero.Has(err), "%+v", err)
			require.True(t, bitnum.Error.Has(err), "%+v", err)

			_, err = n(17).Mod(divisor)
			require.True(t, bitnum.DivisionByZero.Has(err), "%+v", err)

			_, _, err = n(0).DivMod(divisor)
			require.True(t, bitnum.DivisionByZero.Has(err), "%+v", err)
		})
	}
}

func TestAssign(t *testing.T) {
	x := n(10)

	x.AddAssign(n(5))
	require.Equal(t, uint64(15), x.Uint64())

	x.SubAssign(n(3))
	require.Equal(t, uint64(12), x.Uint64())

	x.MulAssign(n(3))
	require.Equal(t, uint64(36), x.Uint64())

	require.NoError(t, x.DivAssign(n(5)))
	require.Equal(t, uint64(7), x.Uint64())

	require.NoError(t, x.ModAssign(n(4)))
	require.Equal(t, uint64(3), x.Uint64())

	x.LshAssign(3)
	require.Equal(t, uint64(24), x.Uint64())

	x.RshAssign(2)
	require.Equal(t, uint64(6), x.Uint64())

	before := x.Clone()

	err := x.DivAssign(n(0))
	require.True(t, bitnum.DivisionByZero.Has(err))
	require.Equal(t, mustText(t, before), mustText(t, x))

	err = x.ModAssign(bitnum.Number{})
	require.True(t, bitnum.DivisionByZero.Has(err))
	require.Equal(t, mustText(t, before), mustText(t, x))

	// The receiver may also be the operand.
	x.AddAssign(x)
	require.Equal(t, uint64(12), x.Uint64())
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Keep products and sums well inside 64 bits.
	random := func() uint64 {
		return uint64(rng.Int63n(1 << 20))
	}

	for i := 0; i < 200; i++ {
		av, bv, cv := random(), random(), random()
		a, b, c := n(av), n(bv), n(cv)

		require.True(t, a.Add(b).Equal(b.Add(a)), "commutative %d %d", av, bv)
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "associative %d %d %d", av, bv, cv)
		require.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))), "distributive %d %d %d", av, bv, cv)

		require.Equal(t, av+bv, a.Add(b).Uint64())
		require.Equal(t, av*bv, a.Mul(b).Uint64())

		if av >= bv {
			require.Equal(t, av-bv, a.Sub(b).Uint64())
		}

		if bv != 0 {
			q, r, err := a.DivMod(b)
			require.NoError(t, err)
			require.True(t, q.Mul(b).Add(r).Equal(a), "division identity %d %d", av, bv)
			require.Equal(t, av/bv, q.Uint64())
			require.Equal(t, av%bv, r.Uint64())
		}
	}
}

func TestTwosComplement(t *testing.T) {
	type TC struct {
		input string
		want  string
	}

	tcs := []TC{
		{input: "0011", want: "1101"},
		{input: "0001", want: "1111"},
		{input: "0111", want: "1001"},

		// A set MSB gains a leading zero before the flip.
		{input: "101", want: "1011"},
		{input: "1", want: "11"},

		// Zero carries out of the top.
		{input: "0000", want: "10000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			got := bitnum.MustParse(tc.input).TwosComplement()
			require.Equal(t, tc.want, mustText(t, got))
		})
	}
}

func BenchmarkMul(b *testing.B) {
	x := n(1<<31 - 1)
	y := n(1<<29 + 12345)

	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

func BenchmarkDivMod(b *testing.B) {
	x := n(1<<62 + 987654321)
	y := n(1<<20 + 7)

	for i := 0; i < b.N; i++ {
		_, _, err := x.DivMod(y)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
