package poly

import (
	"crypto/rand"
	"testing"

	"github.com/f3rmion/tbls/bls12381"
	"github.com/f3rmion/tbls/group"
	"github.com/f3rmion/tbls/seed"
)

func scalar(g group.Group, v uint64) group.Scalar {
	return g.NewScalar().SetUint64(v)
}

// workedExample returns 3 + 2x + x^2.
func workedExample(g group.Group) *Polynomial {
	return New(g, []group.Scalar{scalar(g, 3), scalar(g, 2), scalar(g, 1)})
}

func TestEvaluateAt(t *testing.T) {
	g := bls12381.G2{}
	p := workedExample(g)

	cases := map[uint64]uint64{
		0:  3,
		1:  6,
		2:  11,
		3:  18,
		10: 123,
	}
	for x, want := range cases {
		got := p.EvaluateAt(scalar(g, x))
		if !got.Equal(scalar(g, want)) {
			t.Errorf("p(%d) != %d", x, want)
		}
	}

	t.Run("ZeroPolynomial", func(t *testing.T) {
		empty := New(g, nil)
		if !empty.EvaluateAt(scalar(g, 5)).IsZero() {
			t.Error("empty polynomial should evaluate to zero")
		}
	})
}

func TestRandom(t *testing.T) {
	g := bls12381.G2{}

	t.Run("Length", func(t *testing.T) {
		for _, threshold := range []int{0, 1, 5} {
			p, err := Random(g, threshold, rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			if p.Threshold() != threshold {
				t.Errorf("expected %d coefficients, got %d", threshold, p.Threshold())
			}
		}
	})

	t.Run("DeterministicFromSeed", func(t *testing.T) {
		a, err := Random(g, 4, seed.FromBytes([]byte("poly")).Rng())
		if err != nil {
			t.Fatal(err)
		}
		b, _ := Random(g, 4, seed.FromBytes([]byte("poly")).Rng())

		for i := range a.Coefficients {
			if !a.Coefficients[i].Equal(b.Coefficients[i]) {
				t.Errorf("coefficient %d differs", i)
			}
		}
	})

	t.Run("Zeroize", func(t *testing.T) {
		p, _ := Random(g, 3, rand.Reader)
		coeffs := p.Coefficients
		p.Zeroize()

		if p.Threshold() != 0 {
			t.Error("zeroized polynomial should have no coefficients")
		}
		for i, c := range coeffs {
			if !c.IsZero() {
				t.Errorf("coefficient %d not wiped", i)
			}
		}
	})
}

func TestPublicCoefficients(t *testing.T) {
	g := bls12381.G2{}

	t.Run("EvaluateInExponent", func(t *testing.T) {
		p, _ := Random(g, 4, rand.Reader)
		pc := NewPublicCoefficients(g, p)

		for x := uint64(0); x < 6; x++ {
			want := g.NewPoint().ScalarMult(p.EvaluateAt(scalar(g, x)), g.Generator())
			got := pc.EvaluateAt(scalar(g, x))
			if !got.Equal(want) {
				t.Errorf("evaluation in the exponent differs at x=%d", x)
			}
		}
	})

	t.Run("CombinedPublicKeyIsConstantTerm", func(t *testing.T) {
		p := workedExample(g)
		pc := NewPublicCoefficients(g, p)

		want := g.NewPoint().ScalarMult(scalar(g, 3), g.Generator())
		if !pc.CombinedPublicKey().Equal(want) {
			t.Error("combined key should be 3*G")
		}
		if !pc.CombinedPublicKey().Equal(pc.EvaluateAt(g.NewScalar())) {
			t.Error("combined key should equal evaluation at zero")
		}
		if pc.CombinedPublicKey().Equal(pc.EvaluateAt(scalar(g, 1))) {
			t.Error("combined key should differ from evaluation at one")
		}
	})

	t.Run("EmptyCombinedPublicKey", func(t *testing.T) {
		pc := NewPublicCoefficients(g, New(g, nil))
		if !pc.CombinedPublicKey().IsIdentity() {
			t.Error("empty coefficients should give the identity")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		p, _ := Random(g, 3, rand.Reader)
		pc := NewPublicCoefficients(g, p)

		data := pc.Bytes()
		if len(data) != 3*bls12381.G2Size {
			t.Fatalf("unexpected encoding length %d", len(data))
		}
		restored, err := PublicCoefficientsFromBytes(g, data)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(pc) {
			t.Error("public coefficients roundtrip failed")
		}

		if _, err := PublicCoefficientsFromBytes(g, data[1:]); err == nil {
			t.Error("expected error for misaligned encoding")
		}
	})
}

func TestInterpolateScalar(t *testing.T) {
	g := bls12381.G2{}
	p := workedExample(g)

	subsets := [][]uint64{
		{1, 2, 3},
		{1, 3, 5},
		{2, 4, 9},
		{1, 2, 3, 4, 5},
	}
	for _, xs := range subsets {
		knots := make([]ScalarKnot, len(xs))
		for i, x := range xs {
			knots[i] = ScalarKnot{X: scalar(g, x), Y: p.EvaluateAt(scalar(g, x))}
		}
		if !InterpolateScalar(g, knots).Equal(scalar(g, 3)) {
			t.Errorf("interpolation over %v did not recover 3", xs)
		}
	}

	t.Run("TooFewKnots", func(t *testing.T) {
		knots := []ScalarKnot{
			{X: scalar(g, 1), Y: scalar(g, 6)},
			{X: scalar(g, 2), Y: scalar(g, 11)},
		}
		// the line through (1,6) and (2,11) meets x=0 at 1, not 3
		if !InterpolateScalar(g, knots).Equal(scalar(g, 1)) {
			t.Error("unexpected value from under-determined interpolation")
		}
	})
}

func TestInterpolateInExponent(t *testing.T) {
	g1 := bls12381.G1{}
	p := workedExample(g1)

	h, err := bls12381.HashToG1([]byte("knot base"), []byte("TEST_DST_"))
	if err != nil {
		t.Fatal(err)
	}

	knots := make([]Knot, 0, 3)
	for _, x := range []uint64{1, 2, 3} {
		y := g1.NewPoint().ScalarMult(p.EvaluateAt(scalar(g1, x)), h)
		knots = append(knots, Knot{X: scalar(g1, x), Y: y})
	}

	want := g1.NewPoint().ScalarMult(scalar(g1, 3), h)
	if !Interpolate(g1, knots).Equal(want) {
		t.Error("interpolation in G1 did not recover 3*H")
	}

	t.Run("NoKnots", func(t *testing.T) {
		if !Interpolate(g1, nil).IsIdentity() {
			t.Error("interpolating no knots should give the identity")
		}
	})

	t.Run("DuplicateKnotsPanic", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on duplicate x")
			}
		}()
		Interpolate(g1, []Knot{knots[0], knots[0]})
	})
}
