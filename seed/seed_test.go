package seed

import (
	"bytes"
	"io"
	"testing"
)

func readN(t *testing.T, r io.Reader, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestRngDeterministic(t *testing.T) {
	a := readN(t, FromBytes([]byte("seed")).Rng(), 200)
	b := readN(t, FromBytes([]byte("seed")).Rng(), 200)
	c := readN(t, FromBytes([]byte("other seed")).Rng(), 200)

	if !bytes.Equal(a, b) {
		t.Error("same seed produced different streams")
	}
	if bytes.Equal(a, c) {
		t.Error("different seeds produced the same stream")
	}
}

func TestRngSplitReads(t *testing.T) {
	var raw [Size]byte
	raw[0] = 7

	whole := readN(t, FromRaw(raw).Rng(), 100)

	r := FromRaw(raw).Rng()
	parts := append(readN(t, r, 33), readN(t, r, 67)...)

	if !bytes.Equal(whole, parts) {
		t.Error("stream depends on read boundaries")
	}
}

func TestDerive(t *testing.T) {
	parent := FromBytes([]byte("parent"))

	a := readN(t, parent.Derive("dealing-1").Rng(), 32)
	b := readN(t, parent.Derive("dealing-1").Rng(), 32)
	c := readN(t, parent.Derive("dealing-2").Rng(), 32)
	p := readN(t, parent.Rng(), 32)

	if !bytes.Equal(a, b) {
		t.Error("Derive is not deterministic")
	}
	if bytes.Equal(a, c) {
		t.Error("different domains should give different seeds")
	}
	if bytes.Equal(a, p) {
		t.Error("child seed should differ from parent")
	}
}

func TestFromReader(t *testing.T) {
	src := bytes.Repeat([]byte{0xab}, Size)
	s, err := FromReader(bytes.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s.value[:], src) {
		t.Error("seed does not hold reader bytes")
	}

	if _, err := FromReader(bytes.NewReader(src[:Size-1])); err == nil {
		t.Error("expected error from short reader")
	}
}

func TestZeroize(t *testing.T) {
	s := FromBytes([]byte("secret"))
	s.Zeroize()
	if s.value != [Size]byte{} {
		t.Error("seed not wiped")
	}
}
