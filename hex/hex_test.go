package hex

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/ericlagergren/ctcodec"
)

// TestEncodeStdlib tests Encode against encoding/hex.
func TestEncodeStdlib(t *testing.T) {
	src := make([]byte, 1024)
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rand.New(rand.NewSource(seed)).Read(src)

	dst := make([]byte, len(src)*2)
	for i := 0; i <= len(src); i++ {
		want := hex.EncodeToString(src[:i])

		n, err := EncodedLen(i)
		if err != nil {
			t.Fatalf("#%d: EncodedLen: %v", i, err)
		}
		if n != len(want) {
			t.Fatalf("#%d: EncodedLen = %d, want %d", i, n, len(want))
		}

		got, err := Encode(dst, src[:i])
		if err != nil {
			t.Fatalf("#%d: Encode: %v", i, err)
		}
		if string(got) != want {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, string(got)))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 2500; i++ {
		src := make([]byte, rng.Intn(257))
		rng.Read(src)

		enc, err := EncodeToString(src)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		got, err := DecodeString(enc, nil)
		if err != nil {
			t.Fatalf("#%d: DecodeString(%q): %v", i, enc, err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(src, got))
		}
	}
}

func TestVectors(t *testing.T) {
	bin := []byte{1, 5, 11, 15, 19, 131}
	const want = "01050b0f1383"

	got, err := EncodeToString(bin)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	dec, err := DecodeString(want, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, bin) {
		t.Fatalf("mismatch: %s", cmp.Diff(bin, dec))
	}
}

// TestDecodeUppercase checks that decoding accepts both cases.
func TestDecodeUppercase(t *testing.T) {
	bin := []byte{1, 5, 11, 15, 19, 131}
	for _, s := range []string{"01050B0F1383", "01050b0F1383"} {
		dec, err := DecodeString(s, nil)
		if err != nil {
			t.Fatalf("DecodeString(%q): %v", s, err)
		}
		if !bytes.Equal(dec, bin) {
			t.Fatalf("DecodeString(%q): mismatch: %s", s, cmp.Diff(bin, dec))
		}
	}
}

func TestOddLength(t *testing.T) {
	for _, s := range []string{"0", "abc", "01050b0f138"} {
		if _, err := DecodeString(s, nil); !errors.Is(err, ctcodec.ErrInvalidInput) {
			t.Fatalf("DecodeString(%q): expected ErrInvalidInput, got %v", s, err)
		}
	}

	// An ignored byte does not count toward the pairing.
	dec, err := DecodeString("0 1", []byte(" "))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, []byte{1}) {
		t.Fatalf("expected [1], got %v", dec)
	}
}

func TestInvalidByte(t *testing.T) {
	for _, s := range []string{"0g", "zz", "01 02"} {
		if _, err := DecodeString(s, nil); !errors.Is(err, ctcodec.ErrInvalidInput) {
			t.Fatalf("DecodeString(%q): expected ErrInvalidInput, got %v", s, err)
		}
	}
}

func TestIgnoreSet(t *testing.T) {
	bin := []byte{1, 5, 11, 15, 19, 131}
	ignore := []byte(" \r\n")
	for _, s := range []string{
		"01 05 0b 0f 13 83",
		"01050b0f1383\r\n",
		"0 1 0 5 0 b 0 f 1 3 8 3",
	} {
		dec, err := DecodeString(s, ignore)
		if err != nil {
			t.Fatalf("DecodeString(%q): %v", s, err)
		}
		if !bytes.Equal(dec, bin) {
			t.Fatalf("DecodeString(%q): mismatch: %s", s, cmp.Diff(bin, dec))
		}
	}
}

func TestEncodedLenOverflow(t *testing.T) {
	if _, err := EncodedLen(math.MaxInt/2 + 1); !errors.Is(err, ctcodec.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

// TestEncodeOverflow checks that an undersized destination fails
// before anything is written.
func TestEncodeOverflow(t *testing.T) {
	src := []byte{1, 5, 11}
	dst := make([]byte, 5) // needs 6
	if _, err := Encode(dst, src); !errors.Is(err, ctcodec.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if !bytes.Equal(dst, make([]byte, len(dst))) {
		t.Fatalf("destination was written to: %x", dst)
	}
}

func TestDecodeOverflow(t *testing.T) {
	dst := make([]byte, 2) // needs 6
	if _, err := Decode(dst, []byte("01050b0f1383"), nil); !errors.Is(err, ctcodec.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestAppend(t *testing.T) {
	bin := []byte{1, 5, 11, 15, 19, 131}

	buf, err := AppendEncode([]byte("hex:"), bin)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "hex:01050b0f1383" {
		t.Fatalf("got %q", buf)
	}

	out, err := AppendDecode([]byte{0xaa}, []byte("01050b0f1383"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, append([]byte{0xaa}, bin...)) {
		t.Fatalf("got %v", out)
	}
}

func TestDecodeEmpty(t *testing.T) {
	dec, err := DecodeString("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(dec) != 0 {
		t.Fatalf("got %v", dec)
	}
}

var sink []byte

func BenchmarkEncode(b *testing.B) {
	src := make([]byte, 1024)
	dst := make([]byte, 2048)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		sink, _ = Encode(dst, src)
	}
}

func BenchmarkDecode(b *testing.B) {
	src := make([]byte, 1024)
	enc, err := EncodeToString(src)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]byte, 1024)
	b.SetBytes(int64(len(enc)))
	for i := 0; i < b.N; i++ {
		sink, _ = Decode(dst, []byte(enc), nil)
	}
}
