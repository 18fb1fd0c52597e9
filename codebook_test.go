package huffpack

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func makeCodeBook(t *testing.T, input []byte) *CodeBook {
	t.Helper()
	ft, _ := CountBytes(input)
	root := BuildTree(ft)
	if root == nil {
		t.Fatalf("no tree for input %q", input)
	}
	return NewCodeBook(root)
}

func TestNewCodeBookDegenerate(t *testing.T) {
	book := makeCodeBook(t, []byte("AAAA"))

	code, ok := book.Code('A')
	if !ok {
		t.Fatal("expected a code for 'A'")
	}
	if code.BitLength != 1 || code.Bit(0) != 0 {
		t.Errorf("expected the one-bit code \"0\", got %s", code)
	}

	for i := 0; i < AlphabetSize; i++ {
		if byte(i) == 'A' {
			continue
		}
		if _, ok := book.Code(byte(i)); ok {
			t.Errorf("unexpected code for absent byte %d", i)
		}
	}
}

func TestNewCodeBookPrefixFree(t *testing.T) {
	book := makeCodeBook(t, []byte("abracadabra"))

	var defined []BitString
	for i := 0; i < AlphabetSize; i++ {
		code, ok := book.Code(byte(i))
		present := strings.IndexByte("abcdr", byte(i)) >= 0
		if ok != present {
			t.Errorf("byte %d: expected code presence %v, got %v", i, present, ok)
		}
		if ok {
			defined = append(defined, code)
		}
	}

	isPrefix := func(short, long BitString) bool {
		if short.BitLength > long.BitLength {
			return false
		}
		for i := 0; i < short.BitLength; i++ {
			if short.Bit(i) != long.Bit(i) {
				return false
			}
		}
		return true
	}
	for i, a := range defined {
		for j, b := range defined {
			if i != j && isPrefix(a, b) {
				t.Errorf("code %s is a prefix of code %s", a, b)
			}
		}
	}

	// The most frequent symbol sits opposite the merged remainder in the
	// final merge, so 'a' always gets a one-bit code here.
	if code, _ := book.Code('a'); code.BitLength != 1 {
		t.Errorf("expected a one-bit code for 'a', got %s", code)
	}
}

func TestNewCodeBookKraftEquality(t *testing.T) {
	book := makeCodeBook(t, []byte("abracadabra"))

	var sum float64
	for i := 0; i < AlphabetSize; i++ {
		if code, ok := book.Code(byte(i)); ok {
			sum += math.Ldexp(1, -code.BitLength)
		}
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("expected Kraft sum 1, got %g", sum)
	}
}

func TestNewCodeBookDeterministic(t *testing.T) {
	first := makeCodeBook(t, []byte("abracadabra"))
	second := makeCodeBook(t, []byte("abracadabra"))
	if !reflect.DeepEqual(first, second) {
		t.Error("code book generation is not reproducible")
	}
}

func TestCodeBookDump(t *testing.T) {
	book := makeCodeBook(t, []byte("AAAA"))

	expectDump := strings.Join([]string{
		"CodeBook{\n",
		"\tCode(65) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = book.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
