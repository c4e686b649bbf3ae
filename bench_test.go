package scanio

import (
	"math/rand"
	"testing"
)

type mockSource struct{}

func (mockSource) ReadChars(p []rune) (int, error) {
	for i := range p {
		p[i] = 'a'
	}
	return len(p), nil
}

func (mockSource) Close() error { return nil }

func BenchmarkReader(b *testing.B) {
	r := New(mockSource{})
	rng := rand.New(rand.NewSource(123456))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		switch rng.Intn(8) {
		case 0:
			r.Unget()
		case 1:
			r.Drop()
		case 2:
			r.PeekAhead(64)
		default:
			r.Read()
		}
	}
}

func BenchmarkReaderAccept(b *testing.B) {
	r := New(mockSource{})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < 16; j++ {
			r.Read()
		}
		r.Accept()
	}
}
