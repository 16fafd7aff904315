package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}
	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("Magnitude[1]=%f want=%f", mag[1], math.Sqrt2)
	}
	if mag[2] != 0 {
		t.Fatalf("Magnitude[2]=%f want=0", mag[2])
	}

	if Magnitude(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestBinCount(t *testing.T) {
	tests := []struct{ n, want int }{
		{-1, 0}, {0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {511, 256}, {512, 257},
	}
	for _, tt := range tests {
		if got := BinCount(tt.n); got != tt.want {
			t.Fatalf("BinCount(%d)=%d want=%d", tt.n, got, tt.want)
		}
	}
}

func TestPeakBin(t *testing.T) {
	idx, v := PeakBin([]float64{1, 7, 3, 7})
	if idx != 1 || v != 7 {
		t.Fatalf("PeakBin=(%d,%v) want=(1,7)", idx, v)
	}

	if idx, _ := PeakBin(nil); idx != -1 {
		t.Fatalf("PeakBin(nil)=%d want=-1", idx)
	}
}

func TestBinFrequency(t *testing.T) {
	if got := BinFrequency(5, 512, 44100); math.Abs(got-430.6640625) > 1e-9 {
		t.Fatalf("BinFrequency=%v", got)
	}
	if BinFrequency(5, 0, 44100) != 0 {
		t.Fatal("expected 0 for zero length")
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want Backend
	}{
		{"", BackendAuto},
		{"auto", BackendAuto},
		{"AlgoFFT", BackendAlgoFFT},
		{"algo-fft", BackendAlgoFFT},
		{" gonum ", BackendGonum},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseBackend(%q)=(%v,%v) want=%v", tt.in, got, err, tt.want)
		}
	}

	for _, b := range []Backend{BackendAuto, BackendAlgoFFT, BackendGonum} {
		if got, err := ParseBackend(b.String()); err != nil || got != b {
			t.Fatalf("round trip %v: got (%v, %v)", b, got, err)
		}
	}

	if _, err := ParseBackend("fftw"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
