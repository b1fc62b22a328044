package scan_test

import (
	"testing"

	"github.com/katalvlaran/searchbench/scan"
)

// BenchmarkScan_DefaultSizes sweeps the default families over DefaultSizes.
func BenchmarkScan_DefaultSizes(b *testing.B) {
	s, err := scan.New(scan.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Scan(scan.DefaultSizes); err != nil {
			b.Fatal(err)
		}
	}
}
