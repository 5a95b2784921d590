package pgz_test

import (
	"testing"

	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/pgz"
)

// BenchmarkDecode measures decoding of a typical 110×130 RASP grid.
func BenchmarkDecode(b *testing.B) {
	g, err := grid.Build(110, 130, func(x, y int) int32 { return int32(3000 + 10*x - 7*y) })
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	enc, err := pgz.Encode(g)
	if err != nil {
		b.Fatalf("setup Encode failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pgz.Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}
