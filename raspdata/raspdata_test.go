package raspdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/pgz"
	"github.com/rocketman768/GliderWeatherBot/raspdata"
)

const providerHeader = "---\n" +
	"hwcrit: Height of Critical Updraft Strength (225fpm) [ft]\n" +
	"Day= 2018 7 14 SAT ValidLST= 1400 PST ValidZ= 2200Z\n" +
	"Indexs= 1 130 1 110 Proj= lambert 4000.000 4000.000\n"

func TestDecode_Basic(t *testing.T) {
	g, err := raspdata.Decode([]byte(providerHeader+"1 2 3\n4 5 6\n"), raspdata.WithProviderHeader())
	require.NoError(t, err)

	w, h := g.Dimensions()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
	v, err = g.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(6), v)
}

// TestDecode_DefaultHeader reads a title and two metadata lines without
// options, keeping the first data row.
func TestDecode_DefaultHeader(t *testing.T) {
	data := "Title\nmeta one\nmeta two\n1 2 3\n4 5 6\n"
	g, err := raspdata.Decode([]byte(data))
	require.NoError(t, err)

	w, h := g.Dimensions()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
	v, err = g.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(6), v)
}

func TestDecode_HeaderLinesOption(t *testing.T) {
	g, err := raspdata.Decode([]byte("only title\n1 2\n3 4\n"), raspdata.WithHeaderLines(1))
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4}, g.Samples())

	g, err = raspdata.Decode([]byte("1 2\n3 4\n"), raspdata.WithHeaderLines(-2))
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4}, g.Samples())
}

func TestDecode_Tolerances(t *testing.T) {
	cases := map[string]string{
		"CRLF":           "1 2 3\r\n4 5 6\r\n",
		"TrailingBlank":  "1 2 3\n4 5 6\n\n\n",
		"NoFinalNewline": "1 2 3\n4 5 6",
		"ExtraSpaces":    " 1  2 3 \n4 5   6\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := raspdata.Decode([]byte(providerHeader+body), raspdata.WithProviderHeader())
			require.NoError(t, err)
			assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, g.Samples())
		})
	}
}

func TestDecode_Sentinels(t *testing.T) {
	g, err := raspdata.Decode([]byte(providerHeader+"-999999 12\n999999 -3\n"), raspdata.WithProviderHeader())
	require.NoError(t, err)
	v, _ := g.At(0, 0)
	assert.False(t, grid.IsValid(float64(v)))
	v, _ = g.At(1, 1)
	assert.True(t, grid.IsValid(float64(v)))
}

func TestDecode_FormatErrors(t *testing.T) {
	cases := map[string]string{
		"ShortRow":     providerHeader + "1 2 3\n4 5\n",
		"LongRow":      providerHeader + "1 2\n3 4 5\n",
		"BadToken":     providerHeader + "1 2 x\n",
		"Float":        providerHeader + "1 2.5\n",
		"Overflow":     providerHeader + "1 4294967296\n",
		"NoRows":       providerHeader,
		"MissingTitle": "---\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := raspdata.Decode([]byte(data), raspdata.WithProviderHeader())
			require.ErrorIs(t, err, grid.ErrFormat)
		})
	}
}

func TestDecode_ErrorNamesRow(t *testing.T) {
	_, err := raspdata.Decode([]byte(providerHeader+"1 2 3\n4 5 6\n7 8\n"), raspdata.WithProviderHeader())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3 has 2 columns, want 3")
}

func TestParse_DispatchesOnMagic(t *testing.T) {
	text := []byte(providerHeader + "1 2 3\n4 5 6\n")
	fromText, err := raspdata.Parse(text, raspdata.WithProviderHeader())
	require.NoError(t, err)

	enc, err := pgz.Encode(fromText)
	require.NoError(t, err)
	fromPGZ, err := raspdata.Parse(enc)
	require.NoError(t, err)

	assert.True(t, fromText.Equal(fromPGZ))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "hwcrit.curr.1400lst.d2.data", raspdata.FileName("hwcrit", 1400))
}
