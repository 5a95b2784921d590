package datasource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/internal/datasource"
	"github.com/rocketman768/GliderWeatherBot/pgz"
	"github.com/rocketman768/GliderWeatherBot/raspdata"
)

const textGrid = "---\ntitle\nDay= 2018 7 14\nIndexs= 1 3 1 2\n1 2 3\n4 5 6\n"

func sampleGrid(t testing.TB) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows([][]int32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	return g
}

// raspServer serves textGrid for the files in ok and 404 for the rest.
func raspServer(t *testing.T, ok map[string]bool, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		if !ok[r.URL.Path] {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(textGrid))
	}))
	t.Cleanup(srv.Close)
	return srv
}

//----------------------------------------------------------------------------//
// Archive
//----------------------------------------------------------------------------//

func TestArchive_PlainThenPGZ(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, raspdata.FileName("hwcrit", 1400)), []byte(textGrid), 0o644))
	enc, err := pgz.Encode(sampleGrid(t))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, raspdata.FileName("wblmaxmin", 1400)+pgz.Ext), enc, 0o644))

	a := datasource.Archive{Dir: dir}
	data, err := a.Open(context.Background(), "hwcrit", 1400)
	require.NoError(t, err)
	assert.Equal(t, textGrid, string(data))

	data, err = a.Open(context.Background(), "wblmaxmin", 1400)
	require.NoError(t, err)
	assert.True(t, pgz.IsPGZ(data))

	_, err = a.Open(context.Background(), "press500", 1400)
	assert.ErrorIs(t, err, datasource.ErrNotFound)
	assert.Contains(t, err.Error(), "press500")
}

func TestLoadInputs_MixedCodecs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, raspdata.FileName("hwcrit", 1400)), []byte(textGrid), 0o644))
	enc, err := pgz.Encode(sampleGrid(t))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, raspdata.FileName("wblmaxmin", 1400)+pgz.Ext), enc, 0o644))

	in, err := datasource.LoadInputs(context.Background(), datasource.Archive{Dir: dir}, []string{"hwcrit", "wblmaxmin"}, 1400)
	require.NoError(t, err)
	assert.True(t, in["hwcrit"].Equal(sampleGrid(t)))
	assert.True(t, in["wblmaxmin"].Equal(sampleGrid(t)))
}

func TestLoadInputs_DecodeError(t *testing.T) {
	dir := t.TempDir()
	bad := "---\ntitle\nmeta\nmeta\n1 2 3\n4 five 6\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, raspdata.FileName("hwcrit", 1400)), []byte(bad), 0o644))

	_, err := datasource.LoadInputs(context.Background(), datasource.Archive{Dir: dir}, []string{"hwcrit"}, 1400)
	require.ErrorIs(t, err, grid.ErrFormat)
	assert.Contains(t, err.Error(), "hwcrit")
}

//----------------------------------------------------------------------------//
// Web
//----------------------------------------------------------------------------//

func TestWeb_Open(t *testing.T) {
	srv := raspServer(t, map[string]bool{"/OUT+2/FCST/hwcrit.curr.1400lst.d2.data": true}, nil)
	w := datasource.NewWeb(srv.URL+"/", 2, 5*time.Second, 0)

	assert.Equal(t, srv.URL+"/OUT+2/FCST/hwcrit.curr.1400lst.d2.data", w.URL("hwcrit", 1400))

	data, err := w.Open(context.Background(), "hwcrit", 1400)
	require.NoError(t, err)
	assert.Equal(t, textGrid, string(data))

	_, err = w.Open(context.Background(), "hwcrit", 1500)
	assert.ErrorIs(t, err, datasource.ErrNotFound)
}

func TestWeb_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := datasource.NewWeb(srv.URL, 0, time.Second, 0).Open(context.Background(), "hwcrit", 1400)
	require.ErrorIs(t, err, datasource.ErrHTTPStatus)
	assert.Contains(t, err.Error(), "502")
}

func TestWeb_BodyLimit(t *testing.T) {
	srv := raspServer(t, map[string]bool{"/OUT+0/FCST/hwcrit.curr.1400lst.d2.data": true}, nil)

	w := datasource.NewWeb(srv.URL, 0, time.Second, 0)
	w.MaxBody = int64(len(textGrid))
	data, err := w.Open(context.Background(), "hwcrit", 1400)
	require.NoError(t, err)
	assert.Equal(t, textGrid, string(data))

	// One byte short would drop the last row if truncated silently.
	w.MaxBody = int64(len(textGrid)) - 1
	_, err = w.Open(context.Background(), "hwcrit", 1400)
	require.ErrorIs(t, err, datasource.ErrTooLarge)
}

func TestWeb_Cancelled(t *testing.T) {
	srv := raspServer(t, map[string]bool{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := datasource.NewWeb(srv.URL, 0, time.Second, 10).Open(ctx, "hwcrit", 1400)
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// Mirror
//----------------------------------------------------------------------------//

func TestMirror_Binary(t *testing.T) {
	ok := map[string]bool{
		"/OUT+0/FCST/hwcrit.curr.1400lst.d2.data":    true,
		"/OUT+0/FCST/wblmaxmin.curr.1400lst.d2.data": true,
		"/OUT+0/FCST/hwcrit.curr.1500lst.d2.data":    true,
	}
	var hits atomic.Int64
	srv := raspServer(t, ok, &hits)
	dir := filepath.Join(t.TempDir(), "out")

	stats, err := datasource.Mirror(context.Background(), datasource.NewWeb(srv.URL, 0, time.Second, 0), dir,
		[]string{"hwcrit", "wblmaxmin"}, []int{1400, 1500}, datasource.MirrorOptions{Binary: true, Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Written)
	assert.Equal(t, int64(1), stats.Missing)
	assert.Equal(t, int64(4), hits.Load())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.True(t, strings.HasSuffix(e.Name(), pgz.Ext), e.Name())
	}

	// The mirror reads back through Archive.
	in, err := datasource.LoadInputs(context.Background(), datasource.Archive{Dir: dir}, []string{"hwcrit", "wblmaxmin"}, 1400)
	require.NoError(t, err)
	assert.True(t, in["hwcrit"].Equal(sampleGrid(t)))
}

func TestMirror_Raw(t *testing.T) {
	srv := raspServer(t, map[string]bool{"/OUT+1/FCST/hwcrit.curr.1400lst.d2.data": true}, nil)
	dir := t.TempDir()

	stats, err := datasource.Mirror(context.Background(), datasource.NewWeb(srv.URL, 1, time.Second, 0), dir,
		[]string{"hwcrit"}, []int{1400}, datasource.MirrorOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Written)

	data, err := os.ReadFile(filepath.Join(dir, raspdata.FileName("hwcrit", 1400)))
	require.NoError(t, err)
	assert.Equal(t, textGrid, string(data))
}

func TestMirror_StopsOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("---\nt\nm\nm\n1 2\n3\n"))
	}))
	defer srv.Close()

	_, err := datasource.Mirror(context.Background(), datasource.NewWeb(srv.URL, 0, time.Second, 0), t.TempDir(),
		[]string{"hwcrit"}, []int{1400}, datasource.MirrorOptions{Binary: true})
	assert.ErrorIs(t, err, grid.ErrFormat)
}
