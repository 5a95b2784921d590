package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketman768/GliderWeatherBot/internal/config"
)

func TestNewLoggerTo_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "warn", "json")
	log.Info("hidden")
	log.Warn("slice skipped", "parameter", "hwcrit", "time", 1400)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "slice skipped", rec["msg"])
	assert.Equal(t, "hwcrit", rec["parameter"])
	assert.Equal(t, float64(1400), rec["time"])
}

func TestNewLoggerTo_Text(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "DEBUG", "text")
	log.Debug("route", "cost", 1.5)
	assert.Contains(t, buf.String(), "msg=route")
	assert.Contains(t, buf.String(), "cost=1.5")
}

func TestNewLogger_FromConfig(t *testing.T) {
	log := NewLogger(config.Default())
	assert.True(t, log.Enabled(t.Context(), 0))
	assert.False(t, log.Enabled(t.Context(), -4))
}

func TestMetrics(t *testing.T) {
	m := NewMetricsForTesting()
	m.GridsLoaded.WithLabelValues("xc").Add(2)
	m.SlicesSkipped.WithLabelValues("wave", "not_found").Inc()
	m.Classifications.WithLabelValues("xc", "positive").Inc()
	m.PathCost.Observe(12)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GridsLoaded.WithLabelValues("xc")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlicesSkipped.WithLabelValues("wave", "not_found")))

	path := filepath.Join(t.TempDir(), "weatherbot.prom")
	require.NoError(t, m.WriteTextfile(path))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `weatherbot_grids_loaded_total{kind="xc"} 2`)
	assert.Contains(t, string(body), "weatherbot_xc_path_cost_count 1")
}
