package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveParse(t *testing.T) {
	m := New()
	m.ObserveParse("date", OutcomeOK)
	m.ObserveParse("date", OutcomeOK)
	m.ObserveParse("date", "calendar_range")
	m.IncrementBatches()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ParsesTotal.WithLabelValues("date", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ParsesTotal.WithLabelValues("date", "calendar_range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BatchesTotal))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObserveParse("period", OutcomeOK)

	path := filepath.Join(t.TempDir(), "chrono.prom")
	require.NoError(t, m.WriteTextfile(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `chrono_parses_total{kind="period",outcome="ok"} 1`)
}
