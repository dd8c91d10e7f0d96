package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationCounter(t *testing.T) {
	r := New()
	r.Operation("employees", "add", ResultOK)
	r.Operation("employees", "add", ResultOK)
	r.Operation("employees", "add", ResultDuplicateKey)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("employees", "add", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("employees", "add", ResultDuplicateKey)))
}

func TestRecordsGauge(t *testing.T) {
	r := New()
	r.Records("venues", 3)
	r.Records("venues", 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.records.WithLabelValues("venues")))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	r.Operation("guests", "delete", ResultNotFound)
	r.Records("guests", 1)
	r.ObserveSave(time.Millisecond)
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.Operation("clients", "delete", ResultNotFound)
	r.ObserveSave(2 * time.Millisecond)

	path := filepath.Join(t.TempDir(), "eventdesk.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `eventdesk_operations_total{kind="clients",op="delete",result="not_found"} 1`), out)
	assert.Contains(t, out, "eventdesk_save_duration_seconds_count 1")
}
