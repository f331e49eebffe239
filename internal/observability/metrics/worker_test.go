package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerMetricsObserveRecords(t *testing.T) {
	m := NewWorkerMetrics("test")
	m.StartSession()
	m.FinishSession("test", "completed", 2*time.Second)
	m.ObserveRecords("test", 7)
	m.ObserveRecords("test", 0)

	fams, err := m.registry.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range fams {
		if f.GetName() != "extractly_worker_records_written" {
			continue
		}
		found = true
		require.Len(t, f.GetMetric(), 1)
		h := f.GetMetric()[0].GetHistogram()
		assert.EqualValues(t, 1, h.GetSampleCount())
		assert.EqualValues(t, 7, h.GetSampleSum())
	}
	assert.True(t, found, "records_written histogram must be registered")
}
