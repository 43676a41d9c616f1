package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOperationsExecutedTotal_Increment(t *testing.T) {
	before := testutil.ToFloat64(OperationsExecutedTotal.WithLabelValues("test-op"))
	OperationsExecutedTotal.WithLabelValues("test-op").Inc()
	after := testutil.ToFloat64(OperationsExecutedTotal.WithLabelValues("test-op"))

	assert.Equal(t, before+1, after)
}

func TestJournalRecordsAppendedTotal_Increment(t *testing.T) {
	before := testutil.ToFloat64(JournalRecordsAppendedTotal)
	JournalRecordsAppendedTotal.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(JournalRecordsAppendedTotal))
}

func TestJournalAppendFailuresTotal_Increment(t *testing.T) {
	before := testutil.ToFloat64(JournalAppendFailuresTotal.WithLabelValues("test-kind"))
	JournalAppendFailuresTotal.WithLabelValues("test-kind").Inc()
	after := testutil.ToFloat64(JournalAppendFailuresTotal.WithLabelValues("test-kind"))

	assert.Equal(t, before+1, after)
}
