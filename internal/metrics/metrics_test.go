package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveWrite(t *testing.T) {
	before := testutil.ToFloat64(StoreWriteErrors.WithLabelValues("teste"))

	ObserveWrite("teste", 10, 2)
	ObserveWrite("teste", 5, 0)

	assert.Equal(t, before+2, testutil.ToFloat64(StoreWriteErrors.WithLabelValues("teste")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(StoreDocumentsWritten.WithLabelValues("teste")), 15.0)
}

func TestObserveJob(t *testing.T) {
	ObserveJob("teste", 1.5, nil)
	ObserveJob("teste", 2, errors.New("falhou"))

	assert.Equal(t, 1.0, testutil.ToFloat64(JobRuns.WithLabelValues("teste", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(JobRuns.WithLabelValues("teste", "error")))
}
