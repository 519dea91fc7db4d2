//go:build !noprom

package metrics

import (
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPromRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	p := newPromRecorder(reg)

	p.IncRowsRejected("missing-field")
	p.IncRowsRejected("missing-field")
	p.IncRowsAccepted("person")
	p.IncOpTotal("search_people", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.rowsRejected.WithLabelValues("missing-field")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.rowsAccepted.WithLabelValues("person")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.opTotal.WithLabelValues("search_people", "true")))
}
