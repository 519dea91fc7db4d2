package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingRecorder struct {
	noopRecorder
	ops      map[string]int
	tools    map[string]int
	rejected map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		ops:      map[string]int{},
		tools:    map[string]int{},
		rejected: map[string]int{},
	}
}

func (c *countingRecorder) IncOpTotal(op string, success bool) {
	if success {
		c.ops[op]++
	}
}

func (c *countingRecorder) IncToolTotal(tool string, success bool) {
	if success {
		c.tools[tool]++
	}
}

func (c *countingRecorder) IncRowsRejected(reason string) { c.rejected[reason]++ }

func TestTimeHelpersReportToRecorder(t *testing.T) {
	rec := newCountingRecorder()
	SetRecorder(rec)
	defer SetRecorder(nil)

	TimeOp("load_file")(true)
	TimeOp("load_file")(false)
	TimeTool("get_network")(true)
	Default().IncRowsRejected("number-format")

	assert.Equal(t, 1, rec.ops["load_file"])
	assert.Equal(t, 1, rec.tools["get_network"])
	assert.Equal(t, 1, rec.rejected["number-format"])
}

func TestSetRecorderNilRestoresNoop(t *testing.T) {
	SetRecorder(nil)
	_, ok := Default().(*noopRecorder)
	assert.True(t, ok)
}

func TestInitDisabledKeepsNoop(t *testing.T) {
	SetRecorder(nil)
	assert.NoError(t, Init(false, ""))
	_, ok := Default().(*noopRecorder)
	assert.True(t, ok)
}
