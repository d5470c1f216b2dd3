// Package codatatest holds the assertions shared by the per-revision
// test suites: every published literal is checked at every supported width.
package codatatest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/codata"
)

// Published is one row of a revision's published table: the exported
// constant and the literals it must report.
type Published struct {
	Constant    codata.Constant
	Value       float64
	Uncertainty float64
}

// CheckTable verifies that rows and table describe the same constants,
// that the table resolves each row's name to the row's constant, and then
// checks every row at float32 and float64.
func CheckTable(t *testing.T, table *codata.Table, rows []Published) {
	t.Helper()

	require.Equal(t, table.Len(), len(rows), "published rows vs table size")
	listed := make(map[string]bool, len(rows))
	for _, r := range rows {
		listed[r.Constant.Key()] = true
	}
	for _, k := range table.Keys() {
		assert.Truef(t, listed[k], "%s is in the table but has no published row", k)
	}

	for _, r := range rows {
		t.Run(r.Constant.Key(), func(t *testing.T) {
			got, err := table.Lookup(r.Constant.Name())
			require.NoError(t, err)
			assert.Equal(t, r.Constant, got, "accessor and table disagree")

			CheckWidth[float32](t, r)
			CheckWidth[float64](t, r)
		})
	}
}

// CheckWidth asserts the accessor contract of one row at width T:
// finite value and uncertainty equal to the narrowed literals, uncertainty
// and precision without a sign bit, finite precision, and bit-identical
// results on repeated queries.
func CheckWidth[T codata.Float](t *testing.T, r Published) {
	t.Helper()
	c := r.Constant

	v := codata.Value[T](c)
	assert.Truef(t, finite(v), "%s: value %v not finite", c.Key(), v)
	assert.Equalf(t, codata.Narrow[T](r.Value), v, "%s: value", c.Key())

	u := codata.Uncertainty[T](c)
	assert.Truef(t, finite(u), "%s: uncertainty %v not finite", c.Key(), u)
	assert.Equalf(t, codata.Narrow[T](r.Uncertainty), u, "%s: uncertainty", c.Key())
	assert.Falsef(t, math.Signbit(float64(u)), "%s: uncertainty %v is negative", c.Key(), u)

	p := codata.Precision[T](c)
	assert.Truef(t, finite(p), "%s: precision %v not finite", c.Key(), p)
	assert.Falsef(t, math.Signbit(float64(p)), "%s: precision %v is negative", c.Key(), p)

	assert.Equal(t, bits(v), bits(codata.Value[T](c)), "value not idempotent")
	assert.Equal(t, bits(u), bits(codata.Uncertainty[T](c)), "uncertainty not idempotent")
	assert.Equal(t, bits(p), bits(codata.Precision[T](c)), "precision not idempotent")
}

func finite[T codata.Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func bits[T codata.Float](x T) uint64 {
	return math.Float64bits(float64(x))
}
