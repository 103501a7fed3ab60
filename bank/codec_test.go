package bank_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sigfeat/sigfeat/bank"
	"github.com/sigfeat/sigfeat/lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCodec_FileFormat verifies the persisted document is the human-readable
// form: kind, parameter mapping and index spec per entry, insertion order.
func TestCodec_FileFormat(t *testing.T) {
	b := bank.New()
	b.Add(lib.NewMean())
	df, err := lib.NewDominantFrequency(2, 0.0, 5.0)
	require.NoError(t, err)
	b.AddWithIndex(bank.IndexGroup(0, 2), df)
	b.AddWithIndex(bank.IndexRange(0, 10, 2), lib.NewRange())
	b.AddWithIndex(bank.IndexAt(1), lib.NewStdDev())

	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, b.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "entries:")
	assert.Contains(t, text, "kind: Mean")
	assert.Contains(t, text, "index: all")
	assert.Contains(t, text, "kind: DominantFrequency")
	assert.Contains(t, text, "padlevel: 2")
	assert.Contains(t, text, "low_cutoff: 0")
	assert.Contains(t, text, "high_cutoff: 5")
	assert.Contains(t, text, "index: [0, 2]")
	assert.Contains(t, text, "0:10:2")
	assert.Contains(t, text, "index: 1")

	// Mean is parameterless: no parameters mapping is written for it.
	assert.NotContains(t, text, "parameters: {}")
}

// TestCodec_IndexSpecRoundTrip verifies every index-spec variant survives a
// save/load cycle structurally intact.
func TestCodec_IndexSpecRoundTrip(t *testing.T) {
	specs := []bank.IndexSpec{
		bank.IndexAll(),
		bank.IndexAt(3),
		bank.IndexAt(-2),
		bank.IndexGroup(4, 0, 4),
		bank.IndexRange(0, 10, 2),
		bank.IndexRange(1, 7, 1),
	}

	b := bank.New()
	require.NoError(t, b.AddWithIndices(specs,
		lib.NewMean(), lib.NewRange(), lib.NewStdDev(), lib.NewRMS(), lib.NewIQR(), lib.NewKurtosis()))

	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, b.Save(path))

	b2, err := bank.NewFromFile(path)
	require.NoError(t, err)
	require.Equal(t, b.Len(), b2.Len())

	// Identical specs resolve identically, which is what the round-trip
	// guarantee is built from; compare via compute on a fixed input.
	x := randomArray(t, 21, 10, 40)
	res1, err := b.Compute(x, bank.WithAxis(-1), bank.WithIndexAxis(0))
	require.NoError(t, err)
	res2, err := b2.Compute(x, bank.WithAxis(-1), bank.WithIndexAxis(0))
	require.NoError(t, err)
	assert.Equal(t, res1.Shape(), res2.Shape())
	assert.Equal(t, res1.Data(), res2.Data())
}

// TestCodec_MalformedIndex verifies parse failures surface ErrBadIndexSpec.
func TestCodec_MalformedIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := "entries:\n    - kind: Mean\n      index: sideways\n"
	require.NoError(t, writeFile(path, doc))

	err := bank.New().Load(path)
	assert.ErrorIs(t, err, bank.ErrBadIndexSpec)
}

// TestCodec_ShorthandRange verifies the two-field range form parses with an
// implicit step of one.
func TestCodec_ShorthandRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	doc := "entries:\n    - kind: Mean\n      index: 1:7\n"
	require.NoError(t, writeFile(path, doc))

	b := bank.New()
	require.NoError(t, b.Load(path))

	x := randomArray(t, 22, 10, 40)
	res, err := b.Compute(x, bank.WithAxis(-1), bank.WithIndexAxis(0))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 40}, res.Shape(), "1:7 selects positions 1..6")
}
