package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

// sampleTensor builds a (3,2,2) tensor filled with fill.
func sampleTensor(fill float32) *tensor.Dense {
	data := make([]float32, 3*2*2)
	for i := range data {
		data[i] = fill
	}
	return tensor.New(tensor.WithShape(3, 2, 2), tensor.WithBacking(data))
}

func ok(fill float32, label int) Result {
	return Result{Image: sampleTensor(fill), Label: label, OK: true}
}

func fail() Result { return Result{} }

func TestCollateDropsFailuresPreservingOrder(t *testing.T) {
	batch, err := Collate([]Result{
		ok(1, 0),
		fail(),
		ok(2, 1),
		fail(),
		ok(3, 2),
	})
	require.NoError(t, err)
	require.False(t, batch.Empty())

	assert.Equal(t, []int{3, 3, 2, 2}, []int(batch.Images.Shape()))
	assert.Equal(t, []int{0, 1, 2}, batch.Labels.Data().([]int))

	// Survivors keep their relative input order: the stacked planes must
	// read 1, 2, 3.
	data := batch.Images.Data().([]float32)
	per := 3 * 2 * 2
	assert.Equal(t, float32(1), data[0])
	assert.Equal(t, float32(2), data[per])
	assert.Equal(t, float32(3), data[2*per])
}

func TestCollateAllFailedYieldsEmptySentinel(t *testing.T) {
	batch, err := Collate([]Result{fail(), fail(), fail()})
	require.NoError(t, err)

	assert.True(t, batch.Empty())
	assert.Nil(t, batch.Images)
	assert.Nil(t, batch.Labels)
	assert.Equal(t, 0, batch.Len())
}

func TestCollateEmptyInput(t *testing.T) {
	batch, err := Collate(nil)
	require.NoError(t, err)
	assert.True(t, batch.Empty())
}

func TestCollateShapeMismatchIsContractViolation(t *testing.T) {
	odd := tensor.New(tensor.WithShape(3, 4, 4), tensor.WithBacking(make([]float32, 48)))
	_, err := Collate([]Result{
		ok(1, 0),
		{Image: odd, Label: 1, OK: true},
	})
	assert.Error(t, err)
}

func TestCollateSingleSurvivor(t *testing.T) {
	batch, err := Collate([]Result{fail(), ok(5, 4), fail()})
	require.NoError(t, err)
	require.False(t, batch.Empty())
	assert.Equal(t, 1, batch.Len())
	assert.Equal(t, []int{4}, batch.Labels.Data().([]int))
}

func TestBatchesCoversRange(t *testing.T) {
	batches := Batches(10, 3, false, 0)
	require.Len(t, batches, 4)
	assert.Equal(t, []int{0, 1, 2}, batches[0])
	assert.Equal(t, []int{9}, batches[3])
}

func TestBatchesShuffleDeterministic(t *testing.T) {
	a := Batches(20, 4, true, 11)
	b := Batches(20, 4, true, 11)
	assert.Equal(t, a, b)

	c := Batches(20, 4, true, 12)
	assert.NotEqual(t, a, c)

	seen := make(map[int]bool)
	for _, batch := range a {
		for _, i := range batch {
			assert.False(t, seen[i])
			seen[i] = true
		}
	}
	assert.Len(t, seen, 20)
}

func TestBatchesDegenerateArgs(t *testing.T) {
	assert.Nil(t, Batches(0, 4, false, 0))
	assert.Nil(t, Batches(4, 0, false, 0))
}
