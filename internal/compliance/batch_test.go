package compliance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
	"github.com/structcalc/isbeam/internal/shear"
)

func batchJob(name string) section.Job {
	return section.Job{
		Name:      name,
		Section:   section.Section{Width: 230, Depth: 500, EffectiveDepth: 450},
		Materials: section.Materials{Concrete: is456.M20, Steel: is456.Fe415},
		Cases:     []section.DesignCase{{ID: "g", Mu: 100, Vu: 150}},
	}
}

func TestRunBatchResultsInInputOrder(t *testing.T) {
	opts := Options{Stirrup: shear.Stirrup{Area: 100, Steel: is456.Fe415}}
	jobs := []section.Job{batchJob("b1"), batchJob("b2"), batchJob("b3")}

	results := RunBatch(context.Background(), jobs, opts)
	require.Len(t, results, 3)
	for i, name := range []string{"b1", "b2", "b3"} {
		assert.Equal(t, name, results[i].Name)
		require.NotNil(t, results[i].Report, "job %s", name)
		assert.True(t, results[i].Report.Pass)
		assert.Empty(t, results[i].Err)
	}
}

func TestRunBatchInvalidJobDoesNotAbortOthers(t *testing.T) {
	opts := Options{Stirrup: shear.Stirrup{Area: 100, Steel: is456.Fe415}}
	broken := batchJob("broken")
	broken.Section.EffectiveDepth = broken.Section.Depth // invalid geometry

	results := RunBatch(context.Background(), []section.Job{batchJob("ok1"), broken, batchJob("ok2")}, opts)
	require.Len(t, results, 3)

	assert.NotNil(t, results[0].Report)
	assert.NotNil(t, results[2].Report)

	assert.Nil(t, results[1].Report)
	assert.NotEmpty(t, results[1].Err)
	assert.Equal(t, "broken", results[1].Name)
}

func TestRunBatchHonorsCancelledContext(t *testing.T) {
	opts := Options{Stirrup: shear.Stirrup{Area: 100, Steel: is456.Fe415}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := RunBatch(ctx, []section.Job{batchJob("b1")}, opts)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Report)
	assert.Equal(t, context.Canceled.Error(), results[0].Err)
}
