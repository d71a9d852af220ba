package timeseries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memtrack/memtrack/internal/model"
	"github.com/memtrack/memtrack/internal/timeseries"
)

func TestStoreReductions(t *testing.T) {
	tests := []struct {
		name       string
		samples    []model.Sample
		expMean    float64
		expMedian  float64
		expMax     uint64
		expMin     uint64
		expLastEla float64
	}{
		{
			name:    "An empty series reduces to zeros without failing.",
			samples: nil,
		},
		{
			name: "A single sample is its own mean, median, max and min.",
			samples: []model.Sample{
				{Elapsed: 0, MemoryKB: 500},
			},
			expMean:    500,
			expMedian:  500,
			expMax:     500,
			expMin:     500,
			expLastEla: 0,
		},
		{
			name: "An even count averages the two middle sorted values.",
			samples: []model.Sample{
				{Elapsed: 0, MemoryKB: 100},
				{Elapsed: 1, MemoryKB: 300},
				{Elapsed: 2, MemoryKB: 200},
				{Elapsed: 3, MemoryKB: 400},
			},
			expMean:    250,
			expMedian:  250,
			expMax:     400,
			expMin:     100,
			expLastEla: 3,
		},
		{
			name: "An odd count takes the single middle sorted value.",
			samples: []model.Sample{
				{Elapsed: 0, MemoryKB: 100},
				{Elapsed: 1, MemoryKB: 200},
				{Elapsed: 2, MemoryKB: 300},
			},
			expMean:    200,
			expMedian:  200,
			expMax:     300,
			expMin:     100,
			expLastEla: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)

			store := timeseries.NewStore()
			for _, s := range test.samples {
				store.Append(s.Elapsed, s.MemoryKB)
			}

			assert.Equal(len(test.samples), store.Len())
			assert.Equal(test.expMean, store.Mean())
			assert.Equal(test.expMedian, store.Median())
			assert.Equal(test.expMax, store.Max())
			assert.Equal(test.expMin, store.Min())
			assert.Equal(test.expLastEla, store.LastElapsed())
		})
	}
}

func TestStoreMedianKeepsChronologicalOrder(t *testing.T) {
	assert := assert.New(t)

	store := timeseries.NewStore()
	store.Append(0, 100)
	store.Append(1, 300)
	store.Append(2, 200)
	store.Append(3, 400)

	// Median sorts internally; the chart-facing series must stay in
	// insertion order.
	store.Median()

	expSamples := []model.Sample{
		{Elapsed: 0, MemoryKB: 100},
		{Elapsed: 1, MemoryKB: 300},
		{Elapsed: 2, MemoryKB: 200},
		{Elapsed: 3, MemoryKB: 400},
	}
	assert.Equal(expSamples, store.Samples())
}

func TestStoreSamplesReturnsACopy(t *testing.T) {
	assert := assert.New(t)

	store := timeseries.NewStore()
	store.Append(0, 100)

	got := store.Samples()
	got[0].MemoryKB = 999

	assert.Equal(uint64(100), store.Samples()[0].MemoryKB)
}

func TestStoreSummary(t *testing.T) {
	assert := assert.New(t)

	store := timeseries.NewStore()
	store.Append(0, 111)
	store.Append(1.5, 222)
	store.Append(3, 333)

	expSummary := model.Summary{
		Count:    3,
		MeanKB:   222,
		MedianKB: 222,
		MaxKB:    333,
		MinKB:    111,
	}
	assert.Equal(expSummary, store.Summary())
}

func TestStoreSummaryEmpty(t *testing.T) {
	assert := assert.New(t)

	store := timeseries.NewStore()

	expSummary := model.Summary{}
	assert.Equal(expSummary, store.Summary())
}
