package projection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/flynn/internal/model"
)

func TestMemo_MatchesProject(t *testing.T) {
	memo := NewMemo(4)
	p := model.SimulationParameters{InitialAmount: 1000, MonthlyDeposit: 200, MonthlyRatePercent: 0.9, HorizonMonths: 48}

	want, err := Project(p)
	require.NoError(t, err)

	got, err := memo.Project(p)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	again, err := memo.Project(p)
	require.NoError(t, err)
	assert.Equal(t, want, again)

	hits, misses := memo.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestMemo_ResultsAreIsolated(t *testing.T) {
	memo := NewMemo(4)
	p := model.SimulationParameters{MonthlyDeposit: 100, HorizonMonths: 3}

	first, err := memo.Project(p)
	require.NoError(t, err)
	first.Series[0].Balance = -1

	second, err := memo.Project(p)
	require.NoError(t, err)
	assert.Equal(t, 100.0, second.Series[0].Balance)
}

func TestMemo_EvictsLeastRecentlyUsed(t *testing.T) {
	memo := NewMemo(2)
	a := model.SimulationParameters{MonthlyDeposit: 1, HorizonMonths: 1}
	b := model.SimulationParameters{MonthlyDeposit: 2, HorizonMonths: 1}
	c := model.SimulationParameters{MonthlyDeposit: 3, HorizonMonths: 1}

	for _, p := range []model.SimulationParameters{a, b, a, c} {
		_, err := memo.Project(p)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, memo.Len())

	// a was touched after b, so b is gone and a is still cached.
	_, err := memo.Project(a)
	require.NoError(t, err)
	hits, _ := memo.Stats()
	assert.Equal(t, 2, hits)

	_, err = memo.Project(b)
	require.NoError(t, err)
	_, misses := memo.Stats()
	assert.Equal(t, 4, misses)
}

func TestMemo_DoesNotCacheErrors(t *testing.T) {
	memo := NewMemo(2)
	_, err := memo.Project(model.SimulationParameters{HorizonMonths: 0})
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, 0, memo.Len())
}

func TestMemo_ConcurrentCallers(t *testing.T) {
	memo := NewMemo(8)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := model.SimulationParameters{MonthlyDeposit: float64(i % 4), HorizonMonths: 60}
			want, err := Project(p)
			if err != nil {
				t.Errorf("Project: %v", err)
				return
			}
			got, err := memo.Project(p)
			if err != nil {
				t.Errorf("memo.Project: %v", err)
				return
			}
			if got.FinalBalance != want.FinalBalance {
				t.Errorf("memo result %.2f != direct %.2f", got.FinalBalance, want.FinalBalance)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, memo.Len(), 4)
}

func TestNewMemo_DefaultSize(t *testing.T) {
	memo := NewMemo(0)
	assert.Equal(t, DefaultMemoSize, memo.size)
}
