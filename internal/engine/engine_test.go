package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-text-toolkit/config"
	"github.com/gcbaptista/go-text-toolkit/internal/analyzer"
	"github.com/gcbaptista/go-text-toolkit/services"
)

var _ services.TextProcessor = (*Engine)(nil)

func intPtr(v int) *int { return &v }

var candidates = []string{"alpha", "alphabet", "beta", "gamma", "alps", "palace"}

func TestNewEngine_AppliesDefaults(t *testing.T) {
	eng := NewEngine(config.Settings{})

	assert.Equal(t, config.Default(), eng.Settings())
}

func TestSearch_Limits(t *testing.T) {
	eng := NewEngine(config.Settings{DefaultMaxResults: 2})

	t.Run("nil uses configured default", func(t *testing.T) {
		assert.Len(t, eng.Search(candidates, "al", nil), 2)
	})

	t.Run("explicit limit wins", func(t *testing.T) {
		assert.Len(t, eng.Search(candidates, "al", intPtr(4)), 4)
	})

	t.Run("explicit zero yields nothing", func(t *testing.T) {
		results := eng.Search(candidates, "al", intPtr(0))
		require.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("negative yields nothing", func(t *testing.T) {
		assert.Empty(t, eng.Search(candidates, "al", intPtr(-1)))
	})
}

func TestKeywordsAndAnalyze_Limits(t *testing.T) {
	eng := NewEngine(config.Settings{DefaultKeywordLimit: 1})
	text := "delta delta delta omega omega sigma"

	assert.Equal(t, []analyzer.Keyword{{Word: "delta", Count: 3}}, eng.Keywords(text, nil))
	assert.Len(t, eng.Keywords(text, intPtr(3)), 3)
	assert.Empty(t, eng.Keywords(text, intPtr(0)))

	report := eng.Analyze(text, nil)
	assert.Equal(t, []analyzer.Keyword{{Word: "delta", Count: 3}}, report.Keywords)
	assert.Equal(t, 6, report.WordCount)
}

func TestFrequencyAndReadingTime(t *testing.T) {
	eng := NewEngine(config.Default())

	assert.Equal(t, analyzer.FrequencyTable{"the": 2, "cat": 1, "sat": 1, "on": 1, "mat": 1},
		eng.Frequency("the cat sat on the mat"))
	assert.Equal(t, 6.0/200.0, eng.ReadingTime("the cat sat on the mat"))
}

func TestEngine_ConcurrentUse(t *testing.T) {
	eng := NewEngine(config.Default())
	want := eng.Search(candidates, "al", nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, eng.Search(candidates, "al", nil))
			assert.NotEmpty(t, eng.Analyze("concurrent callers share nothing", nil).Keywords)
		}()
	}
	wg.Wait()
}
