package suggest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldInfo stands in for the opaque payload a compiler front end would
// attach to each candidate (a symbol, a signature, a declaration site).
type fieldInfo struct {
	TypeName string
	Line     int
}

func TestRankKeyedTypoFindsIntendedField(t *testing.T) {
	pool := []Candidate[fieldInfo]{
		{Name: "firstName", Value: fieldInfo{TypeName: "string", Line: 10}},
		{Name: "lastName", Value: fieldInfo{TypeName: "string", Line: 11}},
		{Name: "fullName", Value: fieldInfo{TypeName: "string", Line: 12}},
		{Name: "username", Value: fieldInfo{TypeName: "string", Line: 13}},
	}

	matches := RankKeyed("frstName", pool)

	require.NotEmpty(t, matches)
	assert.Equal(t, "firstName", matches[0].Name)
	assert.Equal(t, 10, matches[0].Value.Line, "payload must pass through untouched")
}

func TestRankKeyedExcludesExactMatch(t *testing.T) {
	pool := []Candidate[int]{
		{Name: "count", Value: 1},
		{Name: "counter", Value: 2},
		{Name: "counts", Value: 3},
	}

	matches := RankKeyed("count", pool)

	for _, m := range matches {
		assert.NotEqual(t, "count", m.Name, "the unknown name itself is not a suggestion")
	}
	assert.Len(t, matches, 2)
}

func TestRankKeyedDiscardsInvalidEntries(t *testing.T) {
	pool := []Candidate[string]{
		{Name: "", Value: "dropped"},
		{Name: "valid", Value: "kept"},
		{Name: "", Value: "dropped too"},
	}

	matches := RankKeyed("valud", pool)

	require.Len(t, matches, 1)
	assert.Equal(t, "valid", matches[0].Name)
}

func TestRankKeyedEmptyInputs(t *testing.T) {
	pool := []Candidate[int]{{Name: "x", Value: 1}}

	assert.NotNil(t, RankKeyed("", pool))
	assert.Empty(t, RankKeyed("", pool))

	assert.NotNil(t, RankKeyed[int]("name", nil))
	assert.Empty(t, RankKeyed[int]("name", nil))

	onlyInvalid := []Candidate[int]{{Name: "", Value: 1}, {Name: "", Value: 2}}
	assert.Empty(t, RankKeyed("name", onlyInvalid))
}

func TestRankKeyedCapsAtMaxSuggestions(t *testing.T) {
	pool := make([]Candidate[int], 0, 12)
	for i := 0; i < 12; i++ {
		pool = append(pool, Candidate[int]{Name: fmt.Sprintf("handler%d", i), Value: i})
	}

	matches := RankKeyed("handler", pool)

	assert.Len(t, matches, MaxSuggestions)
}

func TestRankKeyedSortedDescending(t *testing.T) {
	pool := []Candidate[int]{
		{Name: "completelyUnrelatedThing", Value: 0},
		{Name: "getUserName", Value: 1},
		{Name: "getUser", Value: 2},
		{Name: "getUsers", Value: 3},
		{Name: "setUserName", Value: 4},
	}

	matches := RankKeyed("getUserNme", pool)

	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score,
			"matches must be sorted by descending score: %v", matches)
	}
	assert.Equal(t, "getUserName", matches[0].Name)
}

func TestRankKeyedDeterministicOnTies(t *testing.T) {
	pool := []Candidate[int]{
		{Name: "bb", Value: 0},
		{Name: "aa", Value: 1},
	}

	first := RankKeyed("zz", pool)
	second := RankKeyed("zz", pool)

	assert.Equal(t, first, second)
}

func TestRankNames(t *testing.T) {
	names := []string{"", "firstName", "lastName", "", "fullName", "username"}

	matches := RankNames("frstName", names)

	require.NotEmpty(t, matches)
	assert.Equal(t, "firstName", matches[0].Name)
	for _, m := range matches {
		assert.NotEmpty(t, m.Name)
	}
}

func TestRankNamesEmptyInputs(t *testing.T) {
	assert.Empty(t, RankNames("", []string{"a", "b"}))
	assert.NotNil(t, RankNames("", []string{"a", "b"}))
	assert.Empty(t, RankNames("name", nil))
	assert.NotNil(t, RankNames("name", nil))
	assert.Empty(t, RankNames("name", []string{"", "", ""}))
}

func TestRankNamesCapAndOrder(t *testing.T) {
	names := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		names = append(names, fmt.Sprintf("variant%c", 'a'+i))
	}

	matches := RankNames("variant", names)

	assert.Len(t, matches, MaxSuggestions)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestRankKeyedConcurrentUse(t *testing.T) {
	pool := []Candidate[int]{
		{Name: "firstName", Value: 1},
		{Name: "lastName", Value: 2},
		{Name: "fullName", Value: 3},
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				matches := RankKeyed("frstName", pool)
				if len(matches) == 0 || matches[0].Name != "firstName" {
					t.Errorf("unexpected result under concurrency: %v", matches)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkRankKeyedLargePool(b *testing.B) {
	pool := make([]Candidate[int], 0, 2000)
	for i := 0; i < 2000; i++ {
		pool = append(pool, Candidate[int]{Name: fmt.Sprintf("symbol%dName", i), Value: i})
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = RankKeyed("symbol42Nme", pool)
	}
}
