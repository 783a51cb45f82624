package trace

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/algo"
)

func recordBubble(t *testing.T, rec *Recorder, arr []int) {
	t.Helper()
	run, err := algo.NewBubbleSort(arr)
	require.NoError(t, err)
	i := 0
	for s := range algo.Steps(run) {
		rec.OnStep(run.Name(), i, s)
		i++
	}
}

func TestRecorder_Limit(t *testing.T) {
	rec := NewRecorder(2)
	recordBubble(t, rec, []int{3, 2, 1})

	require.Equal(t, 2, rec.Len())
	first, ok := rec.At(0)
	require.True(t, ok)
	assert.Equal(t, 2, first.Index)
	last, _ := rec.At(1)
	assert.Equal(t, algo.KindDone, last.Step.Kind)

	_, ok = rec.At(5)
	assert.False(t, ok)

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
}

func TestRecorder_For(t *testing.T) {
	rec := NewRecorder(0)
	recordBubble(t, rec, []int{2, 1})
	rec.OnStep("other", 0, algo.Step{Array: []int{1}, Highlights: algo.NoHighlights(), Kind: algo.KindDone})

	assert.Len(t, rec.For("bubble_sort"), 2)
	assert.Len(t, rec.For("other"), 1)
	assert.Empty(t, rec.For("missing"))
}

func TestWriteCSV_OneRowPerStep(t *testing.T) {
	rec := NewRecorder(0)
	recordBubble(t, rec, []int{3, 2, 1})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rec.Frames()))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, rec.Len()+1)

	assert.Equal(t, []string{"algorithm", "step", "kind", "compare_a", "compare_b", "swap_a", "swap_b", "v0", "v1", "v2"}, rows[0])
	assert.Equal(t, []string{"bubble_sort", "0", "swap", "-1", "-1", "0", "1", "2", "3", "1"}, rows[1])
	assert.Equal(t, "done", rows[len(rows)-1][2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "algorithm,step,kind,compare_a,compare_b,swap_a,swap_b\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	input := []int{9, 4, 4}
	run, err := algo.NewLinearSearch(append([]int(nil), input...), 4)
	require.NoError(t, err)

	rec := NewRecorder(0)
	i := 0
	for s := range algo.Steps(run) {
		rec.OnStep(run.Name(), i, s)
		i++
	}

	data := NewExport("linear_search", input, rec.Frames(), map[string]float64{"steps": 2})
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, data))

	var decoded ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "linear_search", decoded.Algorithm)
	assert.Equal(t, 2, decoded.Steps)
	assert.Equal(t, input, decoded.Final)
	require.Len(t, decoded.Records, 2)
	assert.Equal(t, "found", decoded.Records[1].Kind)
	assert.Equal(t, 1, decoded.Records[1].SwapA)
	assert.Equal(t, -1, decoded.Records[1].CompareA)
}
