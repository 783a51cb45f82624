package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/algoviz/internal/algo"
)

// WriteCSV writes one row per frame: algorithm, step index, kind, the four
// highlight slots and then the array values. Arrays keep their length for
// the life of a run, so the header sizes its value columns from the first
// frame.
func WriteCSV(w io.Writer, frames []Frame) error {
	cw := csv.NewWriter(w)

	header := []string{"algorithm", "step", "kind", "compare_a", "compare_b", "swap_a", "swap_b"}
	if len(frames) > 0 {
		for i := range frames[0].Step.Array {
			header = append(header, fmt.Sprintf("v%d", i))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, f := range frames {
		s := f.Step
		row := []string{
			f.Algorithm,
			strconv.Itoa(f.Index),
			s.Kind.String(),
			strconv.Itoa(int(s.CompareA)),
			strconv.Itoa(int(s.CompareB)),
			strconv.Itoa(int(s.SwapA)),
			strconv.Itoa(int(s.SwapB)),
		}
		for _, v := range s.Array {
			row = append(row, strconv.Itoa(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type StepRecord struct {
	Index    int    `json:"index"`
	Kind     string `json:"kind"`
	CompareA int    `json:"compare_a"`
	CompareB int    `json:"compare_b"`
	SwapA    int    `json:"swap_a"`
	SwapB    int    `json:"swap_b"`
	Array    []int  `json:"array"`
}

type ExportData struct {
	Algorithm string             `json:"algorithm"`
	Input     []int              `json:"input"`
	Steps     int                `json:"steps"`
	Final     []int              `json:"final"`
	Records   []StepRecord       `json:"records"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// NewExport builds the JSON document for one algorithm's frames.
func NewExport(algorithm string, input []int, frames []Frame, metrics map[string]float64) ExportData {
	data := ExportData{
		Algorithm: algorithm,
		Input:     append([]int(nil), input...),
		Records:   make([]StepRecord, 0, len(frames)),
		Metrics:   metrics,
	}
	for _, f := range frames {
		if f.Algorithm != algorithm {
			continue
		}
		data.Records = append(data.Records, record(f.Index, f.Step))
	}
	data.Steps = len(data.Records)
	if n := len(data.Records); n > 0 {
		data.Final = data.Records[n-1].Array
	} else {
		data.Final = data.Input
	}
	return data
}

func record(index int, s algo.Step) StepRecord {
	return StepRecord{
		Index:    index,
		Kind:     s.Kind.String(),
		CompareA: int(s.CompareA),
		CompareB: int(s.CompareB),
		SwapA:    int(s.SwapA),
		SwapB:    int(s.SwapB),
		Array:    s.Array,
	}
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
