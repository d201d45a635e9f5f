package orgtable

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

var describeRows = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Describe summarizes every numeric column of f.
// Rows are labelled count, mean, std, min, 25%, 50%, 75% and max; blank cells are not counted.
func Describe(f *Frame) (*Frame, error) {
	var columns []*Column
	for _, c := range f.Columns {
		if c.Kind != Numeric {
			continue
		}
		columns = append(columns, summarize(c))
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: nothing to describe in %d columns", ErrNoNumeric, len(f.Columns))
	}

	return &Frame{
		Index:   NewTextColumn("", describeRows...),
		Columns: columns,
	}, nil
}

func summarize(c *Column) *Column {
	data := make([]float64, 0, len(c.Numbers))
	for _, v := range c.Numbers {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}

	out := make([]float64, len(describeRows))
	for i := range out {
		out[i] = math.NaN()
	}
	out[0] = float64(len(data))
	if len(data) == 0 {
		return NewNumberColumn(c.Name, out...)
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	// stats only errors on empty input, which is excluded above
	out[1], _ = stats.Mean(data)
	if len(data) > 1 {
		out[2] = stat.StdDev(data, nil)
	}
	out[3], _ = stats.Min(data)
	out[4] = quantile(sorted, 0.25)
	out[5], _ = stats.Median(data)
	out[6] = quantile(sorted, 0.75)
	out[7], _ = stats.Max(data)

	col := NewNumberColumn(c.Name, out...)
	col.Cells[0] = strconv.Itoa(len(data))
	return col
}

// quantile interpolates linearly between the two ranks around (n-1)*p of sorted
func quantile(sorted []float64, p float64) float64 {
	pos := float64(len(sorted)-1) * p
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}
