package poisson

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleResult() *Result {
	return &Result{
		Points: []Point{
			{X: 5, Y: 5, Radius: 2, Value: 255, Parent: -1},
			{X: 7.25, Y: 5.5, Radius: 2, Value: 12, Parent: 0},
			{X: 11, Y: -1.5, Radius: 2.5, Parent: 1, Inactive: true},
		},
		Seed:       -8_000_000_000,
		RegionSize: 10,
		State:      Exhausted,
		Steps:      7,
	}
}

func TestResult_JSON(t *testing.T) {
	res := exampleResult()

	data, err := res.JSON()
	require.NoError(t, err)

	got := &Result{}
	require.NoError(t, json.Unmarshal(data, got))
	if diff := cmp.Diff(res, got); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%v", diff)
	}

	assert.Contains(t, string(data), `"region_size":10`)
	assert.Equal(t, 1, strings.Count(string(data), `"inactive":true`))
}

func TestResult_CSV(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, exampleResult().WriteCSV(buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "x,y,radius,value,parent,inactive", lines[0])
	assert.Equal(t, "5,5,2,255,-1,false", lines[1])
	assert.Equal(t, "11,-1.5,2.5,0,1,true", lines[3])
}

func TestResult_Binary(t *testing.T) {
	res := exampleResult()

	data, err := res.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, headerSize+3*pointSize)

	got := &Result{}
	require.NoError(t, got.UnmarshalBinary(data))
	if diff := cmp.Diff(res, got); diff != "" {
		t.Errorf("binary round trip mismatch (-want +got):\n%v", diff)
	}

	empty := &Result{RegionSize: 3}
	data, err = empty.MarshalBinary()
	require.NoError(t, err)
	got = &Result{}
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Empty(t, got.Points)
	assert.Equal(t, 3.0, got.RegionSize)
}

func TestResult_BinaryBadEncoding(t *testing.T) {
	data, err := exampleResult().MarshalBinary()
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", data[:headerSize-1]},
		{"bad magic", append([]byte("JUNK"), data[4:]...)},
		{"truncated", data[:len(data)-1]},
		{"trailing", append(append([]byte{}, data...), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Result{}).UnmarshalBinary(tt.data)
			assert.ErrorIs(t, err, ErrBadEncoding)
		})
	}
}

func TestResult_SaveFiles(t *testing.T) {
	dir := t.TempDir()
	res := exampleResult()

	require.NoError(t, res.SaveJSON(filepath.Join(dir, "out.json")))
	require.NoError(t, res.SaveCSV(filepath.Join(dir, "out.csv")))

	data, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	want, err := res.JSON()
	require.NoError(t, err)
	assert.Equal(t, want, data)

	data, err = os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "x,y,radius,value,parent,inactive\n"))
}

func TestResult_BinaryOverflow(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Result)
	}{
		{"value", func(r *Result) { r.Points[1].Value = int(maxInt32 + 1) }},
		{"negative value", func(r *Result) { r.Points[1].Value = int(-maxInt32 - 2) }},
		{"parent", func(r *Result) { r.Points[2].Parent = int(maxInt32 + 1) }},
		{"steps", func(r *Result) { r.Steps = int(2*maxInt32 + 2) }},
		{"negative steps", func(r *Result) { r.Steps = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if strconv.IntSize == 32 && tt.name != "negative steps" {
				t.Skip("int is 32 bits")
			}
			res := exampleResult()
			tt.modify(res)

			_, err := res.MarshalBinary()
			assert.ErrorIs(t, err, ErrBadEncoding)
		})
	}

	// the extremes of 32 bits survive
	res := exampleResult()
	res.Points[0].Value = math.MaxInt32
	res.Points[1].Value = math.MinInt32
	data, err := res.MarshalBinary()
	require.NoError(t, err)

	got := &Result{}
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, math.MaxInt32, got.Points[0].Value)
	assert.Equal(t, math.MinInt32, got.Points[1].Value)
}
