package planner

import (
	"reflect"
	"testing"
)

func TestParseBatchSpec(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    BatchSpec
		wantErr bool
	}{
		{"single size", "5", BatchSpec{Sizes: []int{5}, Repeating: true}, false},
		{"single with spaces", "  3 ", BatchSpec{Sizes: []int{3}, Repeating: true}, false},
		{"explicit list", "3,4,5", BatchSpec{Sizes: []int{3, 4, 5}}, false},
		{"list with spaces", "2, 3", BatchSpec{Sizes: []int{2, 3}}, false},
		{"empty", "", BatchSpec{}, true},
		{"blank", "   ", BatchSpec{}, true},
		{"zero", "0", BatchSpec{}, true},
		{"negative", "-2", BatchSpec{}, true},
		{"zero in list", "3,0,2", BatchSpec{}, true},
		{"garbage", "three", BatchSpec{}, true},
		{"trailing comma", "3,4,", BatchSpec{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBatchSpec(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBatchSpec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBatchSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlan_Repeating(t *testing.T) {
	tests := []struct {
		name      string
		fileCount int
		size      int
		noExtra   bool
		want      []int
	}{
		{"seven by three with remainder batch", 7, 3, false, []int{3, 3, 1}},
		{"seven by three remainder suppressed", 7, 3, true, []int{3, 3}},
		{"exact multiple", 6, 3, false, []int{3, 3}},
		{"exact multiple suppressed", 6, 3, true, []int{3, 3}},
		{"fewer files than size", 2, 5, false, []int{2}},
		{"fewer files than size suppressed", 2, 5, true, nil},
		{"size one", 3, 1, false, []int{1, 1, 1}},
		{"zero files", 0, 3, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := BatchSpec{Sizes: []int{tt.size}, Repeating: true}
			got := Plan(tt.fileCount, spec, tt.noExtra)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Plan(%d, %d, noExtra=%v) = %v, want %v",
					tt.fileCount, tt.size, tt.noExtra, got, tt.want)
			}
		})
	}
}

func TestPlan_Explicit(t *testing.T) {
	tests := []struct {
		name      string
		fileCount int
		sizes     []int
		noExtra   bool
		want      []int
	}{
		{"clamped second size", 4, []int{2, 3}, false, []int{2, 2}},
		{"exact fit", 5, []int{2, 3}, false, []int{2, 3}},
		{"files exhaust before list ends", 2, []int{2, 3, 4}, false, []int{2}},
		{"overflow appends average batches", 10, []int{2, 3}, false, []int{2, 3, 2, 2, 1}},
		{"overflow suppressed", 10, []int{2, 3}, true, []int{2, 3}},
		{"overflow exact average fit", 9, []int{2, 2}, false, []int{2, 2, 2, 2, 1}},
		{"zero files", 0, []int{2, 3}, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := BatchSpec{Sizes: tt.sizes}
			got := Plan(tt.fileCount, spec, tt.noExtra)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Plan(%d, %v, noExtra=%v) = %v, want %v",
					tt.fileCount, tt.sizes, tt.noExtra, got, tt.want)
			}
		})
	}
}

// Plans must be fully clamped: positive entries that never cover more files
// than exist, and exactly fileCount files when the remainder is not
// suppressed.
func TestPlan_CoverageInvariants(t *testing.T) {
	specs := []BatchSpec{
		{Sizes: []int{1}, Repeating: true},
		{Sizes: []int{3}, Repeating: true},
		{Sizes: []int{7}, Repeating: true},
		{Sizes: []int{2, 3}},
		{Sizes: []int{5, 1, 4}},
		{Sizes: []int{10, 10}},
	}
	for _, spec := range specs {
		for fileCount := 0; fileCount <= 40; fileCount++ {
			for _, noExtra := range []bool{false, true} {
				plan := Plan(fileCount, spec, noExtra)
				sum := 0
				for _, size := range plan {
					if size <= 0 {
						t.Fatalf("Plan(%d, %v, %v) contains non-positive size: %v",
							fileCount, spec, noExtra, plan)
					}
					sum += size
				}
				if sum > fileCount {
					t.Fatalf("Plan(%d, %v, %v) covers %d files: %v",
						fileCount, spec, noExtra, sum, plan)
				}
				if !noExtra && sum != fileCount {
					t.Fatalf("Plan(%d, %v, noExtra=false) covers only %d files: %v",
						fileCount, spec, sum, plan)
				}
			}
		}
	}
}

func TestBatchSpecTotal(t *testing.T) {
	if got := (BatchSpec{Sizes: []int{2, 3, 4}}).Total(); got != 9 {
		t.Errorf("Total() = %d, want 9", got)
	}
}

func TestBatchSpecString(t *testing.T) {
	if got := (BatchSpec{Sizes: []int{2, 3}}).String(); got != "2,3" {
		t.Errorf("String() = %q, want %q", got, "2,3")
	}
	if got := (BatchSpec{Sizes: []int{5}, Repeating: true}).String(); got != "5" {
		t.Errorf("String() = %q, want %q", got, "5")
	}
}
