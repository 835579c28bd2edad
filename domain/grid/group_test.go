package grid

import (
	"reflect"
	"testing"
)

func TestGroupLinesMergesNearbyCoordinates(t *testing.T) {
	got := GroupLines([]int{99, 101, 199, 201}, 10)
	want := []int{100, 200}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGroupLinesRoundedMean(t *testing.T) {
	// {10,11,12} -> 11, {30,31} -> 30.5 rounds to 31.
	got := GroupLines([]int{10, 11, 12, 30, 31}, 10)
	want := []int{11, 31}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGroupLinesGapAtProximityStartsNewGroup(t *testing.T) {
	// Gap of exactly the proximity splits; one less merges.
	if got := GroupLines([]int{0, 10}, 10); !reflect.DeepEqual(got, []int{0, 10}) {
		t.Fatalf("gap == proximity should split, got %v", got)
	}
	if got := GroupLines([]int{0, 9}, 10); !reflect.DeepEqual(got, []int{5}) {
		t.Fatalf("gap < proximity should merge, got %v", got)
	}
}

func TestGroupLinesIdempotent(t *testing.T) {
	lines := GroupLines([]int{5, 6, 48, 52, 90}, 10)
	again := GroupLines(lines, 10)
	if !reflect.DeepEqual(lines, again) {
		t.Fatalf("regrouping changed lines: %v -> %v", lines, again)
	}
}

func TestGroupLinesEmptyAndSingle(t *testing.T) {
	if got := GroupLines(nil, 10); got != nil {
		t.Fatalf("empty input should group to nil, got %v", got)
	}
	if got := GroupLines([]int{42}, 10); !reflect.DeepEqual(got, []int{42}) {
		t.Fatalf("single coordinate should pass through, got %v", got)
	}
}

func TestGroupLinesChainedNeighboursStayOneGroup(t *testing.T) {
	// Each step is under the proximity even though the span is not.
	got := GroupLines([]int{0, 8, 16, 24}, 10)
	if !reflect.DeepEqual(got, []int{12}) {
		t.Fatalf("chained coordinates should form one group, got %v", got)
	}
}
