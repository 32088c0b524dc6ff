package cmd

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ftahirops/wbtop/model"
)

func TestTableHeader_Columns(t *testing.T) {
	got := strings.Fields(tableHeader())
	want := []string{"writeback", "reclaimable", "dirtied", "written", "avg_bw"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("header columns = %v; want %v", got, want)
	}
}

func TestTableRow_FieldOrder(t *testing.T) {
	s := model.Sample{
		Name:  "bdi0_1",
		Stats: model.StatCounters{Reclaimable: 40, Writeback: 20, Dirtied: 80, Written: 60},
		AvgWB: 5,
	}
	got := strings.Fields(tableRow(s))
	want := []string{"bdi0_1", "20", "40", "80", "60", "5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row fields = %v; want %v", got, want)
	}
}

func TestTableRow_ColumnWidths(t *testing.T) {
	row := tableRow(model.Sample{Name: "sda"})
	// name(16) + 5 numeric columns (10,12,9,9,9) + 5 separators
	if len(row) != 16+10+12+9+9+9+5 {
		t.Errorf("row length = %d; want %d: %q", len(row), 70, row)
	}
	if !strings.HasPrefix(row, "sda              ") {
		t.Errorf("name column not left-aligned to 16: %q", row)
	}
}

func TestTableRow_TruncatesLongNamesToTail(t *testing.T) {
	// The tail keeps the cgroup suffix visible.
	s := model.Sample{Name: "verylongdevicename_123456"}
	got := strings.Fields(tableRow(s))[0]
	if want := s.Name[len(s.Name)-16:]; got != want {
		t.Errorf("truncated name = %q; want last 16 chars %q", got, want)
	}
}

func TestTableRow_Idempotent(t *testing.T) {
	s := model.Sample{
		Name:  "nvme0n1",
		Stats: model.StatCounters{Reclaimable: 1, Writeback: 2, Dirtied: 3, Written: 4},
		AvgWB: 5,
	}
	if tableRow(s) != tableRow(s) {
		t.Error("rendering the same sample twice differs")
	}
}

func TestCompileFilter_EmptyMatchesEverything(t *testing.T) {
	re, err := compileFilter(nil)
	if err != nil {
		t.Fatalf("compileFilter(nil): %v", err)
	}
	if re != nil {
		t.Errorf("filter = %v; want nil (match all)", re)
	}
}

func TestCompileFilter_Search(t *testing.T) {
	re, err := compileFilter([]string{"^nvme"})
	if err != nil {
		t.Fatalf("compileFilter: %v", err)
	}
	if !re.MatchString("nvme0n1") {
		t.Error("nvme0n1 should match ^nvme")
	}
	if re.MatchString("sda") {
		t.Error("sda should not match ^nvme")
	}
}

func TestCompileFilter_AlternationOfPatterns(t *testing.T) {
	re, err := compileFilter([]string{"^nvme", "8:"})
	if err != nil {
		t.Fatalf("compileFilter: %v", err)
	}
	for _, name := range []string{"nvme1n1", "8:16"} {
		if !re.MatchString(name) {
			t.Errorf("%s should match the OR-combined filter", name)
		}
	}
	if re.MatchString("loop0") {
		t.Error("loop0 should not match")
	}
}

func TestCompileFilter_InvalidPatternIsFatal(t *testing.T) {
	if _, err := compileFilter([]string{"("}); err == nil {
		t.Error("compileFilter(\"(\") = nil error; want failure")
	}
}
