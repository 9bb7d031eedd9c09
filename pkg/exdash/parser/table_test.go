package parser

import (
	"reflect"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

func text(s string) Cell { return Cell{Kind: CellText, Text: s} }
func num(f float64) Cell { return Cell{Kind: CellNumber, Num: f} }
func date(t time.Time) Cell { return Cell{Kind: CellDatetime, Time: t} }
func missing() Cell { return Cell{Kind: CellMissing} }

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		header   []Cell
		expected []string
	}{
		{[]Cell{text("Age"), text("Gender")}, []string{"Age", "Gender"}},
		{[]Cell{text("A"), missing(), text("C")}, []string{"A", "Unnamed: 1", "C"}},
		{[]Cell{text("A"), text("A"), text("A")}, []string{"A", "A.1", "A.2"}},
		{[]Cell{text("A"), text("A.1"), text("A")}, []string{"A", "A.1", "A.2"}},
		{[]Cell{num(2023), num(2024)}, []string{"2023", "2024"}},
		// NFD "é" is normalised to NFC
		{[]Cell{text("Cafe\u0301")}, []string{"Caf\u00e9"}},
	}

	for _, tt := range tests {
		result := HeaderNames(tt.header)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("HeaderNames(%v) = %q, expected %q", tt.header, result, tt.expected)
		}
	}
}

func TestInferKind(t *testing.T) {
	day := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		values   []Cell
		expected models.ColumnKind
	}{
		{"numbers", []Cell{num(1), missing(), num(2)}, models.KindNumeric},
		{"all missing", []Cell{missing(), missing()}, models.KindNumeric},
		{"empty", nil, models.KindNumeric},
		{"dates", []Cell{date(day), missing()}, models.KindDatetime},
		{"text", []Cell{text("M"), text("F")}, models.KindText},
		{"mixed", []Cell{num(1), text("x")}, models.KindText},
		{"numbers and dates", []Cell{num(1), date(day)}, models.KindText},
	}

	for _, tt := range tests {
		if result := InferKind(tt.values); result != tt.expected {
			t.Errorf("InferKind(%s) = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}

func TestBuildTable(t *testing.T) {
	day := time.Date(2023, 5, 6, 0, 0, 0, 0, time.UTC)
	grid := &Grid{
		Source: "test",
		Cells: [][]Cell{
			{text("Age"), text("Gender"), text("Joined"), text("Code")},
			{num(20), text("M"), date(day), num(7)},
			{missing(), text("F"), missing(), text("x7")},
			{num(30), missing(), date(day.AddDate(0, 0, 1))},
		},
	}

	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	tbl, err := BuildTable(grid, mem)
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}

	if tbl.NumRows() != 3 {
		t.Errorf("Expected 3 rows, got %d", tbl.NumRows())
	}
	if names := tbl.ColumnNames(); !reflect.DeepEqual(names, []string{"Age", "Gender", "Joined", "Code"}) {
		t.Errorf("Unexpected column names %q", names)
	}

	age, _ := tbl.Column("Age")
	if age.Kind != models.KindNumeric || age.NullCount() != 1 {
		t.Errorf("Age: kind %v, %d missing", age.Kind, age.NullCount())
	}
	if got := age.Floats(); !reflect.DeepEqual(got, []float64{20, 30}) {
		t.Errorf("Age values = %v", got)
	}

	gender, _ := tbl.Column("Gender")
	if gender.Kind != models.KindText || !gender.IsNull(2) {
		t.Errorf("Gender: kind %v, row 2 missing %v", gender.Kind, gender.IsNull(2))
	}

	joined, _ := tbl.Column("Joined")
	if joined.Kind != models.KindDatetime || !joined.Time(0).Equal(day) {
		t.Errorf("Joined: kind %v, first %v", joined.Kind, joined.Time(0))
	}

	// Short rows are padded with missing values; mixed columns become text
	code, _ := tbl.Column("Code")
	if code.Kind != models.KindText || code.Text(0) != "7" || !code.IsNull(2) {
		t.Errorf("Code: kind %v, labels %q", code.Kind, code.Labels())
	}

	tbl.Release()
	mem.AssertSize(t, 0)
}
