package models

import (
	"reflect"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

func buildTable(t *testing.T, mem memory.Allocator) arrow.Table {
	t.Helper()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "Score", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "Caf\u00e9", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "When", Type: DatetimeType, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	b.Field(0).(*array.Float64Builder).AppendValues([]float64{1.5, 0, 3}, []bool{true, false, true})
	b.Field(1).(*array.StringBuilder).AppendValues([]string{"a", "b", ""}, []bool{true, true, false})
	when := time.Date(2023, 4, 1, 12, 30, 0, 0, time.UTC)
	b.Field(2).(*array.TimestampBuilder).AppendValues(
		[]arrow.Timestamp{arrow.Timestamp(when.UnixMilli()), 0, arrow.Timestamp(when.AddDate(0, 0, 1).Truncate(24 * time.Hour).UnixMilli())},
		[]bool{true, false, true})

	rec := b.NewRecord()
	defer rec.Release()
	return array.NewTableFromRecords(schema, []arrow.Record{rec})
}

func TestTable(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	at := buildTable(t, mem)

	tbl, err := NewTable(at)
	at.Release()
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	if tbl.NumRows() != 3 {
		t.Errorf("Expected 3 rows, got %d", tbl.NumRows())
	}
	if names := tbl.ColumnNames(); !reflect.DeepEqual(names, []string{"Score", "Caf\u00e9", "When"}) {
		t.Errorf("Unexpected names %q", names)
	}

	score, ok := tbl.Column("Score")
	if !ok || score.Kind != KindNumeric {
		t.Fatalf("Score: %v, %v", ok, score)
	}
	if !reflect.DeepEqual(score.Floats(), []float64{1.5, 3}) || score.NullCount() != 1 {
		t.Errorf("Score values %v, %d missing", score.Floats(), score.NullCount())
	}
	if !reflect.DeepEqual(score.Labels(), []string{"1.5", "3"}) {
		t.Errorf("Score labels %q", score.Labels())
	}

	// Lookup normalises to NFC
	cafe, ok := tbl.Column("Cafe\u0301")
	if !ok || cafe.Kind != KindText {
		t.Fatalf("Expected NFD lookup to find text column, got %v", ok)
	}
	if !reflect.DeepEqual(cafe.Labels(), []string{"a", "b"}) || cafe.Text(2) != "" {
		t.Errorf("Cafe labels %q", cafe.Labels())
	}

	when, _ := tbl.Column("When")
	if when.Kind != KindDatetime {
		t.Errorf("When: kind %v", when.Kind)
	}
	if !reflect.DeepEqual(when.Labels(), []string{"2023-04-01 12:30:00", "2023-04-02"}) {
		t.Errorf("When labels %q", when.Labels())
	}
	if when.Time(0).Location() != time.UTC {
		t.Errorf("Expected UTC, got %v", when.Time(0).Location())
	}

	if _, ok := tbl.Column("missing"); ok {
		t.Error("Expected unknown column lookup to fail")
	}
	if len(tbl.Columns()) != 3 {
		t.Errorf("Expected 3 columns, got %d", len(tbl.Columns()))
	}

	tbl.Release()
	mem.AssertSize(t, 0)
}

func TestNewTableRejectsUnsupportedTypes(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	schema := arrow.NewSchema([]arrow.Field{{Name: "n", Type: arrow.PrimitiveTypes.Int64}}, nil)
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()
	b.Field(0).(*array.Int64Builder).Append(1)
	rec := b.NewRecord()
	defer rec.Release()

	at := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer at.Release()

	if _, err := NewTable(at); err == nil {
		t.Error("Expected error for int64 column")
	}
}

func TestColumnKindString(t *testing.T) {
	tests := []struct {
		kind     ColumnKind
		expected string
	}{
		{KindNumeric, "numeric"},
		{KindText, "text"},
		{KindDatetime, "datetime"},
		{ColumnKind(9), "unknown(9)"},
	}

	for _, tt := range tests {
		if result := tt.kind.String(); result != tt.expected {
			t.Errorf("ColumnKind(%d).String() = %q, expected %q", int(tt.kind), result, tt.expected)
		}
	}
}

func TestFormat(t *testing.T) {
	floats := map[float64]string{25: "25", 25.5: "25.5", -0.125: "-0.125", 1e21: "1000000000000000000000"}
	for v, expected := range floats {
		if result := FormatFloat(v); result != expected {
			t.Errorf("FormatFloat(%v) = %q, expected %q", v, result, expected)
		}
	}

	times := map[time.Time]string{
		time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC): "2023-04-01",
		time.Date(2023, 4, 1, 9, 5, 0, 0, time.UTC): "2023-04-01 09:05:00",
		time.Date(2023, 4, 1, 0, 0, 0, 1, time.UTC): "2023-04-01 00:00:00",
		time.Date(1999, 1, 3, 0, 0, 7, 0, time.UTC): "1999-01-03 00:00:07",
	}
	for v, expected := range times {
		if result := FormatTime(v); result != expected {
			t.Errorf("FormatTime(%v) = %q, expected %q", v, result, expected)
		}
	}
}

func TestSelectionDatetimeColumn(t *testing.T) {
	empty, joined := "", "Joined"
	tests := []struct {
		datetime *string
		name     string
		ok       bool
	}{
		{nil, "", false},
		{&empty, "", false},
		{&joined, "Joined", true},
	}

	for _, tt := range tests {
		name, ok := Selection{Numeric: "Age", Categorical: "Gender", Datetime: tt.datetime}.DatetimeColumn()
		if name != tt.name || ok != tt.ok {
			t.Errorf("DatetimeColumn() = %q, %v, expected %q, %v", name, ok, tt.name, tt.ok)
		}
	}
}

func TestCellRange(t *testing.T) {
	r := CellRange{R1: 2, C1: 3, R2: 10, C2: 4}
	if r.Rows() != 9 || r.Cols() != 2 {
		t.Errorf("Expected 9x2, got %dx%d", r.Rows(), r.Cols())
	}
	if r.String() != "R2C3:R10C4" {
		t.Errorf("String() = %q", r.String())
	}
}

func TestBoxSummaryIQR(t *testing.T) {
	if iqr := (BoxSummary{Q1: 25, Q3: 30}).IQR(); iqr != 5 {
		t.Errorf("IQR = %v, expected 5", iqr)
	}
	if total := (HistogramData{Counts: []int{1, 0, 4}}).Total(); total != 5 {
		t.Errorf("Total = %d, expected 5", total)
	}
}
