package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"hideout-tracker/internal/catalog"
)

func testCrafts() []catalog.Craft {
	return []catalog.Craft{
		{
			ID: "api-1", Name: "Gunpowder \"Kite\"", MaterialCost: 20000, SellPrice: 35000,
			OutputQuantity: 1, CraftTime: 55, Favorite: true, Source: catalog.SourceAPI,
			Materials: []catalog.Material{
				{Name: "Saltpeter", Quantity: 2, UnitPrice: 8000, TotalCost: 16000},
				{Name: "Matches, with sulfur", Quantity: 1, UnitPrice: 4000, TotalCost: 4000},
			},
		},
		{
			ID: "manual-1", Name: "Homebrew", MaterialCost: 5000, SellPrice: 3000,
			OutputQuantity: 1, CraftTime: 0, Source: catalog.SourceManual,
		},
	}
}

func TestCSV_RowsAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, testCrafts()); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("emitted CSV does not parse back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(records))
	}
	header := records[0]
	if header[0] != "name" || header[7] != "materials" {
		t.Errorf("header = %v", header)
	}

	first := records[1]
	if first[0] != `Gunpowder "Kite"` {
		t.Errorf("name cell = %q (quoting lost on round-trip)", first[0])
	}
	if first[6] != "yes" {
		t.Errorf("favorite cell = %q, want yes", first[6])
	}
	if first[7] != "Saltpeter x2; Matches, with sulfur x1" {
		t.Errorf("materials cell = %q", first[7])
	}

	second := records[2]
	if second[5] != "-" {
		t.Errorf("zero-duration rate cell = %q, want -", second[5])
	}
	if second[7] != "-" {
		t.Errorf("absent materials cell = %q, want -", second[7])
	}
}

func TestCSV_ProfitColumnConsistent(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, testCrafts()); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range records[1:] {
		cost, _ := strconv.Atoi(rec[1])
		price, _ := strconv.Atoi(rec[2])
		profit, _ := strconv.Atoi(rec[3])
		if profit != price-cost {
			t.Errorf("row %q: profit = %d, want %d", rec[0], profit, price-cost)
		}
	}
}

func TestXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := XLSX(&buf, "Workbench", testCrafts()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("emitted workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Workbench")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if !strings.HasPrefix(rows[1][0], "Gunpowder") {
		t.Errorf("first data row name = %q", rows[1][0])
	}
	if rows[1][3] != "15000" {
		t.Errorf("profit cell = %q, want 15000", rows[1][3])
	}
}
