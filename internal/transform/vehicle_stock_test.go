package transform

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"autobronze/internal/reader"
	"autobronze/pkg/records"
)

func stockTable(rows ...records.Record) *reader.Table {
	return &reader.Table{
		Columns: []string{
			"Nome_da_Concessionaria", "Nome_da_Filial", "Marca_da_Filial",
			"Marca_do_Veiculo", "Modelo_do_Veiculo", "Cor_do_Veiculo",
			"Ano_Modelo_do_Veiculo", "Ano_Fabricacao_do_Veiculo",
			"Custo_do_Veiculo", "Tempo_Total_no_Estoque",
			entryDateCol,
		},
		Rows: rows,
	}
}

func TestVehicleStockCCMCodes(t *testing.T) {
	tbl := stockTable(records.Record{
		"Nome_da_Concessionaria": "CCM",
		"Nome_da_Filial":         "CCM AUTOS 2",
		"Marca_do_Veiculo":       "FIAT",
		entryDateCol:             "15/03/2024",
	})
	recs := NewVehicleStock(zerolog.Nop()).Transform(tbl)
	if len(recs) != 1 {
		t.Fatalf("records = %d", len(recs))
	}
	r := recs[0]
	if r["COD_CONCESSIONARIA"] != "0" || r["COD_FILIAL"] != "0-1-2" {
		t.Fatalf("codes = %v / %v", r["COD_CONCESSIONARIA"], r["COD_FILIAL"])
	}
	d, ok := r["DT_ENTRADA_ESTOQUE"].(time.Time)
	if !ok || d.Format("2006-01-02") != "2024-03-15" {
		t.Fatalf("entry date = %#v", r["DT_ENTRADA_ESTOQUE"])
	}
}

func TestVehicleStockAgeBuckets(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{"MENOS DE 1 MES", int64(15)},
		{"1 A 3 MESES", int64(60)},
		{"3 A 6 MESES", int64(135)},
		{"6 A 9 MESES", int64(225)},
		{"9 A 12 MESES", int64(315)},
		{"1 A 2 ANOS", int64(540)},
		{"2 A 3 ANOS", int64(900)},
		{"123", int64(123)},
		{"SEM INFO", nil},
		{nil, nil},
	}
	for _, tt := range tests {
		if got := stockAgeDays(tt.in); got != tt.want {
			t.Fatalf("stockAgeDays(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestVehicleStockEntryDateCollapse(t *testing.T) {
	tbl := stockTable()
	tbl.Columns = append(tbl.Columns, entryDateCol+"_1", entryDateCol+"_2")
	tbl.Rows = []records.Record{
		{
			"Nome_da_Concessionaria": "CCM",
			"Nome_da_Filial":         "CCM AUTOS 1",
			entryDateCol:             nil,
			entryDateCol + "_1":      "10/01/2024",
			entryDateCol + "_2":      "20/02/2024",
		},
	}
	recs := NewVehicleStock(zerolog.Nop()).Transform(tbl)
	d, ok := recs[0]["DT_ENTRADA_ESTOQUE"].(time.Time)
	if !ok || d.Format("2006-01-02") != "2024-01-10" {
		t.Fatalf("collapsed date = %#v", recs[0]["DT_ENTRADA_ESTOQUE"])
	}
	if tbl.Has(entryDateCol + "_1") {
		t.Fatal("suffixed entry date column survived collapse")
	}
}

func TestVehicleStockDedup(t *testing.T) {
	dup := records.Record{
		"Nome_da_Concessionaria":    "CCM",
		"Nome_da_Filial":            "CCM AUTOS 1",
		"Marca_do_Veiculo":          "VW",
		"Modelo_do_Veiculo":         "GOL",
		"Cor_do_Veiculo":            "PRATA",
		"Ano_Modelo_do_Veiculo":     "2023",
		"Ano_Fabricacao_do_Veiculo": "2022",
		entryDateCol:                "01/02/2024",
	}
	other := dup.Clone()
	other["Cor_do_Veiculo"] = "AZUL"
	tbl := stockTable(dup, dup.Clone(), other)
	recs := NewVehicleStock(zerolog.Nop()).Transform(tbl)
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2 after dedup", len(recs))
	}
}
