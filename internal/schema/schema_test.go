package schema

import (
	"strings"
	"testing"
	"time"

	"autobronze/pkg/records"
)

func validServiceRecord() records.Record {
	return records.Record{
		"COD_CONCESSIONARIA":    "0",
		"COD_FILIAL":            "0-1-1",
		"NOME_CONCESSIONARIA":   "CCM",
		"NOME_FILIAL":           "CCM AUTOS 1",
		"DT_REALIZACAO_SERVICO": time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		"QTDE_SERVICOS":         int64(2),
		"VALOR_TOTAL_SERVICO":   350.0,
		"LUCRO_SERVICO":         120.5,
		"DESCRICAO_SERVICO":     "TROCA DE OLEO",
		"SECAO_SERVICO":         nil,
		"DEPARTAMENTO_SERVICO":  nil,
		"CATEGORIA_SERVICO":     nil,
		"NOME_VENDEDOR_SERVICO": nil,
		"NOME_MECANICO":         "CARLOS",
		"NOME_CLIENTE":          nil,
	}
}

func TestValidateOK(t *testing.T) {
	if issues := Services.Validate(validServiceRecord()); issues != nil {
		t.Fatalf("unexpected issues: %v", issues)
	}
}

func TestValidateRequiredNull(t *testing.T) {
	rec := validServiceRecord()
	rec["DT_REALIZACAO_SERVICO"] = nil
	delete(rec, "COD_FILIAL")
	issues := Services.Validate(rec)
	if len(issues) != 2 {
		t.Fatalf("issues = %v, want 2", issues)
	}
	got := Reason(issues)
	for _, want := range []string{"DT_REALIZACAO_SERVICO", "COD_FILIAL", "required field is null"} {
		if !strings.Contains(got, want) {
			t.Fatalf("reason %q missing %q", got, want)
		}
	}
}

func TestValidateWrongType(t *testing.T) {
	rec := validServiceRecord()
	rec["QTDE_SERVICOS"] = "2"
	rec["VALOR_TOTAL_SERVICO"] = int64(350)
	issues := Services.Validate(rec)
	if len(issues) != 2 {
		t.Fatalf("issues = %v, want 2", issues)
	}
}

func TestValidateUndeclaredColumn(t *testing.T) {
	rec := validServiceRecord()
	rec["UNNAMED_27"] = "x"
	issues := Services.Validate(rec)
	if len(issues) != 1 || issues[0].Field != "UNNAMED_27" {
		t.Fatalf("issues = %v", issues)
	}
}

// An unknown key must be flagged even when the record carries fewer keys
// than the schema has fields.
func TestValidateUndeclaredColumnInSparseRecord(t *testing.T) {
	rec := records.Record{
		"COD_CONCESSIONARIA":    "0",
		"COD_FILIAL":            "0-1-1",
		"DT_REALIZACAO_SERVICO": time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		"QTDE_SERVICO":          int64(2), // misspelled QTDE_SERVICOS
	}
	issues := Services.Validate(rec)
	if len(issues) != 1 || issues[0].Field != "QTDE_SERVICO" {
		t.Fatalf("issues = %v", issues)
	}
}

func TestFlagKind(t *testing.T) {
	rec := records.Record{
		"COD_CONCESSIONARIA": "7",
		"COD_FILIAL":         "7-1-0",
		"PECA_OBSOLETA_FLAG": "TALVEZ",
	}
	issues := PartsStock.Validate(rec)
	if len(issues) != 1 || issues[0].Field != "PECA_OBSOLETA_FLAG" {
		t.Fatalf("issues = %v", issues)
	}
	rec["PECA_OBSOLETA_FLAG"] = "SIM"
	if issues := PartsStock.Validate(rec); issues != nil {
		t.Fatalf("unexpected issues: %v", issues)
	}
}

func TestColumnsOrderAndIdentityExcluded(t *testing.T) {
	cols := VehicleSales.Columns()
	if len(cols) != 29 {
		t.Fatalf("vehicle sales columns = %d, want 29", len(cols))
	}
	if cols[0] != "COD_CONCESSIONARIA" || cols[5] != "DT_VENDA" {
		t.Fatalf("column order off: %v", cols[:6])
	}
	for _, c := range cols {
		if c == "ID_VENDA_VEICULO" {
			t.Fatal("identity column leaked into insert columns")
		}
	}
}

func TestByTable(t *testing.T) {
	s, ok := ByTable("BRZ_ESTOQUE_PECAS")
	if !ok || s != PartsStock {
		t.Fatalf("ByTable = %v, %v", s, ok)
	}
	if _, ok := ByTable("BRZ_NOPE"); ok {
		t.Fatal("unknown table resolved")
	}
}
