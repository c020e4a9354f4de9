package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// captureGateway records inserts so tests can inspect exactly what would
// reach the database.
type captureGateway struct {
	mu     sync.Mutex
	tables []string
	cols   [][]string
	rows   [][][]any
}

func (c *captureGateway) CopyFrom(_ context.Context, table string, columns []string, rows [][]any) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables = append(c.tables, table)
	c.cols = append(c.cols, columns)
	c.rows = append(c.rows, rows)
	return int64(len(rows)), nil
}

func (c *captureGateway) Exec(context.Context, string) error { return nil }

func (c *captureGateway) Query(context.Context, string, ...any) ([]map[string]any, error) {
	return nil, nil
}

func writeCSV(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunServicesEndToEnd(t *testing.T) {
	dir := t.TempDir()
	body := "Cod_Concessionaria,Cod_Filial,Data_De_Realizacao_Do_Servico,Quantidade_De_Servicos_Realizados,Valor_Total_Do_Servico_Realizado\n" +
		"0,0-1-1,2024-05-31,2,350.00\n" +
		"0,0-1-1,,1,100.00\n" + // missing required service date
		"0,0-1-2,2024-06-01,3,\n"
	path := writeCSV(t, dir, "servicos.csv", body)

	gw := &captureGateway{}
	p := New(zerolog.Nop(), gw, 1000, filepath.Join(dir, "rej"))
	sum, err := p.Run(context.Background(), Job{Dataset: "hist_servicos", Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if sum.RowsRead != 3 || sum.RecordsReady != 2 || sum.RecordsRejected != 1 || sum.RowsInserted != 2 {
		t.Fatalf("summary = %+v", sum)
	}
	if len(gw.tables) != 1 || gw.tables[0] != "BRZ_HIST_SERVICOS" {
		t.Fatalf("tables = %v", gw.tables)
	}

	cols := gw.cols[0]
	row := gw.rows[0][0]
	byName := func(name string) any {
		for i, c := range cols {
			if c == name {
				return row[i]
			}
		}
		t.Fatalf("column %s not in insert", name)
		return nil
	}
	if byName("COD_FILIAL") != "0-1-1" || byName("QTDE_SERVICOS") != int64(2) {
		t.Fatalf("first row = %v", row)
	}
	d, ok := byName("DT_REALIZACAO_SERVICO").(time.Time)
	if !ok || d.Format("2006-01-02") != "2024-05-31" {
		t.Fatalf("DT_REALIZACAO_SERVICO = %#v", byName("DT_REALIZACAO_SERVICO"))
	}
}

// A file whose every record fails validation must short-circuit before the
// gateway is touched.
func TestRunNothingToInsert(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "servicos.csv",
		"Cod_Concessionaria,Cod_Filial,Data_De_Realizacao_Do_Servico\n"+
			",,\n")

	gw := &captureGateway{}
	p := New(zerolog.Nop(), gw, 1000, dir)
	sum, err := p.Run(context.Background(), Job{Dataset: "hist_servicos", Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if sum.RecordsReady != 0 || sum.RowsInserted != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if len(gw.tables) != 0 {
		t.Fatal("gateway touched with nothing to insert")
	}
}

func TestRunVehicleStockDerivesCodes(t *testing.T) {
	dir := t.TempDir()
	body := "Nome da Concessionaria,Nome da Filial,Marca do Veiculo,Tempo Total no Estoque,Data de Entrada do Veiculo no Estoque\n" +
		"CCM,CCM AUTOS 3,FIAT,1 A 3 MESES,15/03/2024\n"
	path := writeCSV(t, dir, "estoque.csv", body)

	gw := &captureGateway{}
	p := New(zerolog.Nop(), gw, 1000, dir)
	sum, err := p.Run(context.Background(), Job{Dataset: "estoque_veiculos", Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if sum.RowsInserted != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	cols, row := gw.cols[0], gw.rows[0][0]
	got := map[string]any{}
	for i, c := range cols {
		got[c] = row[i]
	}
	if got["COD_CONCESSIONARIA"] != "0" || got["COD_FILIAL"] != "0-1-3" {
		t.Fatalf("codes = %v / %v", got["COD_CONCESSIONARIA"], got["COD_FILIAL"])
	}
	if got["TEMPO_TOTAL_ESTOQUE_DIAS"] != int64(60) {
		t.Fatalf("stock age = %#v", got["TEMPO_TOTAL_ESTOQUE_DIAS"])
	}
}

func TestRunUnknownDataset(t *testing.T) {
	p := New(zerolog.Nop(), &captureGateway{}, 1000, t.TempDir())
	if _, err := p.Run(context.Background(), Job{Dataset: "nope", Path: "x.csv"}); err == nil {
		t.Fatal("unknown dataset accepted")
	}
}

func TestRunAllIndependentJobs(t *testing.T) {
	dir := t.TempDir()
	good := writeCSV(t, dir, "servicos.csv",
		"Cod_Concessionaria,Cod_Filial,Data_De_Realizacao_Do_Servico\n0,0-1-1,2024-05-31\n")

	gw := &captureGateway{}
	p := New(zerolog.Nop(), gw, 1000, dir)
	sums, err := p.RunAll(context.Background(), []Job{
		{Dataset: "hist_servicos", Path: good},
		{Dataset: "estoque_pecas", Path: filepath.Join(dir, "absent.csv")},
	}, 2)
	if err == nil {
		t.Fatal("missing file must fail the batch")
	}
	if len(sums) != 2 {
		t.Fatalf("summaries = %d", len(sums))
	}
	// The good job still completed.
	if sums[0].RowsInserted != 1 {
		t.Fatalf("good job summary = %+v", sums[0])
	}
}
