package transform

import (
	"strings"

	"github.com/rs/zerolog"

	"autobronze/internal/coerce"
	"autobronze/internal/reader"
	"autobronze/internal/schema"
	"autobronze/pkg/records"
)

// entryDateCol appears up to three times in the vehicle stock extract; the
// reader renames the repeats with positional suffixes and Transform collapses
// them back into one canonical column.
const entryDateCol = "Data_de_Entrada_do_Veiculo_no_Estoque"

// vehicleStockKeyCols identify a stock unit well enough to deduplicate. The
// extract carries no chassis or plate, so a composite key stands in for the
// database's UNIQUE(CHASSI_VEICULO).
var vehicleStockKeyCols = []string{
	"Nome_da_Concessionaria",
	"Nome_da_Filial",
	"Marca_do_Veiculo",
	"Modelo_do_Veiculo",
	"Cor_do_Veiculo",
	"Ano_Modelo_do_Veiculo",
	"Ano_Fabricacao_do_Veiculo",
	entryDateCol,
}

// VehicleStock maps the vehicle inventory extract to BRZ_ESTOQUE_VEICULOS.
type VehicleStock struct {
	log zerolog.Logger
}

func NewVehicleStock(log zerolog.Logger) *VehicleStock {
	return &VehicleStock{log: log}
}

func (t *VehicleStock) Name() string           { return DatasetVehicleStock }
func (t *VehicleStock) Schema() *schema.Schema { return schema.VehicleStock }

func (t *VehicleStock) Transform(tbl *reader.Table) []records.Record {
	t.collapseEntryDate(tbl)
	if dropped := dedupeRows(tbl, vehicleStockKeyCols); dropped > 0 {
		t.log.Info().Int("dropped", dropped).Msg("duplicate stock rows removed")
	}

	out := make([]records.Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		dealerName := coerce.Text(row["Nome_da_Concessionaria"])
		branchName := coerce.Text(row["Nome_da_Filial"])
		dealerCode := DealerCode(dealerName)

		out = append(out, records.Record{
			"COD_CONCESSIONARIA": dealerCode,
			"COD_FILIAL":         BranchCode(branchName, dealerCode),

			"NOME_CONCESSIONARIA": dealerName,
			"NOME_FILIAL":         branchName,
			"MARCA_FILIAL":        coerce.Text(row["Marca_da_Filial"]),

			"CUSTO_VEICULO": coerce.Float(row["Custo_do_Veiculo"]),

			"MARCA_VEICULO":  coerce.Text(row["Marca_do_Veiculo"]),
			"MODELO_VEICULO": coerce.Text(row["Modelo_do_Veiculo"]),
			"COR_VEICULO":    coerce.Text(row["Cor_do_Veiculo"]),

			"VEICULO_NOVO_SEMINOVO": coerce.Text(row["Veiculo_Novo_ou_Semi_Novo"]),
			"TIPO_COMBUSTIVEL":      coerce.Text(row["Tipo_do_Combustivel"]),

			"ANO_MODELO":     coerce.Int(row["Ano_Modelo_do_Veiculo"]),
			"ANO_FABRICACAO": coerce.Int(row["Ano_Fabricacao_do_Veiculo"]),

			"CHASSI_VEICULO":           coerce.Text(row["Chassi_do_Veiculo"]),
			"TEMPO_TOTAL_ESTOQUE_DIAS": stockAgeDays(row["Tempo_Total_no_Estoque"]),
			"KM_ATUAL":                 coerce.Int(row["Kilometragem_Atual_do_Veiculo"]),
			"PLACA_VEICULO":            coerce.Text(row["Placa_do_Veiculo"]),

			"DT_ENTRADA_ESTOQUE": coerce.Date(row[entryDateCol], coerce.LayoutBR),
		})
	}
	return out
}

// collapseEntryDate merges the repeated entry-date columns into one, taking
// the first non-empty value per row and dropping the extras.
func (t *VehicleStock) collapseEntryDate(tbl *reader.Table) {
	var cols []string
	for _, c := range tbl.Columns {
		if c == entryDateCol || strings.HasPrefix(c, entryDateCol+"_") {
			cols = append(cols, c)
		}
	}
	if len(cols) <= 1 {
		return
	}
	canonical := cols[0]
	if tbl.Has(entryDateCol) {
		canonical = entryDateCol
	}
	for _, row := range tbl.Rows {
		var v any
		for _, c := range cols {
			if s := coerce.Text(row[c]); s != nil {
				v = s
				break
			}
		}
		row[canonical] = v
	}
	var extras []string
	for _, c := range cols {
		if c != canonical {
			extras = append(extras, c)
		}
	}
	tbl.Drop(extras...)
	t.log.Info().Str("kept", canonical).Strs("removed", extras).
		Msg("entry date columns collapsed")
}

// stockAgeDays converts the textual stock-age buckets to approximate days.
// Anything outside the known buckets falls back to numeric coercion.
func stockAgeDays(v any) any {
	s := coerce.Text(v)
	if s == nil {
		return nil
	}
	u := strings.ToUpper(s.(string))
	for _, b := range stockAgeBuckets {
		if strings.Contains(u, b.label) {
			return b.days
		}
	}
	return coerce.Int(s)
}

var stockAgeBuckets = []struct {
	label string
	days  int64
}{
	{"MENOS DE 1 MES", 15},
	{"1 A 3 MESES", 60},
	{"3 A 6 MESES", 135},
	{"6 A 9 MESES", 225},
	{"9 A 12 MESES", 315},
	{"1 A 2 ANOS", 540},
	{"2 A 3 ANOS", 900},
}
