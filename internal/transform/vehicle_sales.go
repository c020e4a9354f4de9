package transform

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"autobronze/internal/coerce"
	"autobronze/internal/reader"
	"autobronze/internal/schema"
	"autobronze/pkg/records"
)

// vinRE recognizes chassis numbers. A VIN is 17 characters, but the extract
// is dirty enough that 10 to 20 alphanumerics are accepted.
var vinRE = regexp.MustCompile(`^[A-Z0-9]{10,20}$`)

// VehicleSales maps the vehicle sales history extract to
// BRZ_HIST_VENDAS_VEICULOS. This extract has two damage patterns of its own:
// a trailing empty header column, and rows shifted one column left so the
// chassis lands in the days-in-stock column.
type VehicleSales struct {
	log zerolog.Logger
}

func NewVehicleSales(log zerolog.Logger) *VehicleSales {
	return &VehicleSales{log: log}
}

func (t *VehicleSales) Name() string           { return DatasetVehicleSales }
func (t *VehicleSales) Schema() *schema.Schema { return schema.VehicleSales }

func (t *VehicleSales) Transform(tbl *reader.Table) []records.Record {
	t.dropUnnamedColumns(tbl)
	defaultMarginZero(tbl)

	shifted := 0
	out := make([]records.Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		dealerCode := coerce.Text(row["Cod_Concessionaria"])
		branchName := coerce.Text(row["Nome_da_Filial"])
		branchCode := BranchCode(branchName, dealerCode)
		if branchCode == nil {
			branchCode = coerce.Text(row["Cod_Filial"])
		}

		chassis := coerce.Text(row["Chassi_do_Veiculo"])
		days := coerce.Int(row["Dias_que_o_Carro_Ficou_no_Estoque"])
		saleType := coerce.Text(row["Tipo_de_Venda_do_Veiculo"])
		seller := repairedName(row["Nome_do_Vendedor_que_Realizou_a_Venda"])
		buyer := repairedName(row["Nome_do_Comprador_do_Veiculo"])
		city := coerce.Text(row["Cidade_da_Venda"])
		uf := State(row["Estado_Brasileiro_da_Venda"])
		macro := MacroRegion(row["Macroregiao_Geografica_da_Venda"])

		// Shifted row: the chassis fell into the days column and every
		// column after it moved one place. The chassis is recovered, the
		// displaced fields are quarantined to null.
		if raw := coerce.Text(row["Dias_que_o_Carro_Ficou_no_Estoque"]); raw != nil && vinRE.MatchString(raw.(string)) {
			chassis = raw
			days = nil
			saleType = nil
			seller = nil
			buyer = nil
			city = nil
			uf = nil
			macro = nil
			shifted++
		}

		out = append(out, records.Record{
			"COD_CONCESSIONARIA": dealerCode,
			"COD_FILIAL":         branchCode,

			"NOME_CONCESSIONARIA": coerce.Text(row["Nome_da_Concessionaria"]),
			"NOME_FILIAL":         branchName,
			"MARCA_FILIAL":        coerce.Text(row["Marca_da_Filial"]),

			"DT_VENDA": coerce.Date(row["Data_da_Venda"], coerce.LayoutBR),

			"QTDE_VENDIDA":   coerce.Int(row["Quantidade_Vendida"]),
			"TIPO_TRANSACAO": coerce.Text(row["Tipo_de_Transacao"]),

			"VALOR_VENDA":   coerce.Float(row["Valor_da_Venda"]),
			"CUSTO_VEICULO": coerce.Float(row["Custo_do_Veiculo"]),
			"LUCRO_VENDA":   coerce.Float(row["Lucro_da_Venda"]),
			"MARGEM_VENDA":  coerce.Float(row[marginCol]),

			"MARCA_VEICULO":      coerce.Text(row["Marca_do_Veiculo"]),
			"MODELO_VEICULO":     coerce.Text(row["Modelo_do_Veiculo"]),
			"FAMILIA_VEICULO":    coerce.Text(row["Familia_do_Veiculo"]),
			"CATEGORIA_VEICULO":  coerce.Text(row["Categoria_do_Veiculo"]),
			"COR_VEICULO":        coerce.Text(row["Cor_do_Veiculo"]),

			"VEICULO_NOVO_SEMINOVO": coerce.Text(row["Veiculo_Novo_ou_Semi_Novo"]),
			"TIPO_COMBUSTIVEL":      coerce.Text(row["Tipo_do_Combustivel"]),

			"ANO_MODELO":     coerce.Int(row["Ano_Modelo_do_Veiculo"]),
			"ANO_FABRICACAO": coerce.Int(row["Ano_Fabricacao_do_Veiculo"]),

			"CHASSI_VEICULO":  chassis,
			"DIAS_EM_ESTOQUE": days,

			"TIPO_VENDA_VEICULO": saleType,
			"NOME_VENDEDOR":      seller,
			"NOME_COMPRADOR":     buyer,

			"CIDADE_VENDA":      city,
			"ESTADO_VENDA":      uf,
			"MACROREGIAO_VENDA": macro,
		})
	}
	if shifted > 0 {
		t.log.Warn().Int("rows", shifted).Msg("shifted rows quarantined, chassis recovered")
	}
	return out
}

// dropUnnamedColumns removes columns with a blank or "Unnamed" header; a
// trailing delimiter in the header line produces one.
func (t *VehicleSales) dropUnnamedColumns(tbl *reader.Table) {
	var extras []string
	for _, c := range tbl.Columns {
		s := strings.TrimSpace(c)
		if s == "" || strings.HasPrefix(strings.ToLower(s), "unnamed") {
			extras = append(extras, c)
		}
	}
	if len(extras) > 0 {
		tbl.Drop(extras...)
		t.log.Info().Strs("columns", extras).Msg("unnamed columns dropped")
	}
}
