package transform

import (
	"github.com/rs/zerolog"

	"autobronze/internal/coerce"
	"autobronze/internal/reader"
	"autobronze/internal/schema"
	"autobronze/pkg/records"
)

// marginCol is the sale margin source column, shared by the two sales
// extracts; empty cells there mean zero margin, not unknown.
const marginCol = "Margem_da_Venda"

// PartsSales maps the parts sales history extract to BRZ_HIST_VENDAS_PECAS.
// Buyer and seller names in this extract arrive double-decoded and go
// through the mojibake repair; empty margins are rewritten to zero for the
// whole column before row mapping.
type PartsSales struct {
	log zerolog.Logger
}

func NewPartsSales(log zerolog.Logger) *PartsSales {
	return &PartsSales{log: log}
}

func (t *PartsSales) Name() string           { return DatasetPartsSales }
func (t *PartsSales) Schema() *schema.Schema { return schema.PartsSales }

func (t *PartsSales) Transform(tbl *reader.Table) []records.Record {
	defaultMarginZero(tbl)

	out := make([]records.Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, records.Record{
			"COD_CONCESSIONARIA": coerce.Text(row["Cod_Concessionaria"]),
			"COD_FILIAL":         coerce.Text(row["Cod_Filial"]),

			"NOME_CONCESSIONARIA": coerce.Text(row["Nome_da_Concessionaria"]),
			"NOME_FILIAL":         coerce.Text(row["Nome_da_Filial"]),
			"MARCA_FILIAL":        coerce.Text(row["Marca_da_Filial"]),

			"DT_VENDA": coerce.Date(row["Data_da_Venda"], coerce.LayoutISO),

			"QTDE_VENDIDA":   coerce.Float(row["Quantidade_Vendida"]),
			"TIPO_TRANSACAO": coerce.Text(row["Tipo_de_Transacao"]),

			"VALOR_VENDA":  coerce.Float(row["Valor_da_Venda"]),
			"CUSTO_PECA":   coerce.Float(row["Custo_da_Peca"]),
			"LUCRO_VENDA":  coerce.Float(row["Lucro_da_Venda"]),
			"MARGEM_VENDA": coerce.Float(row[marginCol]),

			"DESCRICAO_PECA": coerce.Text(row["Descricao_da_Peca"]),
			"CATEGORIA_PECA": coerce.Text(row["Categoria_da_Peca"]),

			"DEPARTAMENTO_VENDA": coerce.Text(row["Departamento_da_Venda"]),
			"TIPO_VENDA_PECA":    coerce.Text(row["Tipo_de_Venda_da_Peca"]),

			"NOME_VENDEDOR":  repairedName(row["Nome_do_Vendedor_que_Realizou_a_Venda"]),
			"NOME_COMPRADOR": repairedName(row["Nome_do_Comprador_da_Peca"]),

			"CIDADE_VENDA":      coerce.Text(row["Cidade_da_Venda"]),
			"ESTADO_VENDA":      State(row["Estado_Brasileiro_da_Venda"]),
			"MACROREGIAO_VENDA": coerce.Text(row["Macroregiao_Geografica_da_Venda"]),
		})
	}
	return out
}

// defaultMarginZero rewrites blank margin cells to "0" for the whole column.
// This runs before per-row mapping so a blank margin loads as zero instead of
// null in both sales datasets.
func defaultMarginZero(tbl *reader.Table) {
	if !tbl.Has(marginCol) {
		return
	}
	for _, row := range tbl.Rows {
		if coerce.Text(row[marginCol]) == nil {
			row[marginCol] = "0"
		}
	}
}

// repairedName trims a person name and undoes the double-decoding the sales
// extracts are known to carry.
func repairedName(v any) any {
	s := coerce.Text(v)
	if s == nil {
		return nil
	}
	return coerce.FixMojibake(s.(string))
}
