package transform

import (
	"github.com/rs/zerolog"

	"autobronze/internal/coerce"
	"autobronze/internal/reader"
	"autobronze/internal/schema"
	"autobronze/pkg/records"
)

// PartsStock maps the parts inventory extract to BRZ_ESTOQUE_PECAS.
type PartsStock struct {
	log zerolog.Logger
}

func NewPartsStock(log zerolog.Logger) *PartsStock {
	return &PartsStock{log: log}
}

func (t *PartsStock) Name() string           { return DatasetPartsStock }
func (t *PartsStock) Schema() *schema.Schema { return schema.PartsStock }

func (t *PartsStock) Transform(tbl *reader.Table) []records.Record {
	out := make([]records.Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, records.Record{
			"COD_CONCESSIONARIA": coerce.Text(row["Cod_Concessionaria"]),
			"COD_FILIAL":         coerce.Text(row["Cod_Filial"]),

			"NOME_CONCESSIONARIA": coerce.Text(row["Nome_da_Concessionaria"]),
			"NOME_FILIAL":         coerce.Text(row["Nome_da_Filial"]),
			"MARCA_FILIAL":        coerce.Text(row["Marca_da_Filial"]),

			"VALOR_PECA_ESTOQUE": coerce.Float(row["Valor_da_Peca_em_Estoque"]),
			"QTDE_PECA_ESTOQUE":  coerce.Float(row["Quantidade_da_Peca_em_Estoque"]),

			"DESCRICAO_PECA": coerce.Text(row["Descricao_da_Peca"]),
			"CATEGORIA_PECA": coerce.Text(row["Categoria_da_Peca"]),

			"DT_ULTIMA_VENDA_PECA":   coerce.Date(row["Data_de_Ultima_Venda_da_Peca"], coerce.LayoutISO),
			"DT_ULTIMA_ENTRADA_PECA": coerce.Date(row["Data_da_Ultima_Entrada_no_Estoque_da_Peca"], coerce.LayoutISO),

			"PECA_OBSOLETA_FLAG": coerce.Flag(row["Peca_Esta_Obsoleta"]),
			// The source column is free text with no agreed day mapping yet,
			// so the bronze value stays null.
			"TEMPO_OBSOLETA_DIAS": nil,

			"MARCA_PECA":          coerce.Text(row["Nome_da_Marca_da_Peca"]),
			"CODIGO_PECA_ESTOQUE": coerce.Text(row["Codigo_da_Peca_no_Estoque"]),
		})
	}
	return out
}
