package transform

import (
	"github.com/rs/zerolog"

	"autobronze/internal/coerce"
	"autobronze/internal/reader"
	"autobronze/internal/schema"
	"autobronze/pkg/records"
)

// Services maps the service history extract to BRZ_HIST_SERVICOS. This
// extract already carries dealer and branch codes, and its header uses
// capitalized connectives ("Nome_Da_Filial"), unlike the other four.
type Services struct {
	log zerolog.Logger
}

func NewServices(log zerolog.Logger) *Services {
	return &Services{log: log}
}

func (t *Services) Name() string           { return DatasetServices }
func (t *Services) Schema() *schema.Schema { return schema.Services }

func (t *Services) Transform(tbl *reader.Table) []records.Record {
	out := make([]records.Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, records.Record{
			"COD_CONCESSIONARIA": coerce.Text(row["Cod_Concessionaria"]),
			"COD_FILIAL":         coerce.Text(row["Cod_Filial"]),

			"NOME_CONCESSIONARIA": coerce.Text(row["Nome_Da_Concessionaria"]),
			"NOME_FILIAL":         coerce.Text(row["Nome_Da_Filial"]),

			"DT_REALIZACAO_SERVICO": coerce.Date(row["Data_De_Realizacao_Do_Servico"], coerce.LayoutISO),

			"QTDE_SERVICOS":       coerce.Int(row["Quantidade_De_Servicos_Realizados"]),
			"VALOR_TOTAL_SERVICO": coerce.Float(row["Valor_Total_Do_Servico_Realizado"]),
			"LUCRO_SERVICO":       coerce.Float(row["Lucro_Do_Servico"]),

			"DESCRICAO_SERVICO":    coerce.Text(row["Descricao_Do_Servico_Feito"]),
			"SECAO_SERVICO":        coerce.Text(row["Secao_Que_O_Servico_Foi_Feito"]),
			"DEPARTAMENTO_SERVICO": coerce.Text(row["Departamento_Que_Realizou_O_Servico"]),
			"CATEGORIA_SERVICO":    coerce.Text(row["Categoria_Do_Servico"]),

			"NOME_VENDEDOR_SERVICO": coerce.Text(row["Nome_Do_Vendedor_Que_Vendeu_O_Servico"]),
			"NOME_MECANICO":         coerce.Text(row["Nome_Do_Mecanico_Que_Fez_O_Servico"]),
			"NOME_CLIENTE":          coerce.Text(row["Nome_Do_Cliente_Que_Fez_O_Servico"]),
		})
	}
	return out
}
