package schema

// The five bronze tables of the dealership ingestion. Field order is the
// exact bulk-insert column order; identity columns are omitted on purpose.

// PartsStock is BRZ_ESTOQUE_PECAS.
var PartsStock = New("BRZ_ESTOQUE_PECAS", []Field{
	{Name: "COD_CONCESSIONARIA", Kind: KindText, Required: true},
	{Name: "COD_FILIAL", Kind: KindText, Required: true},
	{Name: "NOME_CONCESSIONARIA", Kind: KindText},
	{Name: "NOME_FILIAL", Kind: KindText},
	{Name: "MARCA_FILIAL", Kind: KindText},
	{Name: "VALOR_PECA_ESTOQUE", Kind: KindFloat},
	{Name: "QTDE_PECA_ESTOQUE", Kind: KindFloat},
	{Name: "DESCRICAO_PECA", Kind: KindText},
	{Name: "CATEGORIA_PECA", Kind: KindText},
	{Name: "DT_ULTIMA_VENDA_PECA", Kind: KindDate},
	{Name: "DT_ULTIMA_ENTRADA_PECA", Kind: KindDate},
	{Name: "PECA_OBSOLETA_FLAG", Kind: KindFlag},
	{Name: "TEMPO_OBSOLETA_DIAS", Kind: KindInt},
	{Name: "MARCA_PECA", Kind: KindText},
	{Name: "CODIGO_PECA_ESTOQUE", Kind: KindText},
})

// VehicleStock is BRZ_ESTOQUE_VEICULOS.
var VehicleStock = New("BRZ_ESTOQUE_VEICULOS", []Field{
	{Name: "COD_CONCESSIONARIA", Kind: KindText, Required: true},
	{Name: "COD_FILIAL", Kind: KindText, Required: true},
	{Name: "NOME_CONCESSIONARIA", Kind: KindText},
	{Name: "NOME_FILIAL", Kind: KindText},
	{Name: "MARCA_FILIAL", Kind: KindText},
	{Name: "CUSTO_VEICULO", Kind: KindFloat},
	{Name: "MARCA_VEICULO", Kind: KindText},
	{Name: "MODELO_VEICULO", Kind: KindText},
	{Name: "COR_VEICULO", Kind: KindText},
	{Name: "VEICULO_NOVO_SEMINOVO", Kind: KindText},
	{Name: "TIPO_COMBUSTIVEL", Kind: KindText},
	{Name: "ANO_MODELO", Kind: KindInt},
	{Name: "ANO_FABRICACAO", Kind: KindInt},
	{Name: "CHASSI_VEICULO", Kind: KindText},
	{Name: "TEMPO_TOTAL_ESTOQUE_DIAS", Kind: KindInt},
	{Name: "KM_ATUAL", Kind: KindInt},
	{Name: "PLACA_VEICULO", Kind: KindText},
	{Name: "DT_ENTRADA_ESTOQUE", Kind: KindDate},
})

// Services is BRZ_HIST_SERVICOS.
var Services = New("BRZ_HIST_SERVICOS", []Field{
	{Name: "COD_CONCESSIONARIA", Kind: KindText, Required: true},
	{Name: "COD_FILIAL", Kind: KindText, Required: true},
	{Name: "NOME_CONCESSIONARIA", Kind: KindText},
	{Name: "NOME_FILIAL", Kind: KindText},
	{Name: "DT_REALIZACAO_SERVICO", Kind: KindDate, Required: true},
	{Name: "QTDE_SERVICOS", Kind: KindInt},
	{Name: "VALOR_TOTAL_SERVICO", Kind: KindFloat},
	{Name: "LUCRO_SERVICO", Kind: KindFloat},
	{Name: "DESCRICAO_SERVICO", Kind: KindText},
	{Name: "SECAO_SERVICO", Kind: KindText},
	{Name: "DEPARTAMENTO_SERVICO", Kind: KindText},
	{Name: "CATEGORIA_SERVICO", Kind: KindText},
	{Name: "NOME_VENDEDOR_SERVICO", Kind: KindText},
	{Name: "NOME_MECANICO", Kind: KindText},
	{Name: "NOME_CLIENTE", Kind: KindText},
})

// PartsSales is BRZ_HIST_VENDAS_PECAS.
var PartsSales = New("BRZ_HIST_VENDAS_PECAS", []Field{
	{Name: "COD_CONCESSIONARIA", Kind: KindText, Required: true},
	{Name: "COD_FILIAL", Kind: KindText, Required: true},
	{Name: "NOME_CONCESSIONARIA", Kind: KindText},
	{Name: "NOME_FILIAL", Kind: KindText},
	{Name: "MARCA_FILIAL", Kind: KindText},
	{Name: "DT_VENDA", Kind: KindDate, Required: true},
	{Name: "QTDE_VENDIDA", Kind: KindFloat},
	{Name: "TIPO_TRANSACAO", Kind: KindText},
	{Name: "VALOR_VENDA", Kind: KindFloat},
	{Name: "CUSTO_PECA", Kind: KindFloat},
	{Name: "LUCRO_VENDA", Kind: KindFloat},
	{Name: "MARGEM_VENDA", Kind: KindFloat},
	{Name: "DESCRICAO_PECA", Kind: KindText},
	{Name: "CATEGORIA_PECA", Kind: KindText},
	{Name: "DEPARTAMENTO_VENDA", Kind: KindText},
	{Name: "TIPO_VENDA_PECA", Kind: KindText},
	{Name: "NOME_VENDEDOR", Kind: KindText},
	{Name: "NOME_COMPRADOR", Kind: KindText},
	{Name: "CIDADE_VENDA", Kind: KindText},
	{Name: "ESTADO_VENDA", Kind: KindText},
	{Name: "MACROREGIAO_VENDA", Kind: KindText},
})

// VehicleSales is BRZ_HIST_VENDAS_VEICULOS.
var VehicleSales = New("BRZ_HIST_VENDAS_VEICULOS", []Field{
	{Name: "COD_CONCESSIONARIA", Kind: KindText, Required: true},
	{Name: "COD_FILIAL", Kind: KindText, Required: true},
	{Name: "NOME_CONCESSIONARIA", Kind: KindText},
	{Name: "NOME_FILIAL", Kind: KindText},
	{Name: "MARCA_FILIAL", Kind: KindText},
	{Name: "DT_VENDA", Kind: KindDate, Required: true},
	{Name: "QTDE_VENDIDA", Kind: KindInt},
	{Name: "TIPO_TRANSACAO", Kind: KindText},
	{Name: "VALOR_VENDA", Kind: KindFloat},
	{Name: "CUSTO_VEICULO", Kind: KindFloat},
	{Name: "LUCRO_VENDA", Kind: KindFloat},
	{Name: "MARGEM_VENDA", Kind: KindFloat},
	{Name: "MARCA_VEICULO", Kind: KindText},
	{Name: "MODELO_VEICULO", Kind: KindText},
	{Name: "FAMILIA_VEICULO", Kind: KindText},
	{Name: "CATEGORIA_VEICULO", Kind: KindText},
	{Name: "COR_VEICULO", Kind: KindText},
	{Name: "VEICULO_NOVO_SEMINOVO", Kind: KindText},
	{Name: "TIPO_COMBUSTIVEL", Kind: KindText},
	{Name: "ANO_MODELO", Kind: KindInt},
	{Name: "ANO_FABRICACAO", Kind: KindInt},
	{Name: "CHASSI_VEICULO", Kind: KindText},
	{Name: "DIAS_EM_ESTOQUE", Kind: KindInt},
	{Name: "TIPO_VENDA_VEICULO", Kind: KindText},
	{Name: "NOME_VENDEDOR", Kind: KindText},
	{Name: "NOME_COMPRADOR", Kind: KindText},
	{Name: "CIDADE_VENDA", Kind: KindText},
	{Name: "ESTADO_VENDA", Kind: KindText},
	{Name: "MACROREGIAO_VENDA", Kind: KindText},
})

// All lists every bronze schema in a stable order.
func All() []*Schema {
	return []*Schema{PartsStock, VehicleStock, Services, PartsSales, VehicleSales}
}

// ByTable resolves a bronze table name to its schema.
func ByTable(name string) (*Schema, bool) {
	switch name {
	case PartsStock.Table:
		return PartsStock, true
	case VehicleStock.Table:
		return VehicleStock, true
	case Services.Table:
		return Services, true
	case PartsSales.Table:
		return PartsSales, true
	case VehicleSales.Table:
		return VehicleSales, true
	}
	return nil, false
}
