// Package transform maps raw CSV tables onto the bronze table contracts.
// Each dataset gets its own Transformer because each extract carries its own
// column names, date formats, and damage patterns. Transformers only shape
// data; conformance is proven afterwards by schema.Validate.
package transform

import (
	"fmt"

	"github.com/rs/zerolog"

	"autobronze/internal/reader"
	"autobronze/internal/schema"
	"autobronze/pkg/records"
)

// Transformer turns one parsed table into records shaped for a bronze table.
// Transform may mutate the table (structural repairs, deduplication) and is
// total per row: a damaged cell becomes nil, never an error.
type Transformer interface {
	// Name is the dataset key used in configuration and logs.
	Name() string
	// Schema is the bronze contract the produced records target.
	Schema() *schema.Schema
	Transform(tbl *reader.Table) []records.Record
}

// Dataset keys, also the names accepted in job configuration.
const (
	DatasetPartsStock   = "estoque_pecas"
	DatasetVehicleStock = "estoque_veiculos"
	DatasetServices     = "hist_servicos"
	DatasetPartsSales   = "hist_vendas_pecas"
	DatasetVehicleSales = "hist_vendas_veiculos"
)

// ByName constructs the transformer for a dataset key.
func ByName(name string, log zerolog.Logger) (Transformer, error) {
	switch name {
	case DatasetPartsStock:
		return NewPartsStock(log), nil
	case DatasetVehicleStock:
		return NewVehicleStock(log), nil
	case DatasetServices:
		return NewServices(log), nil
	case DatasetPartsSales:
		return NewPartsSales(log), nil
	case DatasetVehicleSales:
		return NewVehicleSales(log), nil
	}
	return nil, fmt.Errorf("unknown dataset %q", name)
}

// Datasets lists every known dataset key.
func Datasets() []string {
	return []string{
		DatasetPartsStock,
		DatasetVehicleStock,
		DatasetServices,
		DatasetPartsSales,
		DatasetVehicleSales,
	}
}
