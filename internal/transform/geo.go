package transform

import (
	"strings"

	"autobronze/internal/coerce"
)

// validUFs is the full set of Brazilian federative units.
var validUFs = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

var validMacroRegions = map[string]struct{}{
	"NORTE": {}, "NORDESTE": {}, "CENTRO-OESTE": {}, "SUDESTE": {}, "SUL": {},
}

// State uppercases v and keeps it only if it is a real UF. Invalid states
// become nil rather than rejecting the record.
func State(v any) any {
	s := coerce.Text(v)
	if s == nil {
		return nil
	}
	uf := strings.ToUpper(s.(string))
	if _, ok := validUFs[uf]; !ok {
		return nil
	}
	return uf
}

// MacroRegion uppercases v and keeps it only if it names one of the five
// Brazilian macro regions.
func MacroRegion(v any) any {
	s := coerce.Text(v)
	if s == nil {
		return nil
	}
	m := strings.ToUpper(s.(string))
	if _, ok := validMacroRegions[m]; !ok {
		return nil
	}
	return m
}
