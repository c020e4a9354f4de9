package transform

import (
	"strings"

	"autobronze/internal/coerce"
)

// DealerCode derives COD_CONCESSIONARIA from the dealership name. The CCM
// group maps to code "0"; any other non-empty name passes through trimmed,
// pending a real dealer registry.
func DealerCode(dealerName any) any {
	s := coerce.Text(dealerName)
	if s == nil {
		return nil
	}
	if strings.ToUpper(s.(string)) == "CCM" {
		return "0"
	}
	return s
}

// BranchCode derives COD_FILIAL from the branch name. The three CCM AUTOS
// branches have fixed codes; unknown branches under a known dealer get the
// "<dealer>-1-0" placeholder, and without a dealer code the branch name
// itself is kept.
func BranchCode(branchName, dealerCode any) any {
	s := coerce.Text(branchName)
	if s == nil {
		return nil
	}
	switch strings.ToUpper(s.(string)) {
	case "CCM AUTOS 1":
		return "0-1-1"
	case "CCM AUTOS 2":
		return "0-1-2"
	case "CCM AUTOS 3":
		return "0-1-3"
	}
	if dc, ok := dealerCode.(string); ok && dc != "" {
		return dc + "-1-0"
	}
	return s
}
