package helper

import "github.com/shopspring/decimal"

// Nominal dikirim sebagai angka JSON (1047.5), bukan string.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RequireNonNegative menolak nominal negatif; key = nama field json.
func RequireNonNegative(amounts map[string]decimal.Decimal) error {
	var fields map[string]string
	for k, v := range amounts {
		if v.IsNegative() {
			if fields == nil {
				fields = map[string]string{}
			}
			fields[k] = "min=0"
		}
	}
	if fields == nil {
		return nil
	}
	e := InvalidInput("金额不能为负数")
	e.Fields = fields
	return e
}

// Money membulatkan ke 2 desimal (skala kolom numeric(10,2)).
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
