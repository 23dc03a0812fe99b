package rmd

// ProjectionRequest holds the inputs of a projection. Rates are percentages,
// so 5 means 5%.
type ProjectionRequest struct {
	StartAge        int     `json:"start_age" validate:"gte=0,lte=150"`
	StartBalance    float64 `json:"start_balance" validate:"gte=0"`
	Years           int     `json:"years" validate:"gte=0,lte=200"`
	GrowthRate      float64 `json:"growth_rate" validate:"gt=-100"`
	WithholdingRate float64 `json:"withholding_rate" validate:"gte=0,lte=100"`
}

// YearRecord is one row of a projection
type YearRecord struct {
	Year         int     `json:"year"`
	Age          int     `json:"age"`
	StartBalance float64 `json:"start_balance"`
	RMD          float64 `json:"rmd"`
	TaxWithheld  float64 `json:"tax_withheld"`
	NetReceived  float64 `json:"net_received"`
	EndBalance   float64 `json:"end_balance"`
}

// Field names of a YearRecord in column order
const (
	FieldYear         = "Year"
	FieldAge          = "Age"
	FieldStartBalance = "Start Balance"
	FieldRMD          = "RMD"
	FieldTaxWithheld  = "Tax Withheld"
	FieldNetReceived  = "Net Received"
	FieldEndBalance   = "End Balance"
)

// Fields returns the record field names in column order.
func Fields() []string {
	return []string{
		FieldYear, FieldAge, FieldStartBalance, FieldRMD,
		FieldTaxWithheld, FieldNetReceived, FieldEndBalance,
	}
}

// IsMoneyField reports whether the named field holds a currency amount
func IsMoneyField(name string) bool {
	switch name {
	case FieldStartBalance, FieldRMD, FieldTaxWithheld, FieldNetReceived, FieldEndBalance:
		return true
	default:
		return false
	}
}

// Values returns the record's values in column order. Year and Age are ints,
// the rest float64.
func (r YearRecord) Values() []any {
	return []any{
		r.Year, r.Age, r.StartBalance, r.RMD,
		r.TaxWithheld, r.NetReceived, r.EndBalance,
	}
}
