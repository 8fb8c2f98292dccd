package domain

// Company is read-only reference data owning bank accounts, expenses and forecasts.
type Company struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
}
