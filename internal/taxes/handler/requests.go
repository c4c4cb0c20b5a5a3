package handler

import (
	id "bizform/pkg/domain"
	dErrors "bizform/pkg/domain-errors"
)

// NPDRequest is the HTTP request body for POST /api/calculate/npd.
type NPDRequest struct {
	MonthlyIncome *float64 `json:"monthlyIncome"`
	ClientType    string   `json:"clientType"`

	// Parsed values (populated by Validate)
	parsedClientType id.ClientType
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *NPDRequest) Validate() error {
	if r.MonthlyIncome == nil {
		return dErrors.New(dErrors.CodeValidation, "monthlyIncome is required")
	}
	if *r.MonthlyIncome < 0 {
		return dErrors.New(dErrors.CodeValidation, "monthlyIncome must be non-negative")
	}

	// The original public calculator assumed private clients; keep that default.
	if r.ClientType == "" {
		r.parsedClientType = id.ClientIndividuals
		return nil
	}

	clientType, err := id.ParseClientType(r.ClientType)
	if err != nil {
		return err
	}
	r.parsedClientType = clientType
	return nil
}

// ParsedClientType returns the validated client type.
func (r *NPDRequest) ParsedClientType() id.ClientType {
	return r.parsedClientType
}

// USNRequest is the HTTP request body for POST /api/calculate/usn.
type USNRequest struct {
	YearlyIncome   *float64 `json:"yearlyIncome"`
	YearlyExpenses *float64 `json:"yearlyExpenses"`
}

// Validate validates the request.
func (r *USNRequest) Validate() error {
	if r.YearlyIncome == nil {
		return dErrors.New(dErrors.CodeValidation, "yearlyIncome is required")
	}
	if *r.YearlyIncome < 0 {
		return dErrors.New(dErrors.CodeValidation, "yearlyIncome must be non-negative")
	}
	if r.YearlyExpenses == nil {
		zero := 0.0
		r.YearlyExpenses = &zero
	}
	if *r.YearlyExpenses < 0 {
		return dErrors.New(dErrors.CodeValidation, "yearlyExpenses must be non-negative")
	}
	return nil
}

// SimulateRequest is the HTTP request body for POST /api/simulate.
type SimulateRequest struct {
	MonthlyRevenue  *float64 `json:"monthlyRevenue"`
	MonthlyExpenses *float64 `json:"monthlyExpenses"`
	Employees       *int     `json:"employees"`
	Partners        *int     `json:"partners"`
}

// Validate validates the request.
func (r *SimulateRequest) Validate() error {
	if r.MonthlyRevenue == nil {
		return dErrors.New(dErrors.CodeValidation, "monthlyRevenue is required")
	}
	if *r.MonthlyRevenue < 0 {
		return dErrors.New(dErrors.CodeValidation, "monthlyRevenue must be non-negative")
	}
	if r.MonthlyExpenses == nil {
		zero := 0.0
		r.MonthlyExpenses = &zero
	}
	if *r.MonthlyExpenses < 0 {
		return dErrors.New(dErrors.CodeValidation, "monthlyExpenses must be non-negative")
	}
	if r.Employees == nil {
		zero := 0
		r.Employees = &zero
	}
	if *r.Employees < 0 {
		return dErrors.New(dErrors.CodeValidation, "employees must be non-negative")
	}
	if r.Partners == nil {
		one := 1
		r.Partners = &one
	}
	if *r.Partners < 1 {
		return dErrors.New(dErrors.CodeValidation, "partners must be at least 1")
	}
	return nil
}
