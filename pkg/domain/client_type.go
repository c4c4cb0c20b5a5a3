package domain

import dErrors "bizform/pkg/domain-errors"

// ClientType identifies who a business sells to. The professional income tax
// rate depends on it: 4% for individuals, 6% for companies.
type ClientType string

const (
	ClientIndividuals ClientType = "individuals"
	ClientCompanies   ClientType = "companies"
)

var validClientTypes = map[ClientType]bool{
	ClientIndividuals: true,
	ClientCompanies:   true,
}

// ParseClientType constructs a ClientType from external input.
func ParseClientType(s string) (ClientType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "client_type cannot be empty")
	}
	c := ClientType(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid client_type")
	}
	return c, nil
}

// IsValid checks if the client type is one of the supported enum values.
func (c ClientType) IsValid() bool {
	return validClientTypes[c]
}

// String returns the string representation of the client type.
func (c ClientType) String() string {
	return string(c)
}
