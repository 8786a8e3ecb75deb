package person

import (
	"strings"

	"hrsuite/internal/common"
	"hrsuite/internal/taxid"
)

// Person is the base identity shared by users and candidates. TaxID is the
// normalized CPF/CNPJ and acts as the primary key everywhere.
type Person struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Validate normalizes the tax id in place and checks the mandatory fields.
func (p *Person) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(p.Email) == "" {
		fields["email"] = "email is required"
	}
	normalized := taxid.Normalize(p.TaxID)
	if normalized == "" {
		fields["tax_id"] = "tax_id is required"
	} else if !taxid.Validate(normalized) {
		fields["tax_id"] = "tax_id is not a valid CPF or CNPJ"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid person", fields)
	}
	p.TaxID = normalized
	return nil
}
