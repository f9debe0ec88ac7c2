package service

import "context"

// GSTVerificationResult is what the external validator reports for a GST
// number. A failed or unreachable verifier yields Valid=false; it never
// surfaces as a fatal error.
type GSTVerificationResult struct {
	Valid       bool   `json:"valid"`
	Message     string `json:"message"`
	CompanyName string `json:"company_name,omitempty"`
	Status      string `json:"status,omitempty"`
}

// GSTVerifier checks a tax-registration number against an external
// authority. Implementations are best-effort and substitutable in tests.
type GSTVerifier interface {
	Verify(ctx context.Context, gstNumber string) (*GSTVerificationResult, error)
}
