package metadata

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/beevik/etree"
	dsig "github.com/russellhaering/goxmldsig"
)

// SignatureVerifier verifies XML signatures on SAML metadata.
//
// Verify returns the validated bytes (not just an error) following goxmldsig
// practice to prevent signature wrapping attacks; callers must use the
// returned bytes for further processing.
type SignatureVerifier interface {
	Verify(data []byte) ([]byte, error)
}

// XMLDsigVerifier verifies enveloped XML signatures against trusted
// certificates using goxmldsig.
type XMLDsigVerifier struct {
	certStore dsig.X509CertificateStore
}

// NewXMLDsigVerifier creates a verifier with the given trust anchor
// certificates. Multiple certificates support rotation scenarios.
func NewXMLDsigVerifier(certs []*x509.Certificate) *XMLDsigVerifier {
	return &XMLDsigVerifier{
		certStore: &dsig.MemoryX509CertificateStore{
			Roots: certs,
		},
	}
}

// Verify validates the XML signature on metadata and returns the validated
// XML bytes. Returns an error if the signature is invalid or missing.
func (v *XMLDsigVerifier) Verify(data []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse metadata XML: %w", err)
	}

	ctx := dsig.NewDefaultValidationContext(v.certStore)

	validated, err := ctx.Validate(doc.Root())
	if err != nil {
		return nil, fmt.Errorf("verify metadata signature: %w", err)
	}

	// Re-serialize the validated element to prevent signature wrapping attacks
	validatedDoc := etree.NewDocument()
	validatedDoc.SetRoot(validated)
	result, err := validatedDoc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize validated metadata: %w", err)
	}
	return result, nil
}

// LoadSigningCertificates loads X.509 certificates from a PEM file.
// Supports multiple certificates in a single file for rotation scenarios.
func LoadSigningCertificates(path string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read certificate file: %w", err)
	}

	var certs []*x509.Certificate
	for {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type == "CERTIFICATE" {
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("parse certificate: %w", err)
			}
			certs = append(certs, cert)
		}
		data = rest
	}

	if len(certs) == 0 {
		return nil, fmt.Errorf("no certificates found in %s", path)
	}

	return certs, nil
}
