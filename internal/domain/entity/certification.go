// Package entity contains the core business objects of the project.
package entity

// Certification represents a diver certification level. The zero value is
// not valid; values outside the closed set are rejected at the boundary.
type Certification string

const (
	CertificationUncertified Certification = "UNCERTIFIED"
	CertificationOpenWater   Certification = "OPEN_WATER"
	CertificationAdvanced    Certification = "ADVANCED"
	CertificationRescue      Certification = "RESCUE"
	CertificationMasterScuba Certification = "MASTER_SCUBA"
	CertificationDivemaster  Certification = "DIVEMASTER"
	CertificationInstructor  Certification = "INSTRUCTOR"
	CertificationMSDTrainer  Certification = "MSD_TRAINER"
)

// certificationDisplayNames is the bidirectional mapping table between
// certification tokens and their human-readable display names.
var certificationDisplayNames = map[Certification]string{
	CertificationUncertified: "Uncertified",
	CertificationOpenWater:   "Open Water Diver",
	CertificationAdvanced:    "Advanced Open Water Diver",
	CertificationRescue:      "Rescue Diver",
	CertificationMasterScuba: "Master Scuba Diver",
	CertificationDivemaster:  "Divemaster",
	CertificationInstructor:  "Open Water Scuba Instructor",
	CertificationMSDTrainer:  "Master Scuba Diver Trainer",
}

var certificationsByDisplayName = func() map[string]Certification {
	m := make(map[string]Certification, len(certificationDisplayNames))
	for cert, name := range certificationDisplayNames {
		m[name] = cert
	}

	return m
}()

// String returns the certification token, e.g. "OPEN_WATER".
func (c Certification) String() string {
	return string(c)
}

// IsValid checks if the Certification is a member of the closed set.
func (c Certification) IsValid() bool {
	_, ok := certificationDisplayNames[c]

	return ok
}

// DisplayName returns the human-readable version of the certification,
// e.g. "Advanced Open Water Diver".
func (c Certification) DisplayName() string {
	return certificationDisplayNames[c]
}

// CertificationFromString converts a raw token to a Certification,
// reporting whether the token names a known certification.
func CertificationFromString(s string) (Certification, bool) {
	cert := Certification(s)

	return cert, cert.IsValid()
}

// CertificationFromDisplayName resolves a display name back to its
// certification token.
func CertificationFromDisplayName(name string) (Certification, bool) {
	cert, ok := certificationsByDisplayName[name]

	return cert, ok
}
