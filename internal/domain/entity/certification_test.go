package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCertificationDisplayNameRoundTrip(t *testing.T) {
	all := []Certification{
		CertificationUncertified,
		CertificationOpenWater,
		CertificationAdvanced,
		CertificationRescue,
		CertificationMasterScuba,
		CertificationDivemaster,
		CertificationInstructor,
		CertificationMSDTrainer,
	}

	for _, cert := range all {
		name := cert.DisplayName()
		assert.NotEmpty(t, name)

		back, ok := CertificationFromDisplayName(name)
		assert.True(t, ok)
		assert.Equal(t, cert, back)
	}
}

func TestCertificationFromString(t *testing.T) {
	cert, ok := CertificationFromString("OPEN_WATER")
	assert.True(t, ok)
	assert.Equal(t, CertificationOpenWater, cert)
	assert.Equal(t, "Open Water Diver", cert.DisplayName())

	_, ok = CertificationFromString("PADI_LEGEND")
	assert.False(t, ok)

	// Tokens are case-sensitive members of the closed set.
	_, ok = CertificationFromString("open_water")
	assert.False(t, ok)
}

func TestRoleFromString(t *testing.T) {
	role, ok := RoleFromString("ADMIN")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = RoleFromString("SUPERUSER")
	assert.False(t, ok)
}
