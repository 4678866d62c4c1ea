package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	diverID := uuid.New()

	png, err := svc.GenerateProfileQR(diverID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestQRCodeService_ParseProfileQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	diverID := uuid.New()

	payload, err := json.Marshal(QRCodeData{DiverID: diverID.String(), Type: "profile"})
	require.NoError(t, err)

	parsed, err := svc.ParseProfileQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, diverID, parsed)
}

func TestQRCodeService_ParseProfileQR_WrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{DiverID: uuid.New().String(), Type: "coupon"})
	require.NoError(t, err)

	_, err = svc.ParseProfileQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_UnknownCorrectionLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(128, "Z")

	png, err := svc.GenerateProfileQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
