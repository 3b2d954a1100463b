package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale_StatusVazioAssumeActive(t *testing.T) {
	s, err := NewSale("s1", "p1", "2024-01-01", "2024-12-31", "")
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, SaleActive, s.Status)
	assert.Equal(t, "2024-01-01", s.StartDate)
	assert.Equal(t, "2024-12-31", s.EndDate)

	saleDate, err := time.Parse(time.RFC3339, s.SaleDate)
	require.NoError(t, err, "SaleDate deve ser RFC 3339")
	assert.WithinDuration(t, time.Now(), saleDate, time.Minute)
}

func TestNewSale_CamposObrigatorios(t *testing.T) {
	cases := []struct {
		studentID, planID, start, end string
		mensagem                      string
	}{
		{"", "p1", "2024-01-01", "2024-12-31", "studentId obrigatório"},
		{"s1", "", "2024-01-01", "2024-12-31", "planId obrigatório"},
		{"s1", "p1", "", "2024-12-31", "startDate obrigatório"},
		{"s1", "p1", "2024-01-01", "", "endDate obrigatório"},
	}
	for _, tc := range cases {
		_, err := NewSale(tc.studentID, tc.planID, tc.start, tc.end, "")
		require.Error(t, err)
		assert.Equal(t, tc.mensagem, err.Error())
	}
}

func TestSale_SetStatus(t *testing.T) {
	s, err := NewSale("s1", "p1", "2024-01-01", "2024-12-31", "")
	require.NoError(t, err)

	require.Error(t, s.SetStatus("cancelada"))
	assert.Equal(t, SaleActive, s.Status)

	require.NoError(t, s.SetStatus(SaleExpired))
	assert.Equal(t, SaleExpired, s.Status)
}
