package taxes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "bizform/pkg/domain"
	dErrors "bizform/pkg/domain-errors"
)

func TestCalculateNPD(t *testing.T) {
	t.Run("individuals pay 4 percent", func(t *testing.T) {
		result, err := CalculateNPD(100_000, id.ClientIndividuals)
		require.NoError(t, err)

		assert.Equal(t, 1_200_000.0, result.AnnualIncome)
		assert.Equal(t, 0.04, result.Rate)
		assert.Equal(t, 4_000.0, result.MonthlyTax)
		assert.Equal(t, 48_000.0, result.AnnualTax)
		assert.Equal(t, 96_000.0, result.NetMonthlyIncome)
		assert.Empty(t, result.Warning)
	})

	t.Run("companies pay 6 percent", func(t *testing.T) {
		result, err := CalculateNPD(100_000, id.ClientCompanies)
		require.NoError(t, err)

		assert.Equal(t, 0.06, result.Rate)
		assert.Equal(t, 6_000.0, result.MonthlyTax)
		assert.Equal(t, 94_000.0, result.NetMonthlyIncome)
	})

	t.Run("annual income over the cap yields zero tax and a warning", func(t *testing.T) {
		result, err := CalculateNPD(250_000, id.ClientIndividuals)
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.Rate)
		assert.Equal(t, 0.0, result.MonthlyTax)
		assert.Equal(t, 0.0, result.AnnualTax)
		assert.Equal(t, 250_000.0, result.NetMonthlyIncome)
		assert.NotEmpty(t, result.Warning)
	})

	t.Run("income exactly at the cap still qualifies", func(t *testing.T) {
		result, err := CalculateNPD(200_000, id.ClientIndividuals)
		require.NoError(t, err)

		assert.Equal(t, 2_400_000.0, result.AnnualIncome)
		assert.Equal(t, 0.04, result.Rate)
		assert.Empty(t, result.Warning)
	})

	t.Run("zero income is valid", func(t *testing.T) {
		result, err := CalculateNPD(0, id.ClientCompanies)
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.MonthlyTax)
		assert.Equal(t, 0.06, result.Rate)
	})

	t.Run("negative income is rejected", func(t *testing.T) {
		_, err := CalculateNPD(-1, id.ClientIndividuals)
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	t.Run("unknown client type is rejected", func(t *testing.T) {
		_, err := CalculateNPD(1000, id.ClientType("martians"))
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		first, err := CalculateNPD(123_456, id.ClientCompanies)
		require.NoError(t, err)
		second, err := CalculateNPD(123_456, id.ClientCompanies)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("limit figures are reported for display", func(t *testing.T) {
		result, err := CalculateNPD(50_000, id.ClientIndividuals)
		require.NoError(t, err)

		assert.Equal(t, 2_400_000.0, result.Limit.Annual)
		assert.Equal(t, 200_000.0, result.Limit.Monthly)
	})
}
