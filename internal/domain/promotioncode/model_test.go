package promotioncode

import (
	"testing"
	"time"

	"github.com/flexprice/rates/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func juneCode() *PromotionCode {
	return &PromotionCode{
		Code:         "SUMMER",
		DateFrom:     date("2024-06-01"),
		DateTo:       date("2024-06-30"),
		DiscountType: types.DiscountTypePercentage,
		Value:        decimal.NewFromInt(10),
	}
}

func TestIsValidAt(t *testing.T) {
	code := juneCode()

	assert.True(t, code.IsValidAt(date("2024-06-15"), nil))
	assert.True(t, code.IsValidAt(date("2024-06-01"), nil))
	assert.True(t, code.IsValidAt(date("2024-06-30").Add(23*time.Hour), nil))
	assert.False(t, code.IsValidAt(date("2024-07-01"), nil))
	assert.False(t, code.IsValidAt(date("2024-05-31"), nil))

	var missing *PromotionCode
	assert.False(t, missing.IsValidAt(date("2024-06-15"), nil))
}

func TestIsValidAt_SourceWindow(t *testing.T) {
	code := juneCode()
	inside := &types.DateRange{From: date("2024-08-01"), To: date("2024-08-10")}

	assert.True(t, code.IsValidAt(date("2024-06-15"), inside), "codes without a source window accept any booking")

	code.SourceDateFrom = lo.ToPtr(date("2024-08-01"))
	code.SourceDateTo = lo.ToPtr(date("2024-08-31"))

	assert.True(t, code.IsValidAt(date("2024-06-15"), inside))
	assert.True(t, code.IsValidAt(date("2024-06-15"), nil))
	assert.False(t, code.IsValidAt(date("2024-06-15"), &types.DateRange{From: date("2024-08-25"), To: date("2024-09-02")}))
	assert.False(t, code.IsValidAt(date("2024-07-15"), inside))
}

func TestApply(t *testing.T) {
	code := juneCode()
	assert.Equal(t, "90", code.Apply(decimal.NewFromInt(100)).String())

	code.DiscountType = types.DiscountTypeAmount
	code.Value = decimal.NewFromInt(30)
	assert.Equal(t, "70", code.Apply(decimal.NewFromInt(100)).String())
	assert.True(t, code.Apply(decimal.NewFromInt(20)).IsZero())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, juneCode().Validate())

	reversed := juneCode()
	reversed.DateTo = date("2024-05-01")
	assert.Error(t, reversed.Validate())

	halfSource := juneCode()
	halfSource.SourceDateFrom = lo.ToPtr(date("2024-08-01"))
	assert.Error(t, halfSource.Validate())

	tooMuch := juneCode()
	tooMuch.Value = decimal.NewFromInt(150)
	assert.Error(t, tooMuch.Validate())

	blank := juneCode()
	blank.Code = "  "
	assert.Error(t, blank.Validate())
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SUMMER24", NormalizeCode("  summer24 "))
}
