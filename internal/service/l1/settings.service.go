package l1_service

import (
	"context"
	"cseinvest/internal/logger"
	"cseinvest/internal/repository"
	"cseinvest/internal/util"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const MonthlyInvestmentAmountKey = "MonthlyInvestmentAmount"

var ErrInvalidInvestmentAmount = errors.New("monthly investment amount must be greater than zero")

type SettingsService interface {
	GetMonthlyInvestmentAmount(ctx context.Context) (decimal.Decimal, error)
	UpdateMonthlyInvestmentAmount(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
}

type settingsServiceHandler struct {
	AppSettingRepository repository.AppSettingRepository
	DefaultAmount        decimal.Decimal
}

func NewSettingsService(appSettingRepository repository.AppSettingRepository, defaultAmount decimal.Decimal) SettingsService {
	return settingsServiceHandler{
		AppSettingRepository: appSettingRepository,
		DefaultAmount:        defaultAmount,
	}
}

// GetMonthlyInvestmentAmount returns the persisted budget, or the configured
// default when none was saved or the saved value is unreadable.
func (h settingsServiceHandler) GetMonthlyInvestmentAmount(ctx context.Context) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	setting, err := h.AppSettingRepository.Get(MonthlyInvestmentAmountKey)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get monthly investment amount: %w", err)
	}
	if setting == nil {
		return h.DefaultAmount, nil
	}

	amount, err := decimal.NewFromString(setting.Value)
	if err != nil {
		log.Warnf("stored monthly investment amount %q is not a number, using default %s", setting.Value, h.DefaultAmount.String())
		return h.DefaultAmount, nil
	}

	return amount, nil
}

func (h settingsServiceHandler) UpdateMonthlyInvestmentAmount(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if !amount.IsPositive() {
		log.Warnf("rejected monthly investment amount %s", amount.String())
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidInvestmentAmount, amount.String())
	}

	setting, err := h.AppSettingRepository.Upsert(
		nil,
		MonthlyInvestmentAmountKey,
		amount.String(),
		util.StringPointer("Monthly investment budget in LKR"),
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to update monthly investment amount: %w", err)
	}

	log.Infof("monthly investment amount updated to %s", setting.Value)

	return amount, nil
}
