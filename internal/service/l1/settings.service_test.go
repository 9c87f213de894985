package l1_service

import (
	"context"
	"cseinvest/internal/db/models/postgres/public/model"
	mock_repository "cseinvest/internal/repository/mocks"
	"cseinvest/internal/util"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetMonthlyInvestmentAmount(t *testing.T) {
	defaultAmount := decimal.NewFromInt(50000)

	t.Run("persisted value wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		appSettingRepository := mock_repository.NewMockAppSettingRepository(ctrl)
		handler := NewSettingsService(appSettingRepository, defaultAmount)

		appSettingRepository.EXPECT().
			Get(MonthlyInvestmentAmountKey).
			Return(&model.AppSetting{Key: MonthlyInvestmentAmountKey, Value: "75000.50"}, nil)

		amount, err := handler.GetMonthlyInvestmentAmount(context.Background())
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("75000.50").Equal(amount))
	})

	t.Run("falls back to default when unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		appSettingRepository := mock_repository.NewMockAppSettingRepository(ctrl)
		handler := NewSettingsService(appSettingRepository, defaultAmount)

		appSettingRepository.EXPECT().Get(MonthlyInvestmentAmountKey).Return(nil, nil)

		amount, err := handler.GetMonthlyInvestmentAmount(context.Background())
		require.NoError(t, err)
		require.True(t, defaultAmount.Equal(amount))
	})

	t.Run("falls back to default when unreadable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		appSettingRepository := mock_repository.NewMockAppSettingRepository(ctrl)
		handler := NewSettingsService(appSettingRepository, defaultAmount)

		appSettingRepository.EXPECT().
			Get(MonthlyInvestmentAmountKey).
			Return(&model.AppSetting{Key: MonthlyInvestmentAmountKey, Value: "lots"}, nil)

		amount, err := handler.GetMonthlyInvestmentAmount(context.Background())
		require.NoError(t, err)
		require.True(t, defaultAmount.Equal(amount))
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		appSettingRepository := mock_repository.NewMockAppSettingRepository(ctrl)
		handler := NewSettingsService(appSettingRepository, defaultAmount)

		appSettingRepository.EXPECT().Get(MonthlyInvestmentAmountKey).Return(nil, errors.New("connection refused"))

		_, err := handler.GetMonthlyInvestmentAmount(context.Background())
		require.Error(t, err)
	})
}

func TestUpdateMonthlyInvestmentAmount(t *testing.T) {
	t.Run("stores a positive amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		appSettingRepository := mock_repository.NewMockAppSettingRepository(ctrl)
		handler := NewSettingsService(appSettingRepository, decimal.NewFromInt(50000))

		appSettingRepository.EXPECT().
			Upsert(nil, MonthlyInvestmentAmountKey, "60000", util.StringPointer("Monthly investment budget in LKR")).
			Return(&model.AppSetting{Key: MonthlyInvestmentAmountKey, Value: "60000"}, nil)

		amount, err := handler.UpdateMonthlyInvestmentAmount(context.Background(), decimal.NewFromInt(60000))
		require.NoError(t, err)
		require.True(t, decimal.NewFromInt(60000).Equal(amount))
	})

	for _, amount := range []string{"0", "-1", "-50000"} {
		t.Run("rejects "+amount, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			appSettingRepository := mock_repository.NewMockAppSettingRepository(ctrl)
			handler := NewSettingsService(appSettingRepository, decimal.NewFromInt(50000))

			_, err := handler.UpdateMonthlyInvestmentAmount(context.Background(), decimal.RequireFromString(amount))
			require.ErrorIs(t, err, ErrInvalidInvestmentAmount)
		})
	}
}
