package api

import (
	l1_service "cseinvest/internal/service/l1"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type monthlyInvestmentAmountResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

func errInvalidBudget(amount decimal.Decimal) error {
	return fmt.Errorf("%w: %s", l1_service.ErrInvalidInvestmentAmount, amount.String())
}

func (m ApiHandler) getMonthlyInvestmentAmount(c *gin.Context) {
	amount, err := m.SettingsService.GetMonthlyInvestmentAmount(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, monthlyInvestmentAmountResponse{Amount: amount})
}

type updateMonthlyInvestmentAmountRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

func (m ApiHandler) updateMonthlyInvestmentAmount(c *gin.Context) {
	var requestBody updateMonthlyInvestmentAmountRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	if requestBody.Amount == nil {
		returnErrorJsonCode(fmt.Errorf("amount is required"), c, http.StatusBadRequest)
		return
	}

	amount, err := m.SettingsService.UpdateMonthlyInvestmentAmount(c.Request.Context(), *requestBody.Amount)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, monthlyInvestmentAmountResponse{Amount: amount})
}
