package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orrynara/timebank/internal/pricing"
)

// InvestorROI handles GET /v1/investor/roi.  It takes loan_amount and
// monthly_revenue query parameters in won and returns the investment
// breakdown for a prospective unit owner.
func (h *Handler) InvestorROI(c echo.Context) error {
	loan, err := strconv.Atoi(c.QueryParam("loan_amount"))
	if err != nil || loan < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "loan_amount must be a non-negative integer"})
	}
	revenue, err := strconv.Atoi(c.QueryParam("monthly_revenue"))
	if err != nil || revenue < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "monthly_revenue must be a non-negative integer"})
	}
	return c.JSON(http.StatusOK, pricing.ROI(loan, revenue))
}
