package pricing

import "math"

// Investment model constants for the investor ROI report: a 10% annual
// interest rate on the loan and a 30% operating-cost ratio on revenue.
const (
	annualInterestRate = 0.10
	operatingCostRatio = 0.30
)

// ROIReport breaks a monthly revenue figure down into costs and profit
// for a prospective unit investor.  Won amounts are truncated to whole
// units; the ROI percentage is rounded to one decimal place.
type ROIReport struct {
	Revenue       int     `json:"revenue"`
	OperatingCost int     `json:"operating_cost"`
	Interest      int     `json:"interest"`
	NetProfit     int     `json:"net_profit"`
	ROIPercent    float64 `json:"roi_percent"`
}

// ROI computes the investor return for a loan of loanAmount won
// generating monthlyRevenue won.  A non-positive loan yields a zero
// ROI percentage rather than a division error.
func ROI(loanAmount, monthlyRevenue int) ROIReport {
	monthlyInterest := float64(loanAmount) * annualInterestRate / 12
	operatingCost := float64(monthlyRevenue) * operatingCostRatio
	netProfit := float64(monthlyRevenue) - operatingCost - monthlyInterest

	roiPercent := 0.0
	if loanAmount > 0 {
		annualProfit := netProfit * 12
		roiPercent = math.Round(annualProfit/float64(loanAmount)*1000) / 10
	}
	return ROIReport{
		Revenue:       monthlyRevenue,
		OperatingCost: int(operatingCost),
		Interest:      int(monthlyInterest),
		NetProfit:     int(netProfit),
		ROIPercent:    roiPercent,
	}
}
