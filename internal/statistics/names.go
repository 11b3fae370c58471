package statistics

// Summary statistic names reported at the end of every run.
const (
	TotalOrders             = "Total Orders"
	StartEquity             = "Start Equity"
	EndEquity               = "End Equity"
	NetProfit               = "Net Profit"
	CompoundingAnnualReturn = "Compounding Annual Return"
	Drawdown                = "Drawdown"
	SharpeRatio             = "Sharpe Ratio"
	AnnualStandardDeviation = "Annual Standard Deviation"
	WinRate                 = "Win Rate"
	LossRate                = "Loss Rate"
	TotalFees               = "Total Fees"
	RealizedPnL             = "Realized PnL"
)
