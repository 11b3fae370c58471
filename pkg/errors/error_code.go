package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidOrder         ErrorCode = 105
	ErrCodeInsufficientData     ErrorCode = 106
	ErrCodeInvalidPeriod        ErrorCode = 108
	ErrCodeInvalidVersion       ErrorCode = 110
	ErrCodeInvalidDate          ErrorCode = 120
	ErrCodeInvalidResolution    ErrorCode = 121

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202
	ErrCodeHistoricalDataFailed  ErrorCode = 203
	ErrCodeSymbolNotSubscribed   ErrorCode = 205

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound    ErrorCode = 300
	ErrCodeIndicatorCalculation ErrorCode = 302

	// Algorithm errors (400-499)
	ErrCodeAlgorithmNotLoaded    ErrorCode = 400
	ErrCodeAlgorithmInitFailed   ErrorCode = 401
	ErrCodeAlgorithmRuntimeError ErrorCode = 402
	ErrCodeUnknownAlgorithm      ErrorCode = 403
	ErrCodeVersionMismatch       ErrorCode = 404

	// Trading errors (500-599)
	ErrCodeOrderFailed          ErrorCode = 500
	ErrCodePositionNotFound     ErrorCode = 501
	ErrCodeMarketDataMissing    ErrorCode = 502
	ErrCodeInsufficientBuyPower ErrorCode = 503
	ErrCodeOrderDuringWarmUp    ErrorCode = 504

	// Backtest errors (600-699)
	ErrCodeBacktestStateNil      ErrorCode = 600
	ErrCodeBacktestInitFailed    ErrorCode = 601
	ErrCodeBacktestConfigError   ErrorCode = 602
	ErrCodeBacktestDataPathError ErrorCode = 603
	ErrCodeBacktestNoAlgorithms  ErrorCode = 604
	ErrCodeBacktestNoDataPaths   ErrorCode = 606
	ErrCodeBacktestNoResultsDir  ErrorCode = 607
	ErrCodeBacktestNoDatasource  ErrorCode = 608

	// Statistics errors (700-799)
	ErrCodeStatisticsFailed      ErrorCode = 700
	ErrCodeStatisticsWriteFailed ErrorCode = 701

	// Callback errors (800-899)
	ErrCodeCallbackFailed ErrorCode = 800
)
