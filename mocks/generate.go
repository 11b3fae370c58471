package mocks

//go:generate mockgen -destination=./mock_datasource.go -package=mocks github.com/rxtech-lab/argo-algorithm/internal/backtest/engine/engine_v1/datasource DataSource
//go:generate mockgen -destination=./mock_statistics.go -package=mocks github.com/rxtech-lab/argo-algorithm/internal/statistics Service
//go:generate mockgen -destination=./mock_algorithm.go -package=mocks github.com/rxtech-lab/argo-algorithm/internal/algorithm Algorithm
//go:generate mockgen -destination=./mock_indicator.go -package=mocks github.com/rxtech-lab/argo-algorithm/internal/indicator Indicator
//go:generate mockgen -destination=./mock_api.go -package=mocks github.com/rxtech-lab/argo-algorithm/internal/algorithm Api,PortfolioView
