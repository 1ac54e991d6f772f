package handlers

//go:generate mockgen -destination=mocks/mock_usecases.go -package=mocks medipay/internal/usecase IAppointmentUseCase,IPaymentUseCase,ICommissionSettingsUseCase,IAnalyticsUseCase
