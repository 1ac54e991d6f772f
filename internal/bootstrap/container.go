// Package bootstrap wires the billing use cases from configuration. The HTTP
// server and the operator CLI share it.
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"medipay/internal/adapter/persistence/gormrepo"
	"medipay/internal/adapter/persistence/repository"
	"medipay/internal/config"
	"medipay/internal/infrastructure/cache"
	"medipay/internal/infrastructure/database"
	"medipay/internal/infrastructure/messaging"
	"medipay/internal/infrastructure/payments"
	"medipay/internal/usecase"
	"medipay/internal/usecase/interfaces"
)

type stores struct {
	appointments interfaces.IAppointmentRepository
	payments     interfaces.IPaymentRepository
	commission   interfaces.ICommissionSettingRepository
	directory    interfaces.IDirectory
}

// Container holds the use cases and the resources that must be closed.
type Container struct {
	Config       config.Config
	Appointments *usecase.AppointmentUseCase
	Commission   *usecase.CommissionSettingsUseCase
	Payments     *usecase.PaymentUseCase
	Analytics    *usecase.AnalyticsUseCase

	closers []func() error
}

func Build(ctx context.Context, cfg config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	s, err := c.openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}
	directory := cache.NewCachedDirectory(s.directory, cfg.DirectoryCacheSize, cfg.DirectoryCacheTTL)

	gateway, err := NewGateway(cfg)
	if err != nil {
		// Orders and verification fail with ErrPaymentGatewayNotSet.
		log.Printf("[bootstrap] payment gateway not configured provider=%s err=%v", cfg.GatewayProvider, err)
	}

	var events interfaces.IEventPublisher
	if cfg.RabbitURL != "" {
		pub, err := messaging.NewRabbitMQPublisher(cfg.RabbitURL, cfg.BillingExchange)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("rabbitmq: %w", err)
		}
		c.closers = append(c.closers, pub.Close)
		events = pub
	}

	var lock interfaces.IVerificationLock
	if cfg.RedisAddr != "" {
		client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		c.closers = append(c.closers, client.Close)
		lock = cache.NewRedisVerificationLock(client)
	} else {
		lock = cache.NewLocalVerificationLock(cfg.VerificationLockCap, cfg.VerificationLockTTL)
	}

	c.Appointments = usecase.NewAppointmentUseCase(s.appointments, directory, events)
	c.Commission = usecase.NewCommissionSettingsUseCase(s.commission)
	c.Payments = usecase.NewPaymentUseCase(s.payments, s.appointments, directory, c.Commission, gateway, usecase.PaymentOptions{
		GatewayTimeout:      cfg.GatewayTimeout,
		VerificationLockTTL: cfg.VerificationLockTTL,
		Events:              events,
		Lock:                lock,
	})
	c.Analytics = usecase.NewAnalyticsUseCase(s.payments, s.appointments, directory, cfg.Location())
	return c, nil
}

func (c *Container) openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres, config.StoreSQLite:
		db, err := database.OpenGorm(cfg)
		if err != nil {
			return stores{}, err
		}
		if err := gormrepo.Migrate(db); err != nil {
			return stores{}, fmt.Errorf("migrate: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			c.closers = append(c.closers, sqlDB.Close)
		}
		return stores{
			appointments: gormrepo.NewAppointmentRepo(db),
			payments:     gormrepo.NewPaymentRepo(db),
			commission:   gormrepo.NewCommissionSettingRepo(db),
			directory:    gormrepo.NewDirectoryRepo(db),
		}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return stores{}, fmt.Errorf("dynamodb: %w", err)
		}
		appointments := repository.NewAppointmentDynamoRepository(ddb, cfg.AppointmentsTable)
		return stores{
			appointments: appointments,
			payments:     repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable, appointments),
			commission:   repository.NewCommissionSettingDynamoRepository(ddb, cfg.CommissionTable),
			directory: repository.NewDirectoryDynamoRepository(ddb, repository.DirectoryTables{
				Hospitals: cfg.HospitalsTable,
				Users:     cfg.UsersTable,
				Contacts:  cfg.ContactsTable,
			}),
		}, nil
	}
}

// NewGateway returns the provider selected by PAYMENT_GATEWAY.
func NewGateway(cfg config.Config) (interfaces.IPaymentGateway, error) {
	switch cfg.GatewayProvider {
	case config.GatewayMercadoPago:
		g, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.GatewayMock:
		return payments.NewMockGateway(cfg.MockGatewaySecret), nil
	default:
		g, err := payments.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// Close releases brokers, caches and database handles in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			log.Printf("[bootstrap] close failed err=%v", err)
		}
	}
	c.closers = nil
}
