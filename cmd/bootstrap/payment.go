package bootstrap

import (
	"log/slog"

	"bay-booking/internal/handler/api"
	"bay-booking/internal/infra/payment"
	"bay-booking/internal/pkg/config"
	"bay-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewWebhookVerifier,
			fx.As(new(api.PaymentEventParser)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *payment.StripeGateway {
	if cfg.Stripe.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is not set, paid checkouts will fail")
	}
	return payment.NewStripeGateway(cfg.Stripe, cfg.Booking)
}

func NewWebhookVerifier(cfg config.Config, logger *slog.Logger) *payment.WebhookVerifier {
	if cfg.Stripe.WebhookSecret == "" {
		logger.Warn("STRIPE_WEBHOOK_SECRET is not set, webhook deliveries will be rejected")
	}
	return payment.NewWebhookVerifier(cfg.Stripe.WebhookSecret)
}
