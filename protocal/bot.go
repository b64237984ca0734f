package protocal

import (
	"context"
	"time"

	httpAdapter "currency-assistant/internal/adapters/input/http"
	"currency-assistant/internal/adapters/output/currencyapi"
	lineAdapter "currency-assistant/internal/adapters/output/line"
	"currency-assistant/internal/adapters/output/memory"
	"currency-assistant/internal/application"

	"github.com/sirupsen/logrus"
)

const sessionPurgeInterval = time.Minute

// ServeBot func - LINE bot, talks to the rate table only through the two services
func ServeBot() error {
	cfg := initConfig()
	app := newApp("currency-bot")

	sessions := memory.NewMemorySessionStore(time.Duration(cfg.Session.Timeout) * time.Minute)

	// Output adapters (currency services, LINE client)
	managerClient := currencyapi.NewManagerClientAdapter(cfg.Manager)
	dataClient := currencyapi.NewDataClientAdapter(cfg.Data)
	lineClient, err := lineAdapter.NewLineClientAdapter(cfg.Line.ChannelToken)
	if err != nil {
		logrus.Fatalf("Failed to create LINE client: %v", err)
	}

	// Application services
	engine := application.NewConversationEngine(managerClient, dataClient, sessions, application.EngineConfig{
		BaseCurrency: cfg.Bot.BaseCurrency,
		Admins:       cfg.Bot.Admins,
	})
	lineWebhookSrv := application.NewLineWebhookService(lineClient, engine)

	// Input adapter (LINE webhook handler)
	lineWebhookHdl := httpAdapter.NewLineWebhookHandler(lineWebhookSrv, cfg.Line.ChannelSecret)

	ctx, cancel := context.WithCancel(context.Background())
	if sessions.GetTimeout() > 0 {
		go purgeSessions(ctx, sessions, sessionPurgeInterval)
	}

	webhook := app.Group("/webhook")
	{
		webhook.Post("/line", lineWebhookHdl.HandleWebhook)
	}

	return listen(app, cfg.App.Port, cancel)
}

// purgeSessions drops expired sessions of users who never came back
func purgeSessions(ctx context.Context, sessions *memory.MemorySessionStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.PurgeExpired(); n > 0 {
				logrus.Debugf("Purged %d expired sessions", n)
			}
		}
	}
}
