package listeners

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fleet-system/internal/events"
	"fleet-system/internal/repositories"
	"fleet-system/pkg/config"
	"fleet-system/pkg/eventbus"

	"go.uber.org/zap"
)

// maintenanceWebhookPayload is the contract of the workshop e-mail trigger.
type maintenanceWebhookPayload struct {
	Tipo             string `json:"tipo"`
	NumeroAvisoOrden string `json:"numero_aviso_orden"`
	Equipo           string `json:"equipo"`
	Descripcion      string `json:"descripcion"`
	Prioridad        string `json:"prioridad"`
}

// MaintenanceWebhookListener posts newly created workshop tickets to the
// configured webhook. Delivery is best-effort: a failure is logged and the
// ticket simply keeps email_enviado = false.
type MaintenanceWebhookListener struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	cfg             config.WebhookConfig
	client          *http.Client
	logger          *zap.Logger
}

func NewMaintenanceWebhookListener(
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	cfg config.WebhookConfig,
	logger *zap.Logger,
) *MaintenanceWebhookListener {
	return &MaintenanceWebhookListener{
		maintenanceRepo: maintenanceRepo,
		cfg:             cfg,
		client:          &http.Client{Timeout: cfg.Timeout},
		logger:          logger,
	}
}

func (l *MaintenanceWebhookListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.MaintenanceCreatedEventName, l.Handle)
}

func (l *MaintenanceWebhookListener) Handle(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.MaintenanceCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	if l.cfg.MaintenanceURL == "" {
		l.logger.Debug("maintenance webhook not configured, skipping",
			zap.Uint64("maintenance_id", e.MaintenanceID))
		return nil
	}

	payload := maintenanceWebhookPayload{
		Tipo:             e.TipoMantenimiento,
		NumeroAvisoOrden: e.NumeroAvisoOrden,
		Equipo:           fmt.Sprintf("%s - %s", e.EquipoCodigo, e.EquipoDenominacion),
		Descripcion:      e.DescripcionAveria,
		Prioridad:        e.Prioridad,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.cfg.MaintenanceURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("maintenance webhook delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("maintenance webhook responded with status %d", resp.StatusCode)
	}

	if err := l.maintenanceRepo.MarkEmailSent(ctx, e.MaintenanceID); err != nil {
		return fmt.Errorf("webhook delivered but could not mark email sent: %w", err)
	}

	l.logger.Info("maintenance webhook delivered",
		zap.Uint64("maintenance_id", e.MaintenanceID),
		zap.String("numero_aviso_orden", e.NumeroAvisoOrden),
	)
	return nil
}
