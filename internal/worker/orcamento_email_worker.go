package worker

// orcamento_email_worker.go
// Processes quotation email jobs from QueueOrcamentoEmail.
// Renders the orçamento PDF and sends it to the customer via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"

	"pecaspos/internal/infra"
	"pecaspos/internal/repository"

	"github.com/rs/zerolog/log"
)

// OrcamentoEmailPayload is the job envelope sent to QueueOrcamentoEmail.
type OrcamentoEmailPayload struct {
	OrcamentoID uint   `json:"orcamento_id"`
	Email       string `json:"email"`
}

// OrcamentoEmailWorker renders the quotation PDF and mails it.
type OrcamentoEmailWorker struct {
	repo           repository.OrcamentoRepository
	mailer         *infra.Mailer
	pdfStoragePath string
	nomeLoja       string
}

func NewOrcamentoEmailWorker(repo repository.OrcamentoRepository, mailer *infra.Mailer, pdfStoragePath, nomeLoja string) *OrcamentoEmailWorker {
	return &OrcamentoEmailWorker{
		repo:           repo,
		mailer:         mailer,
		pdfStoragePath: pdfStoragePath,
		nomeLoja:       nomeLoja,
	}
}

// Process handles a single quotation email job:
//  1. Parse OrcamentoEmailPayload from the job envelope
//  2. Fetch the Orcamento (with items) from DB
//  3. Generate the quotation PDF
//  4. Send the email with the PDF attached
//
// Any failure returns an error so the pool moves the job to the DLQ.
func (w *OrcamentoEmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload OrcamentoEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("orcamento_email_worker: invalid payload: %w", err)
	}
	if payload.Email == "" {
		log.Warn().Uint("orcamento_id", payload.OrcamentoID).Msg("orcamento_email_worker: empty email — skipping")
		return nil
	}

	orc, err := w.repo.FindByID(ctx, payload.OrcamentoID)
	if err != nil {
		return fmt.Errorf("orcamento_email_worker: orçamento #%d not found: %w", payload.OrcamentoID, err)
	}

	pdfPath, err := infra.GerarOrcamentoPDF(orc, w.nomeLoja, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("orcamento_email_worker: PDF generation: %w", err)
	}

	subject := fmt.Sprintf("%s — Orçamento N° %d", w.nomeLoja, orc.ID)
	body := fmt.Sprintf("Olá,\n\nSegue em anexo o orçamento N° %d.\nTotal: R$ %s\n\n%s",
		orc.ID, orc.Total.StringFixed(2), w.nomeLoja)

	if err := w.mailer.SendOrcamento(payload.Email, subject, body, pdfPath); err != nil {
		return fmt.Errorf("orcamento_email_worker: send email: %w", err)
	}

	log.Info().Str("to", payload.Email).Uint("orcamento_id", orc.ID).Msg("orcamento_email_worker: orçamento sent successfully")
	return nil
}
