package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/clinic-space-site/internal/model"
	"github.com/iliyamo/clinic-space-site/internal/queue"
)

// LeadStore inserts leads.
type LeadStore interface {
	Create(ctx context.Context, l *model.Lead) error
}

// EventPublisher is satisfied by *queue.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.SiteEvent) error
}

// LeadInput is the raw form submission.
type LeadInput struct {
	Name      string `json:"name" form:"name"`
	Phone     string `json:"phone" form:"phone"`
	Specialty string `json:"specialty" form:"specialty"`
	Source    string `json:"source" form:"source"`
}

// LeadResult is returned to the form.  Errors maps field name to message
// and is only set on validation failure.
type LeadResult struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	Errors      map[string]string `json:"errors,omitempty"`
	RedirectURL string            `json:"redirect_url,omitempty"`
}

const (
	minNameLen   = 2
	maxNameLen   = 120
	minPhoneDigs = 10
	maxPhoneDigs = 13

	msgLeadOK       = "Recebemos seu contato! Em breve falaremos com você."
	msgLeadInvalid  = "Verifique os campos destacados."
	msgLeadFailed   = "Não foi possível enviar agora. Tente novamente em instantes."
	errNameShort    = "Informe seu nome (mínimo de 2 caracteres)."
	errNameLong     = "Nome muito longo."
	errPhoneInvalid = "Informe um telefone válido com DDD."
	errSpecialty    = "Selecione sua especialidade."
)

// ValidateLead checks the submission and returns the normalized lead and a
// per-field error map (empty when valid).  Phone formatting characters are
// stripped; only the digits are kept.
func ValidateLead(in LeadInput) (model.Lead, map[string]string) {
	errs := map[string]string{}
	name := strings.Join(strings.Fields(in.Name), " ")
	switch n := utf8.RuneCountInString(name); {
	case n < minNameLen:
		errs["name"] = errNameShort
	case n > maxNameLen:
		errs["name"] = errNameLong
	}

	phone := digitsOnly(in.Phone)
	if len(phone) < minPhoneDigs || len(phone) > maxPhoneDigs {
		errs["phone"] = errPhoneInvalid
	}

	specialty := strings.TrimSpace(in.Specialty)
	if specialty == "" {
		errs["specialty"] = errSpecialty
	}

	return model.Lead{
		Name:      name,
		Phone:     phone,
		Specialty: specialty,
		Source:    strings.TrimSpace(in.Source),
	}, errs
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) && r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LeadService validates and stores leads.  Submissions are not
// deduplicated: every valid call inserts a row.
type LeadService struct {
	Store          LeadStore
	Events         EventPublisher // optional
	WhatsAppNumber string         // optional; enables RedirectURL
	Log            *zap.Logger
}

func NewLeadService(store LeadStore, events EventPublisher, whatsapp string, log *zap.Logger) *LeadService {
	if store == nil {
		panic("nil store passed to NewLeadService")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LeadService{Store: store, Events: events, WhatsAppNumber: whatsapp, Log: log}
}

// Submit validates in and inserts it.  Validation failures never reach the
// store.  Store failures are logged and reported with a generic message.
func (s *LeadService) Submit(ctx context.Context, in LeadInput) LeadResult {
	lead, errs := ValidateLead(in)
	if len(errs) > 0 {
		return LeadResult{Success: false, Message: msgLeadInvalid, Errors: errs}
	}

	if err := s.Store.Create(ctx, &lead); err != nil {
		s.Log.Error("insert lead failed", zap.String("specialty", lead.Specialty), zap.Error(err))
		return LeadResult{Success: false, Message: msgLeadFailed}
	}
	s.Log.Info("lead stored", zap.String("lead_id", lead.ID), zap.String("specialty", lead.Specialty))

	if s.Events != nil {
		ev := queue.SiteEvent{
			ID:         uuid.NewString(),
			Type:       queue.EventLeadCreated,
			Name:       lead.Specialty,
			Data:       map[string]any{"lead_id": lead.ID, "source": lead.Source},
			OccurredAt: time.Now().UTC(),
		}
		// the lead is already stored; a lost event only costs a log line
		_ = s.Events.Publish(ctx, ev)
	}

	return LeadResult{Success: true, Message: msgLeadOK, RedirectURL: s.messagingLink(lead)}
}

// messagingLink builds the wa.me link the form redirects to after success.
func (s *LeadService) messagingLink(l model.Lead) string {
	num := digitsOnly(s.WhatsAppNumber)
	if num == "" {
		return ""
	}
	text := fmt.Sprintf("Olá! Sou %s (%s) e gostaria de saber mais sobre as salas.", l.Name, l.Specialty)
	return "https://wa.me/" + num + "?text=" + url.QueryEscape(text)
}
