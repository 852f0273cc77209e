// Package service implements the keyed conversation stepper
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"sensutv/internal/core/slug"
	catalog "sensutv/internal/services/catalog/domain"
	"sensutv/internal/services/intake/domain"
)

// Service owns every active conversation, keyed by chat id.
// A single mutex guards the map; the bot feeds one update at a time so
// contention only comes from tests and future transports.
type Service struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session

	registry catalog.RegistryPort
	planner  catalog.PlannerPort
}

var _ domain.StepperPort = (*Service)(nil)

// New constructs the stepper over the catalog ports
func New(registry catalog.RegistryPort, planner catalog.PlannerPort) *Service {
	return &Service{
		sessions: make(map[int64]*domain.Session),
		registry: registry,
		planner:  planner,
	}
}

// StartRegister enters the registration flow, restarting it if the chat
// was already mid flow
func (s *Service) StartRegister(_ context.Context, chat int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chat] = &domain.Session{Flow: domain.FlowRegister, Step: domain.StepName}
	return "Nombre de la modelo (ej: Aurora):"
}

// StartPlan enters the plan flow. Without registered models there is
// nothing to plan against, so the chat stays idle.
func (s *Service) StartPlan(ctx context.Context, chat int64) string {
	models, _ := s.registry.ListModels(ctx)
	if len(models) == 0 {
		return "Primero registra una modelo con /register"
	}

	s.mu.Lock()
	s.sessions[chat] = &domain.Session{Flow: domain.FlowPlan, Step: domain.StepPickModel}
	s.mu.Unlock()

	ids := make([]string, 0, len(models))
	for id := range models {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := []string{"Elige modelo (escribe el *ID*):"}
	for _, id := range ids {
		m := models[id]
		lines = append(lines, fmt.Sprintf("• `%s` = %s (%s)", id, m.Name, m.Country))
	}
	return strings.Join(lines, "\n")
}

// Cancel drops the chat back to idle from any state
func (s *Service) Cancel(chat int64) string {
	s.mu.Lock()
	delete(s.sessions, chat)
	s.mu.Unlock()
	return "Cancelado."
}

// Active reports whether the chat has a flow in progress
func (s *Service) Active(chat int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chat]
	return ok && sess.Flow != domain.FlowNone
}

// Input feeds typed text into the chat's active flow
func (s *Service) Input(ctx context.Context, chat int64, text string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chat]
	if !ok || sess.Flow == domain.FlowNone {
		return "", false, nil
	}

	text = strings.TrimSpace(text)
	switch sess.Flow {
	case domain.FlowRegister:
		reply, err := s.register(ctx, chat, sess, text)
		return reply, true, err
	case domain.FlowPlan:
		reply, err := s.plan(ctx, chat, sess, text)
		return reply, true, err
	default:
		delete(s.sessions, chat)
		return "", false, nil
	}
}

func (s *Service) register(ctx context.Context, chat int64, sess *domain.Session, text string) (string, error) {
	switch sess.Step {
	case domain.StepName:
		sess.Name = text
		sess.Step = domain.StepCountry
		return "País (ej: Brasil, Perú, Alemania):", nil

	case domain.StepCountry:
		sess.Country = text
		sess.Step = domain.StepAge
		return "Edad (solo número, ej: 23):", nil

	case domain.StepAge:
		sess.AgeRaw = text
		sess.Step = domain.StepTags
		return "Tags/categorías separadas por coma (ej: latina, milf, teen, cosplay):", nil

	case domain.StepTags:
		p, err := s.registry.RegisterModel(ctx, catalog.RegisterInput{
			Name:    sess.Name,
			Country: sess.Country,
			AgeRaw:  sess.AgeRaw,
			TagsRaw: text,
		})
		if err != nil {
			return "", err
		}
		delete(s.sessions, chat)

		tags := "-"
		if len(p.Tags) > 0 {
			tags = strings.Join(p.Tags, ", ")
		}
		return fmt.Sprintf(
			"✅ Registrada: *%s*\nID: `%s`\nPaís: %s\nEdad: %s\nTags: %s",
			p.Name, p.ID, p.Country, p.Age, tags,
		), nil

	default:
		delete(s.sessions, chat)
		return "Cancelado.", nil
	}
}

func (s *Service) plan(ctx context.Context, chat int64, sess *domain.Session, text string) (string, error) {
	switch sess.Step {
	case domain.StepPickModel:
		id := slug.Normalize(text)
		if _, err := s.registry.GetModel(ctx, id); err != nil {
			return "❌ ID no válido. Copia/pega el ID exacto de la lista.", nil
		}
		sess.PlanModelID = id
		sess.Step = domain.StepPickType
		return "Tipo de archivo: escribe `video` o `foto`", nil

	case domain.StepPickType:
		t := slug.Normalize(text)
		if t != catalog.TypeVideo && t != catalog.TypeFoto {
			return "Escribe solo: `video` o `foto`", nil
		}
		sess.PlanType = t
		sess.Step = domain.StepPickCategory
		return "Categoría (ej: free, premium, teaser, cosplay, latina):", nil

	case domain.StepPickCategory:
		rec, err := s.planner.PlanUpload(ctx, catalog.PlanInput{
			ModelID:  sess.PlanModelID,
			Type:     sess.PlanType,
			Category: slug.Normalize(text),
		})
		if err != nil {
			return "", err
		}
		delete(s.sessions, chat)

		return fmt.Sprintf(
			"✅ *Ruta generada*\n\n"+
				"Modelo: *%s*\n"+
				"Tipo: *%s*\n"+
				"Categoría: *%s*\n"+
				"Fecha: *%s*\n\n"+
				"📦 Bucket: `%s`\n"+
				"🧭 Ruta: `%s`\n\n"+
				"👉 Sube tus archivos a esa carpeta desde tu PC.\n"+
				"La web lo listará como “nueva subida”.",
			rec.ModelName, rec.Type, rec.Category, rec.Date, rec.Bucket, rec.Path,
		), nil

	default:
		delete(s.sessions, chat)
		return "Cancelado.", nil
	}
}
