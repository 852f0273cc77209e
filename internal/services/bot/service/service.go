// Package service implements the command dispatcher behind the chat transport
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"sensutv/internal/core/slug"
	"sensutv/internal/platform/logger"
	pnet "sensutv/internal/platform/net"
	"sensutv/internal/services/bot/domain"
	catalog "sensutv/internal/services/catalog/domain"
	intake "sensutv/internal/services/intake/domain"
)

// Config carries dispatcher settings
type Config struct {
	Bucket string
	Region string
	Store  string

	// AllowedIDs lists user ids that may push media and pick the active
	// model. Empty means nobody may.
	AllowedIDs []int64
}

// Service routes one message at a time. The active-model choice for
// media uploads is kept per operator, mutex guarded.
type Service struct {
	registry catalog.RegistryPort
	planner  catalog.PlannerPort
	stepper  intake.StepperPort
	files    domain.FilePort
	cfg      Config

	mu     sync.Mutex
	active map[int64]string
}

var _ domain.DispatcherPort = (*Service)(nil)

// New constructs the dispatcher
func New(registry catalog.RegistryPort, planner catalog.PlannerPort, stepper intake.StepperPort, files domain.FilePort, cfg Config) *Service {
	return &Service{
		registry: registry,
		planner:  planner,
		stepper:  stepper,
		files:    files,
		cfg:      cfg,
		active:   make(map[int64]string),
	}
}

// Dispatch routes a single normalized message
func (s *Service) Dispatch(ctx context.Context, in domain.Incoming) string {
	ctx = pnet.WithActor(ctx, fmt.Sprintf("%d", in.UserID))

	if in.Command != "" {
		return s.command(ctx, in)
	}
	if in.Photo != nil || in.Video != nil {
		return s.media(ctx, in)
	}

	reply, handled, err := s.stepper.Input(ctx, in.ChatID, in.Text)
	if err != nil {
		logger.C(ctx).Error().Err(err).Int64("chat", in.ChatID).Msg("stepper commit failed")
		return "⚠️ No pude guardar. Inténtalo de nuevo."
	}
	if !handled {
		return ""
	}
	return reply
}

func (s *Service) command(ctx context.Context, in domain.Incoming) string {
	switch in.Command {
	case "start":
		return s.start()
	case "register", "newmodel":
		return s.stepper.StartRegister(ctx, in.ChatID)
	case "plan":
		return s.stepper.StartPlan(ctx, in.ChatID)
	case "models":
		return s.models(ctx)
	case "last":
		return s.last(ctx)
	case "cancel":
		return s.stepper.Cancel(in.ChatID)
	case "setmodel":
		return s.setModel(ctx, in)
	case "whoami":
		return s.whoami(in)
	default:
		// unknown commands get no reply, the poller drops empty strings
		return ""
	}
}

func (s *Service) start() string {
	return fmt.Sprintf(
		"✅ *SensuTV Bot activo*\n\n"+
			"Comandos:\n"+
			"• /register → registrar una modelo (nombre, país, edad, tags)\n"+
			"• /models → lista de modelos\n"+
			"• /plan → te pregunto datos y te doy la *ruta exacta* para subir\n"+
			"• /last → últimas rutas creadas\n"+
			"• /setmodel <id> → modelo activa para subir media\n"+
			"• /whoami → tu id y autorización\n\n"+
			"📦 Bucket: `%s`\n"+
			"🌍 Region: `%s`\n"+
			"💾 Almacenamiento: `%s`\n",
		s.cfg.Bucket, s.cfg.Region, s.cfg.Store,
	)
}

func (s *Service) models(ctx context.Context) string {
	models, err := s.registry.ListModels(ctx)
	if err != nil || len(models) == 0 {
		return "Aún no hay modelos registradas. Usa /register"
	}

	ids := make([]string, 0, len(models))
	for id := range models {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := []string{"📋 *Modelos registradas:*"}
	for _, id := range ids {
		m := models[id]
		tags := "-"
		if len(m.Tags) > 0 {
			tags = strings.Join(m.Tags, ", ")
		}
		lines = append(lines, fmt.Sprintf(
			"• *%s* (%s) — edad: %s — tags: %s\n  ID: `%s`",
			m.Name, m.Country, m.Age, tags, id,
		))
	}
	return strings.Join(lines, "\n")
}

func (s *Service) last(ctx context.Context) string {
	items, err := s.planner.LastUploads(ctx, 10)
	if err != nil || len(items) == 0 {
		return "No hay registros aún. Usa /plan para generar rutas."
	}

	lines := []string{"🕒 *Últimas rutas generadas:*"}
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("• %s — *%s* — `%s`", it.Date, it.ModelName, it.Path))
	}
	return strings.Join(lines, "\n")
}

func (s *Service) whoami(in domain.Incoming) string {
	auth := "no"
	if s.allowed(in.UserID) {
		auth = "sí"
	}
	return fmt.Sprintf("🆔 Tu ID: `%d`\nAutorizado para subir: *%s*", in.UserID, auth)
}

func (s *Service) setModel(ctx context.Context, in domain.Incoming) string {
	if !s.allowed(in.UserID) {
		return "⛔ No estás autorizado para subir contenido."
	}

	id := slug.Normalize(in.Args)
	if id == "" {
		return "Uso: /setmodel <id> (mira los IDs con /models)"
	}
	m, err := s.registry.GetModel(ctx, id)
	if err != nil {
		return "❌ ID no válido. Copia/pega el ID exacto de /models."
	}

	s.mu.Lock()
	s.active[in.UserID] = m.ID
	s.mu.Unlock()

	return fmt.Sprintf("🎯 Modelo activa: *%s* (`%s`)", m.Name, m.ID)
}

// media downloads the attachment and stores it against the sender's
// active model. Download and store are two steps with no retry.
func (s *Service) media(ctx context.Context, in domain.Incoming) string {
	if !s.allowed(in.UserID) {
		return "⛔ No estás autorizado para subir contenido."
	}

	s.mu.Lock()
	modelID := s.active[in.UserID]
	s.mu.Unlock()
	if modelID == "" {
		return "Primero elige la modelo activa con /setmodel <id>"
	}

	att := in.Video
	typ := catalog.TypeVideo
	if att == nil {
		att = in.Photo
		typ = catalog.TypeFoto
	}

	data, err := s.files.Download(ctx, att.FileID)
	if err != nil {
		logger.C(ctx).Error().Err(err).Str("file_id", att.FileID).Msg("attachment download failed")
		return "⚠️ No pude descargar el archivo."
	}

	mediaIn := catalog.MediaInput{
		ModelID:     modelID,
		Type:        typ,
		Filename:    att.Filename,
		Data:        data,
		ContentType: att.ContentType,
		Caption:     in.Caption,
	}
	if att.ThumbFileID != "" {
		if thumb, terr := s.files.Download(ctx, att.ThumbFileID); terr == nil {
			mediaIn.Thumb = thumb
			mediaIn.ThumbName = thumbName(att.Filename)
		} else {
			logger.C(ctx).Warn().Err(terr).Msg("thumb download failed, storing media without preview")
		}
	}

	rec, err := s.planner.RecordMedia(ctx, mediaIn)
	if err != nil {
		logger.C(ctx).Error().Err(err).Str("model", modelID).Msg("media store failed")
		return "⚠️ No pude guardar el archivo."
	}
	return fmt.Sprintf("✅ Guardado\n🧭 Ruta: `%s`", rec.Path)
}

func (s *Service) allowed(userID int64) bool {
	for _, id := range s.cfg.AllowedIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// thumbName swaps the media extension for the jpeg preview
func thumbName(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i > 0 {
		filename = filename[:i]
	}
	return filename + ".jpg"
}
