// Package settings concentra las preferencias persistentes del painel (tema, perfil y logo)
// detrás de un único servicio inyectable con lectura, escritura y suscripción.
package settings

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
	"github.com/jhoicas/chipaflow-api/internal/domain/theme"
)

// Change evento emitido después de cada escritura.
type Change struct {
	Key   string
	Value string
}

// Listener recibe los cambios; se invoca de forma síncrona tras la escritura.
// No debe volver a escribir el tema desde el callback.
type Listener func(Change)

// LogoArchiver recibe una copia de los bytes originales del logo (ej. bucket S3).
type LogoArchiver interface {
	Archive(ctx context.Context, filename, contentType string, data []byte) error
}

// Service servicio de preferencias. Seguro para uso concurrente.
type Service struct {
	store       repository.SettingsStore
	log         zerolog.Logger
	defaultLogo string
	archiver    LogoArchiver

	// mu serializa lectura-modificación-escritura (toggle) y la notificación del tema,
	// así los eventos llegan en el mismo orden en que se guardaron.
	mu sync.Mutex

	subMu  sync.RWMutex
	subs   map[uint64]Listener
	nextID uint64
}

// Option configura el Service.
type Option func(*Service)

// WithLogger inyecta el logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithDefaultLogo ruta del asset usado cuando no hay logo personalizado.
func WithDefaultLogo(path string) Option {
	return func(s *Service) { s.defaultLogo = path }
}

// WithArchiver copia cada logo subido al archivador indicado.
func WithArchiver(a LogoArchiver) Option {
	return func(s *Service) { s.archiver = a }
}

// NewService construye el servicio sobre el almacén clave/valor.
func NewService(store repository.SettingsStore, opts ...Option) *Service {
	s := &Service{
		store:       store,
		log:         zerolog.Nop(),
		defaultLogo: "/assets/chipaflow-logo.png",
		subs:        make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init se ejecuta una vez al arrancar, antes de atender peticiones.
// Sin preferencia guardada (o con un valor corrupto) persiste dark.
func (s *Service) Init(ctx context.Context) (theme.Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.Get(ctx, repository.KeyTheme)
	if err != nil {
		return "", fmt.Errorf("settings: leer tema: %w", err)
	}
	if ok {
		if pref, perr := theme.ParsePreference(raw); perr == nil {
			return pref, nil
		}
		s.log.Warn().Str("value", raw).Msg("tema guardado inválido, se restablece el predeterminado")
	}
	if err := s.store.Set(ctx, repository.KeyTheme, string(theme.DefaultPreference)); err != nil {
		return "", fmt.Errorf("settings: guardar tema predeterminado: %w", err)
	}
	return theme.DefaultPreference, nil
}

// Theme devuelve la preferencia guardada; ausente o inválida = dark.
func (s *Service) Theme(ctx context.Context) (theme.Preference, error) {
	raw, ok, err := s.store.Get(ctx, repository.KeyTheme)
	if err != nil {
		return "", fmt.Errorf("settings: leer tema: %w", err)
	}
	if !ok {
		return theme.DefaultPreference, nil
	}
	pref, err := theme.ParsePreference(raw)
	if err != nil {
		return theme.DefaultPreference, nil
	}
	return pref, nil
}

// SetTheme valida y persiste la preferencia.
func (s *Service) SetTheme(ctx context.Context, pref theme.Preference) error {
	pref, err := theme.ParsePreference(string(pref))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(ctx, repository.KeyTheme, string(pref)); err != nil {
		return fmt.Errorf("settings: guardar tema: %w", err)
	}
	s.notify(Change{Key: repository.KeyTheme, Value: string(pref)})
	return nil
}

// ToggleTheme alterna dark/light (desde system va a dark) y persiste el resultado.
func (s *Service) ToggleTheme(ctx context.Context) (theme.Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := theme.Toggle(current)
	if err := s.store.Set(ctx, repository.KeyTheme, string(next)); err != nil {
		return "", fmt.Errorf("settings: guardar tema: %w", err)
	}
	s.notify(Change{Key: repository.KeyTheme, Value: string(next)})
	return next, nil
}

// Resolve devuelve la preferencia guardada y el tema concreto para el sistema operativo indicado.
func (s *Service) Resolve(ctx context.Context, osPrefersDark bool) (theme.Preference, theme.Applied, error) {
	pref, err := s.Theme(ctx)
	if err != nil {
		return "", "", err
	}
	return pref, theme.Resolve(pref, osPrefersDark), nil
}

// ApplyTo resuelve el tema y lo aplica sobre las clases de la raíz del documento.
func (s *Service) ApplyTo(ctx context.Context, root *theme.ClassList, osPrefersDark bool) (theme.Preference, theme.Applied, error) {
	pref, applied, err := s.Resolve(ctx, osPrefersDark)
	if err != nil {
		return "", "", err
	}
	theme.Apply(root, applied)
	return pref, applied, nil
}

// Profile devuelve el perfil guardado. Un JSON corrupto se registra y se conservan los valores por defecto.
func (s *Service) Profile(ctx context.Context) (entity.Profile, error) {
	profile := entity.DefaultProfile()
	raw, ok, err := s.store.Get(ctx, repository.KeyUserProfile)
	if err != nil {
		return profile, fmt.Errorf("settings: leer perfil: %w", err)
	}
	if !ok {
		return profile, nil
	}
	var stored entity.Profile
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.log.Warn().Err(err).Msg("erro ao carregar perfil do usuário")
		return profile, nil
	}
	if stored.Nome != "" {
		profile.Nome = stored.Nome
	}
	if stored.Cargo != "" {
		profile.Cargo = stored.Cargo
	}
	profile.Email = stored.Email
	profile.Telefone = stored.Telefone
	return profile, nil
}

// SetProfile persiste el perfil; nome es obligatorio.
func (s *Service) SetProfile(ctx context.Context, p entity.Profile) (entity.Profile, error) {
	p.Nome = strings.TrimSpace(p.Nome)
	p.Cargo = strings.TrimSpace(p.Cargo)
	p.Email = strings.TrimSpace(p.Email)
	p.Telefone = strings.TrimSpace(p.Telefone)
	if p.Nome == "" {
		return entity.Profile{}, domain.NewValidationError("Por favor, preencha o nome.")
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return entity.Profile{}, fmt.Errorf("settings: serializar perfil: %w", err)
	}
	if err := s.store.Set(ctx, repository.KeyUserProfile, string(raw)); err != nil {
		return entity.Profile{}, fmt.Errorf("settings: guardar perfil: %w", err)
	}
	s.notify(Change{Key: repository.KeyUserProfile, Value: string(raw)})
	return p, nil
}

// Logo devuelve el data URI personalizado o el asset por defecto.
func (s *Service) Logo(ctx context.Context) (uri string, custom bool, err error) {
	raw, ok, err := s.store.Get(ctx, repository.KeyCustomLogo)
	if err != nil {
		return "", false, fmt.Errorf("settings: leer logo: %w", err)
	}
	if !ok || raw == "" {
		return s.defaultLogo, false, nil
	}
	return raw, true, nil
}

// SetLogo acepta sólo imágenes (detección por contenido). Cualquier otro archivo
// devuelve domain.ErrInvalidImage y el logo no cambia.
func (s *Service) SetLogo(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.ErrInvalidImage
	}
	mime := strings.TrimSpace(strings.SplitN(mimetype.Detect(data).String(), ";", 2)[0])
	if !strings.HasPrefix(mime, "image/") {
		s.log.Warn().Str("file", filename).Str("mime", mime).Msg("arquivo selecionado não é uma imagem")
		return "", domain.ErrInvalidImage
	}

	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	if err := s.store.Set(ctx, repository.KeyCustomLogo, uri); err != nil {
		return "", fmt.Errorf("settings: guardar logo: %w", err)
	}
	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, filename, mime, data); err != nil {
			s.log.Warn().Err(err).Str("file", filename).Msg("no se pudo archivar el logo")
		}
	}
	s.log.Info().Str("file", filename).Str("mime", mime).Int("bytes", len(data)).Msg("logo atualizado")
	s.notify(Change{Key: repository.KeyCustomLogo, Value: uri})
	return uri, nil
}

// ResetLogo vuelve al asset por defecto.
func (s *Service) ResetLogo(ctx context.Context) error {
	if err := s.store.Delete(ctx, repository.KeyCustomLogo); err != nil {
		return fmt.Errorf("settings: borrar logo: %w", err)
	}
	s.notify(Change{Key: repository.KeyCustomLogo, Value: ""})
	return nil
}

// Subscribe registra un listener; la función devuelta lo cancela.
func (s *Service) Subscribe(fn Listener) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Service) notify(c Change) {
	s.subMu.RLock()
	listeners := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.RUnlock()

	for _, fn := range listeners {
		fn(c)
	}
}
