package settings_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chipaflow-api/internal/application/settings"
	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
	"github.com/jhoicas/chipaflow-api/internal/domain/theme"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/memory"
)

// pngHeader cabecera mínima reconocida como image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

type fakeArchiver struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeArchiver) Archive(_ context.Context, _, _ string, _ []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func TestInit_SinTemaPersisteDark(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSettingsStore()
	svc := settings.NewService(store)

	pref, err := svc.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, pref)

	raw, ok, err := store.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", raw)
}

func TestInit_ConservaTemaGuardado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSettingsStore()
	require.NoError(t, store.Set(ctx, repository.KeyTheme, "light"))

	pref, err := settings.NewService(store).Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Light, pref)
}

func TestResolve_SystemSigueAlSistemaOperativo(t *testing.T) {
	ctx := context.Background()
	svc := settings.NewService(memory.NewSettingsStore())
	require.NoError(t, svc.SetTheme(ctx, theme.System))

	root := theme.NewClassList("light")
	_, applied, err := svc.ApplyTo(ctx, root, true)
	require.NoError(t, err)
	assert.Equal(t, theme.AppliedDark, applied)
	assert.Equal(t, "dark", root.String())

	_, applied, err = svc.ApplyTo(ctx, root, false)
	require.NoError(t, err)
	assert.Equal(t, theme.AppliedLight, applied)
	assert.Equal(t, "light", root.String())
}

func TestToggleTheme_PersisteYNotifica(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSettingsStore()
	svc := settings.NewService(store)
	_, err := svc.Init(ctx)
	require.NoError(t, err)

	var got []settings.Change
	unsubscribe := svc.Subscribe(func(c settings.Change) { got = append(got, c) })

	next, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Light, next)

	next, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, next)

	raw, _, _ := store.Get(ctx, repository.KeyTheme)
	assert.Equal(t, "dark", raw)
	require.Len(t, got, 2)
	assert.Equal(t, settings.Change{Key: repository.KeyTheme, Value: "light"}, got[0])

	unsubscribe()
	_, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2, "tras cancelar la suscripción no llegan más eventos")
}

func TestToggleTheme_Concurrente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSettingsStore()
	svc := settings.NewService(store)
	_, err := svc.Init(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.ToggleTheme(ctx)
		}()
	}
	wg.Wait()

	// diez alternancias serializadas desde dark vuelven a dark
	pref, err := svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, pref)
}

func TestThemeEvents_OrdenIgualAlGuardado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSettingsStore()
	svc := settings.NewService(store)
	_, err := svc.Init(ctx)
	require.NoError(t, err)

	var (
		mu     sync.Mutex
		events []string
	)
	svc.Subscribe(func(c settings.Change) {
		mu.Lock()
		events = append(events, c.Value)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.ToggleTheme(ctx)
		}()
		go func() {
			defer wg.Done()
			_ = svc.SetTheme(ctx, theme.System)
		}()
	}
	wg.Wait()

	stored, ok, err := store.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, events, 40)
	assert.Equal(t, stored, events[len(events)-1], "el último evento coincide con el valor guardado")

	// cada toggle ve el valor del evento anterior
	prev := string(theme.Dark)
	for _, v := range events {
		if v != string(theme.System) {
			assert.Equal(t, string(theme.Toggle(theme.Preference(prev))), v)
		}
		prev = v
	}
}

func TestSetTheme_Invalido(t *testing.T) {
	svc := settings.NewService(memory.NewSettingsStore())
	err := svc.SetTheme(context.Background(), theme.Preference("sepia"))
	assert.ErrorIs(t, err, theme.ErrInvalidPreference)
}

func TestProfile_JSONCorruptoDevuelveDefaults(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSettingsStore()
	require.NoError(t, store.Set(ctx, repository.KeyUserProfile, "{nome:"))

	p, err := settings.NewService(store).Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultProfile(), p)
}

func TestSetProfile(t *testing.T) {
	ctx := context.Background()
	svc := settings.NewService(memory.NewSettingsStore())

	_, err := svc.SetProfile(ctx, entity.Profile{Nome: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	saved, err := svc.SetProfile(ctx, entity.Profile{Nome: "Ana Lima", Cargo: "Gerente", Email: "ana@chiparia.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", saved.Nome)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, p)
}

func TestLogo_DefaultYPersonalizado(t *testing.T) {
	ctx := context.Background()
	archiver := &fakeArchiver{}
	svc := settings.NewService(memory.NewSettingsStore(),
		settings.WithDefaultLogo("/assets/logo.png"),
		settings.WithArchiver(archiver),
	)

	uri, custom, err := svc.Logo(ctx)
	require.NoError(t, err)
	assert.False(t, custom)
	assert.Equal(t, "/assets/logo.png", uri)

	saved, err := svc.SetLogo(ctx, "logo.png", pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(saved, "data:image/png;base64,"))
	assert.Equal(t, 1, archiver.calls)

	uri, custom, err = svc.Logo(ctx)
	require.NoError(t, err)
	assert.True(t, custom)
	assert.Equal(t, saved, uri)

	require.NoError(t, svc.ResetLogo(ctx))
	uri, custom, _ = svc.Logo(ctx)
	assert.False(t, custom)
	assert.Equal(t, "/assets/logo.png", uri)
}

func TestSetLogo_NoImagenNoCambiaLogo(t *testing.T) {
	ctx := context.Background()
	svc := settings.NewService(memory.NewSettingsStore())
	saved, err := svc.SetLogo(ctx, "logo.png", pngHeader)
	require.NoError(t, err)

	_, err = svc.SetLogo(ctx, "notas.txt", []byte("isto não é uma imagem"))
	assert.ErrorIs(t, err, domain.ErrInvalidImage)

	_, err = svc.SetLogo(ctx, "vazio.png", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)

	uri, _, _ := svc.Logo(ctx)
	assert.Equal(t, saved, uri)
}

func TestSetLogo_FalloDelArchivadorNoEsFatal(t *testing.T) {
	svc := settings.NewService(memory.NewSettingsStore(),
		settings.WithArchiver(&fakeArchiver{err: errors.New("s3 down")}),
	)
	_, err := svc.SetLogo(context.Background(), "logo.png", pngHeader)
	assert.NoError(t, err)
}
