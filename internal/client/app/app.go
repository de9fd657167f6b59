// Package app собирает клиентские компоненты в одно целое.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/client/api"
	"github.com/iudanet/wordcards/internal/client/auth"
	"github.com/iudanet/wordcards/internal/client/backend"
	"github.com/iudanet/wordcards/internal/client/local"
	"github.com/iudanet/wordcards/internal/client/lookup"
	"github.com/iudanet/wordcards/internal/client/migration"
	"github.com/iudanet/wordcards/internal/client/prefs"
	"github.com/iudanet/wordcards/internal/client/review"
	"github.com/iudanet/wordcards/internal/client/session"
	"github.com/iudanet/wordcards/internal/client/storage/boltdb"
	"github.com/iudanet/wordcards/internal/config"
	"github.com/iudanet/wordcards/internal/models"
)

// lookupTTL короткий: коллекция меняется в течение сессии
const lookupTTL = time.Minute

// App владеет базой устройства и всеми сервисами клиента
type App struct {
	Session   *session.Session
	Identity  *auth.TokenIdentity
	Migrator  *migration.Coordinator
	API       *api.Client
	Lookup    lookup.Provider
	db        *boltdb.Storage
	logger    *zap.Logger
	Prefs     prefs.Prefs
	prefsPath string
}

// Open открывает базу устройства и связывает компоненты.
// Вызывающий обязан вызвать Close.
func Open(ctx context.Context, cfg *config.ClientConfig, logger *zap.Logger) (*App, error) {
	db, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	prefsPath := cfg.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.PathNear(cfg.DBPath)
	}

	store := local.NewStore(db, logger)
	identity := auth.NewTokenIdentity(db, logger)
	apiClient := api.NewClient(cfg.ServerURL, logger)

	selector := backend.NewSelector(identity,
		backend.NewLocal(store, logger),
		backend.NewRemote(identity, apiClient),
	)
	sess := session.New(selector, review.NewSequencer(), logger)

	a := &App{
		Session:   sess,
		Identity:  identity,
		Migrator:  migration.NewCoordinator(store, apiClient, sess, logger),
		API:       apiClient,
		db:        db,
		logger:    logger,
		Prefs:     prefs.Load(prefsPath, logger),
		prefsPath: prefsPath,
	}
	a.Lookup = lookup.NewCachedProvider(
		lookup.NewFallback(logger, lookup.NewCollectionProvider(a.cards)),
		lookup.WithTTL(lookupTTL),
	)

	return a, nil
}

// Start переносит локальные карточки, если пользователь вошел, и загружает коллекцию.
// Ошибка миграции не мешает загрузке: она возвращается для показа пользователю.
func (a *App) Start(ctx context.Context) (migration.Result, error) {
	var (
		res    migration.Result
		migErr error
	)
	if a.Identity.Status(ctx).IsSignedIn {
		res, migErr = a.Migrate(ctx)
	}

	// После успешной миграции коллекция уже перезагружена
	if migErr != nil || !res.Reloaded() {
		a.Session.Load(ctx)
	}

	// SetMode сбрасывает ошибку, поэтому ошибку загрузки не трогаем
	if a.Prefs.DefaultMode == string(session.ModeStudy) && a.Session.State().Error == "" {
		a.Session.SetMode(session.ModeStudy)
	}
	return res, migErr
}

// Migrate runs the one-shot migration for the signed-in user.
func (a *App) Migrate(ctx context.Context) (migration.Result, error) {
	st := a.Identity.Status(ctx)
	if !st.IsSignedIn {
		return migration.Result{}, models.ErrUnauthorized
	}

	credential, err := a.Identity.Credential(ctx)
	if err != nil {
		return migration.Result{}, fmt.Errorf("failed to read credential: %w", err)
	}

	return a.Migrator.MigrateIfNeeded(ctx, st.UserID, credential)
}

// Login сохраняет токен и сразу запускает миграцию
func (a *App) Login(ctx context.Context, token string) (auth.Status, migration.Result, error) {
	st, err := a.Identity.Login(ctx, token)
	if err != nil {
		return auth.Status{}, migration.Result{}, err
	}

	res, err := a.Migrate(ctx)
	return st, res, err
}

// Logout удаляет токен; сессия переключается на локальное хранилище
func (a *App) Logout(ctx context.Context) error {
	if err := a.Identity.Logout(ctx); err != nil {
		return err
	}
	a.Session.Load(ctx)
	return nil
}

// SavePrefs validates, persists and applies new preferences.
func (a *App) SavePrefs(p prefs.Prefs) error {
	if err := prefs.Save(a.prefsPath, p); err != nil {
		return err
	}
	a.Prefs = p
	return nil
}

// PrefsPath returns the resolved preferences file.
func (a *App) PrefsPath() string {
	return a.prefsPath
}

// Close closes the device database.
func (a *App) Close() error {
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func (a *App) cards() []models.Flashcard {
	return a.Session.State().Cards
}
