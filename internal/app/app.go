package app

import (
	"context"
	"log/slog"

	httpapp "media_gallery/internal/app/http"
	"media_gallery/internal/config"
	"media_gallery/internal/repository"
	gallery "media_gallery/internal/services/gallery_service"
	media "media_gallery/internal/services/media_service"
	storage "media_gallery/internal/storage/filestorage"
	"media_gallery/internal/storage/sqlite"
	httprouters "media_gallery/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Storage    *sqlite.Storage
}

// New собирает все зависимости приложения. Недоступное хранилище —
// фатальная ошибка: без него трафик не обслуживаем.
func New(log *slog.Logger, cfg *config.Config) *App {
	store, err := sqlite.New(context.Background(), cfg.StoragePath)
	if err != nil {
		panic(err)
	}

	if err := store.Init(context.Background()); err != nil {
		panic(err)
	}

	fileStorage, err := storage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		panic(err)
	}

	repo := repository.NewGalleryRepository(store.DB())

	galleryService := gallery.NewGalleryService(log, repo, fileStorage)
	mediaService := media.NewMediaService(log, repo, fileStorage)

	router := httprouters.NewRouter(log, galleryService, mediaService)

	server := httpapp.New(
		log,
		cfg.HTTP.Host,
		cfg.HTTP.Port,
		cfg.FileStorage.MaxSize,
		cfg.FileStorage.BaseDir,
		cfg.FileStorage.BaseURL,
		router,
	)

	return &App{
		HTTPServer: server,
		Storage:    store,
	}
}
