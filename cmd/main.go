package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kbelyakov/psinspect/controller"
	inspectionCtlMod "github.com/kbelyakov/psinspect/controller/inspection"
	"github.com/kbelyakov/psinspect/pkg/config"
	"github.com/kbelyakov/psinspect/pkg/logger"
	"github.com/kbelyakov/psinspect/service"
	exportSvcMod "github.com/kbelyakov/psinspect/service/export"
	notifySvcMod "github.com/kbelyakov/psinspect/service/notify"
	"github.com/kbelyakov/psinspect/store"
	catalogStoreMod "github.com/kbelyakov/psinspect/store/catalog"
	inspectorStoreMod "github.com/kbelyakov/psinspect/store/inspector"
	sessionStoreMod "github.com/kbelyakov/psinspect/store/session"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

var (
	cfg *config.Config
	log *logrus.Logger
)

// app собранные сервисы программы. Все зависимости создаются явно здесь и передаются
// по ссылке: никаких глобальных синглтонов с состоянием
type app struct {
	ctx context.Context

	sessions   store.SessionStore
	inspectors store.InspectorStore
	catalog    store.CatalogStore
	inspection controller.InspectionCtl
	export     service.ExportSvc
	notify     service.NotifySvc
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Printf("ОШИБКА: в процессе работы произошла ошибка: %v\n", err)
		if cfg != nil {
			fmt.Printf("Для подробностей смотри лог: %s/%s\n", cfg.Log.Path, cfg.Log.Filename)
		}
		if log != nil {
			log.Error(errors.ErrorStack(err))
		}
		os.Exit(1)
	}
}

// Читает конфигурацию, настраивает лог и собирает все сервисы программы
func setup(configPath string) (*app, error) {
	cfg = config.GetWithPath(configPath)
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	log = logger.GetWithConfig(logger.Config{
		File:    filepath.Join(cfg.Log.Path, cfg.Log.Filename),
		Level:   level,
		Console: cfg.Log.Console,
	})

	ctx := context.Background()

	// region Хранилища

	sessions, err := sessionStoreMod.NewFile(ctx, &sessionStoreMod.ConfigFile{
		Log:      log,
		Filename: cfg.Sessions.Filename,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	inspectors, err := inspectorStoreMod.NewDb(ctx, &inspectorStoreMod.ConfigDb{
		Log:    log,
		DbFile: cfg.Db.Filename,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	catalog, err := catalogStoreMod.NewCatalog(ctx, &catalogStoreMod.ConfigCatalog{
		Log:      log,
		Filename: cfg.Catalog.Filename,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	// endregion
	// region Контроллер и сервисы

	inspection, err := inspectionCtlMod.NewInspection(ctx, &inspectionCtlMod.ConfigInspection{
		Log:        log,
		Sessions:   sessions,
		Inspectors: inspectors,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	export, err := exportSvcMod.NewCsv(ctx, &exportSvcMod.ConfigCsv{
		Log:        log,
		Inspectors: inspectors,
		Dir:        cfg.Export.Path,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	notify, err := notifySvcMod.NewNotify(ctx, &notifySvcMod.ConfigNotify{
		Log: log,
		TTL: time.Duration(cfg.Notify.TTL) * time.Second,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	// endregion

	return &app{
		ctx:        ctx,
		sessions:   sessions,
		inspectors: inspectors,
		catalog:    catalog,
		inspection: inspection,
		export:     export,
		notify:     notify,
	}, nil
}
