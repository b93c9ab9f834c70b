package main

import (
	"context"
	"net"
	"net/http"

	"github.com/bookstoreapi/bookstore/pkg/config"
	"github.com/bookstoreapi/bookstore/pkg/database"
	"github.com/bookstoreapi/bookstore/pkg/images"
	"github.com/bookstoreapi/bookstore/pkg/migrations"
	"github.com/bookstoreapi/bookstore/pkg/server"
	"github.com/bookstoreapi/bookstore/pkg/version"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/signals"
)

func main() {
	ctx := context.Background()
	log := logger.New()

	log.Info("starting bookstore", logger.Data{"version": version.Version})

	// A missing .env file is fine; the environment may already be populated.
	if err := godotenv.Load(); err == nil {
		log.Info("loaded .env file")
	}

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Err(err).Fatal("database error")
	}

	group, err := migrations.BringUpToDate(ctx, db)
	if err != nil {
		log.Err(err).Fatal("migrations error")
	}
	if group.ID == 0 {
		log.Info("no new migrations to run")
	} else {
		log.Info("migrated to new group", logger.Data{"group_id": group.ID, "migration_names": group.Migrations.String()})
	}

	imageStore, err := images.NewStore(ctx, cfg)
	if err != nil {
		log.Err(err).Fatal("image store error")
	}
	log.Info("image store initialized", logger.Data{"storage": cfg.ImageStorage})

	srv, err := server.New(cfg, db, imageStore)
	if err != nil {
		log.Err(err).Fatal("server error")
	}

	graceful := signals.Setup()

	go func() {
		lc := net.ListenConfig{}
		listener, err := lc.Listen(ctx, "tcp", srv.Addr)
		if err != nil {
			log.Err(err).Fatal("failed to bind port")
		}
		log.Info("server started", logger.Data{"addr": listener.Addr().String()})

		err = srv.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Fatal("server stopped")
		}
		log.Info("server stopped")
	}()

	<-graceful
	log.Info("starting graceful shutdown")

	err = srv.Shutdown(ctx)
	if err != nil {
		log.Err(err).Error("server shutdown error")
	}
	log.Info("server shutdown")

	err = db.Close()
	if err != nil {
		log.Err(err).Error("database close error")
	}
	log.Info("database closed")
}
