// Package src contains the Main function of MusicMustard. It should set everything
// up: read the configuration, create the catalog client, the quiz generator and
// the sessions store and then run the webserver until the process is stopped.
//
// At the moment it is in package src because it is imported from the project's
// root folder.
package src

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/musicmustard/src/catalog"
	"github.com/ironsmile/musicmustard/src/config"
	"github.com/ironsmile/musicmustard/src/daemon"
	"github.com/ironsmile/musicmustard/src/helpers"
	"github.com/ironsmile/musicmustard/src/quiz"
	"github.com/ironsmile/musicmustard/src/version"
	"github.com/ironsmile/musicmustard/src/webserver"
)

// Main is the only thing run in the project's root main.go file.
// For all intent and purposes this is the main function.
func Main(httpRootFS, htmlTemplatesFS fs.FS) {
	flags, err := daemon.ParseFlags(filepath.Base(os.Args[0]), os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		os.Exit(2)
	}

	if flags.ShowVersion {
		version.Print(os.Stdout)
		return
	}

	if err := run(flags, httpRootFS, htmlTemplatesFS); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(flags daemon.Flags, httpRootFS, htmlTemplatesFS fs.FS) error {
	osFS := afero.NewOsFs()

	cfg, err := config.FindAndParse(osFS, flags.ConfigFile)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	cfg.Merge(config.Config{
		Listen:  flags.Listen,
		LogFile: flags.LogFile,
	})

	if cfg.LogFile != "" {
		userPath, err := helpers.ProjectUserPath()
		if err != nil {
			return err
		}

		logFile := helpers.AbsolutePath(cfg.LogFile, userPath)
		if err := helpers.SetLogsFile(osFS, logFile); err != nil {
			return err
		}
	}

	if flags.PidFile != "" {
		if err := helpers.SetUpPidFile(osFS, flags.PidFile); err != nil {
			return err
		}
		defer helpers.RemovePidFile(osFS, flags.PidFile)
	}

	ctx, stop := daemon.StopContext(context.Background())
	defer stop()

	sessions, closeSessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}

	mbClient := catalog.NewClient(userAgent, cfg.RequestTimeout())
	mbClient.SetMusicBrainzAPIURL(cfg.Catalog.APIURL)
	mbClient.SetMusicBrainzWebURL(cfg.Catalog.WebURL)

	generator := quiz.NewGenerator(
		mbClient,
		cfg.Quiz.CuratedArtists,
		cfg.Quiz.MaxAttempts,
		nil,
	)

	srv, err := webserver.NewServer(cfg, webserver.Dependencies{
		Catalog:   mbClient,
		Generator: generator,
		Sessions:  sessions,
		HTTPRoot:  httpRootFS,
		Templates: htmlTemplatesFS,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			log.Println("stop signal received")
		}
		return nil
	})

	return g.Wait()
}

// newSessionStore returns the configured store for quiz sessions and a function
// which releases its resources.
func newSessionStore(
	ctx context.Context,
	cfg config.Config,
) (quiz.SessionStore, func(), error) {
	if cfg.Sessions.Store != config.StoreRedis {
		log.Println("keeping quiz sessions in memory")
		return quiz.NewMemoryStore(cfg.SessionTTL()), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Sessions.Redis.Address,
		Password: cfg.Sessions.Redis.Password,
		DB:       cfg.Sessions.Redis.DB,
	})
	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Printf("error closing redis client: %s", err)
		}
	}

	store := quiz.NewRedisStore(client, cfg.SessionTTL())
	if err := store.Ping(ctx); err != nil {
		closeClient()
		return nil, nil, fmt.Errorf(
			"connecting to redis at %s: %w",
			cfg.Sessions.Redis.Address,
			err,
		)
	}

	log.Printf("keeping quiz sessions in redis at %s", cfg.Sessions.Redis.Address)
	return store, closeClient, nil
}
