package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gameswap-network/gameswapd/config"
	"github.com/gameswap-network/gameswapd/internal/core/application"
	"github.com/gameswap-network/gameswapd/internal/core/ports"
	dbbadger "github.com/gameswap-network/gameswapd/internal/infrastructure/storage/db/badger"
	"github.com/gameswap-network/gameswapd/internal/infrastructure/storage/db/inmemory"
	httpinterface "github.com/gameswap-network/gameswapd/internal/interfaces/http"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
	config.Validate()

	repoManager, err := newRepoManager()
	if err != nil {
		log.WithError(err).Panic("error while opening storage")
	}
	defer repoManager.Close()

	accountSvc := application.NewAccountService(repoManager)
	librarySvc := application.NewLibraryService(repoManager)
	exchangeSvc := application.NewExchangeService(repoManager)
	wishlistSvc := application.NewWishlistService(repoManager)

	httpSvc, err := httpinterface.NewService(httpinterface.ServiceOpts{
		Address:         fmt.Sprintf(":%d", config.GetInt(config.ListeningPortKey)),
		AccountService:  accountSvc,
		LibraryService:  librarySvc,
		ExchangeService: exchangeSvc,
		WishlistService: wishlistSvc,
		RequestRate:     config.GetInt(config.RequestRateKey),
	})
	if err != nil {
		log.WithError(err).Panic("error while setting up http interface")
	}

	log.Debug("starting daemon")

	var serveGroup errgroup.Group
	serveGroup.Go(httpSvc.Start)
	defer httpSvc.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	errChan := make(chan error, 1)
	go func() { errChan <- serveGroup.Wait() }()

	select {
	case sig := <-sigChan:
		log.Debugf("received %s, exiting", sig)
	case err := <-errChan:
		if err != nil {
			log.WithError(err).Error("http interface exited with error")
		}
	}
}

func newRepoManager() (ports.RepoManager, error) {
	dbType := config.GetString(config.DbTypeKey)
	switch dbType {
	case config.DbTypeBadger:
		return dbbadger.NewRepoManager(config.GetDbDir(), nil)
	case config.DbTypeInMemory:
		return inmemory.NewRepoManager(), nil
	default:
		return nil, fmt.Errorf("unknown db type %s", dbType)
	}
}
