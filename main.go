package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/accountbook-server/api"
	"github.com/carson-networks/accountbook-server/internal/config"
	"github.com/carson-networks/accountbook-server/internal/logging"
	"github.com/carson-networks/accountbook-server/internal/operator"
	"github.com/carson-networks/accountbook-server/internal/service"
	"github.com/carson-networks/accountbook-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("accountbook-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	// A single worker keeps every balance recompute serialized.
	delegator := operator.NewOperatorDelegator(dbStorage, 1)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    "9446",
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
