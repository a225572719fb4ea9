package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/accountbook-server/internal/handlers/v1/account"
	"github.com/carson-networks/accountbook-server/internal/handlers/v1/accountbook"
	"github.com/carson-networks/accountbook-server/internal/handlers/v1/importqif"
	"github.com/carson-networks/accountbook-server/internal/handlers/v1/rule"
	"github.com/carson-networks/accountbook-server/internal/handlers/v1/status"
	"github.com/carson-networks/accountbook-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/accountbook-server/internal/logging"
	"github.com/carson-networks/accountbook-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Account Book Server", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	accountbook.NewCreateAccountBookHandler(r.Service.AccountBook).Register(humaAPI)
	accountbook.NewGetAccountBookHandler(r.Service.AccountBook).Register(humaAPI)
	accountbook.NewListAccountBooksHandler(r.Service.AccountBook).Register(humaAPI)
	accountbook.NewDeleteAccountBookHandler(r.Service.AccountBook).Register(humaAPI)

	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewDeleteAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewClearAccountHandler(r.Service.Account).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateCategoryHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListCategoriesHandler(r.Service.Transaction).Register(humaAPI)

	rule.NewCreateRuleHandler(r.Service.Rule).Register(humaAPI)
	rule.NewListRulesHandler(r.Service.Rule).Register(humaAPI)
	rule.NewDeleteRuleHandler(r.Service.Rule).Register(humaAPI)
	rule.NewApplyRulesHandler(r.Service.Rule).Register(humaAPI)

	importqif.NewImportQIFHandler(r.Service.Import).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
