package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getcompany "quotes-backend/http-server/companies/get"
	savecompany "quotes-backend/http-server/companies/save"
	getnumber "quotes-backend/http-server/invoice-number/get"
	"quotes-backend/http-server/quotes/calculate"
	deletequote "quotes-backend/http-server/quotes/delete"
	"quotes-backend/http-server/quotes/generate"
	getquote "quotes-backend/http-server/quotes/get"
	savequote "quotes-backend/http-server/quotes/save"
	updatequote "quotes-backend/http-server/quotes/update"
	excelreport "quotes-backend/http-server/report/excel"
	getsettings "quotes-backend/http-server/settings/get"
	updatesettings "quotes-backend/http-server/settings/update"
	"quotes-backend/internal/config"
	"quotes-backend/internal/middleware/auth"
	"quotes-backend/internal/service/duplicate"
	"quotes-backend/internal/service/report"
	"quotes-backend/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, resolver *duplicate.Resolver, excelService *report.ExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Saved quotes.
	router.Get("/api/quotes", getquote.GetQuotes(log, storage))
	router.Post("/api/quotes", savequote.SaveQuote(log, storage, resolver))
	router.Get("/api/quotes/{id}", getquote.GetQuote(log, storage))
	router.Put("/api/quotes/{id}", updatequote.UpdateQuote(log, storage))
	router.Delete("/api/quotes/{id}", deletequote.DeleteQuote(log, storage))

	// Pure computation for the live editor.
	router.Post("/api/quotes/calculate", calculate.CalculateQuote(log))
	router.Post("/api/quotes/generate-days", generate.GenerateDays(log))

	// Invoice numbering.
	router.Get("/api/invoice-number", getnumber.GetInvoiceNumber(log, resolver))

	// Companies feeding the invoice-number code.
	router.Get("/api/companies", getcompany.GetCompanies(log, storage))
	router.Post("/api/companies", savecompany.SaveCompany(log, storage))

	// Global defaults.
	router.Get("/api/settings", getsettings.GetSettings(log, storage))

	// Excel export of one quote.
	router.Get("/api/report/excel", excelreport.GenerateQuoteExcel(log, excelService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Put("/settings", updatesettings.UpdateSettings(log, storage))

	router.Mount("/api/admin", adminRouter)

	// Static frontend with SPA fallback.
	frontendDir := cfg.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend dir not found, serving API only", slog.String("path", frontendDir))
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
