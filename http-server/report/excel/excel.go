package excel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"quotes-backend/internal/storage"
)

type QuoteExcelGenerator interface {
	GenerateQuoteExcel(ctx context.Context, quoteID int64) ([]byte, error)
}

func GenerateQuoteExcel(log *slog.Logger, gen QuoteExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.excel.GenerateQuoteExcel"

		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid quote id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateQuoteExcel(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrQuoteNotFound) {
				http.Error(w, "quote not found", http.StatusNotFound)
				return
			}
			log.Error("failed to generate excel", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("quote_%d_%s.xlsx", id, time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.Write(excelBytes)
	}
}
