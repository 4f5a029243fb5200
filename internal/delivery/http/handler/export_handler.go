package handler

import (
	"bytes"

	"rerank/internal/delivery/http/middleware"
	"rerank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	csvFilename  = "candidates.csv"
	xlsxFilename = "candidates.xlsx"
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	uc usecase.ExportUsecase
}

func NewExportHandler(uc usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func (h *ExportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/candidates", h.CSV)
	r.Get("/candidates.csv", h.CSV)
	r.Get("/candidates.xlsx", h.XLSX)
}

// CSV renders into a buffer first so a failed export still gets a JSON error
// instead of a truncated attachment.
func (h *ExportHandler) CSV(c fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.WriteCSV(c.Context(), &buf); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to export candidates", err)
	}

	c.Attachment(csvFilename)
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *ExportHandler) XLSX(c fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.WriteXLSX(c.Context(), &buf); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to export candidates", err)
	}

	c.Attachment(xlsxFilename)
	c.Set(fiber.HeaderContentType, xlsxMIME)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
