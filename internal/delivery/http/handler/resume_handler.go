package handler

import (
	"errors"
	"io"

	"rerank/internal/delivery/http/middleware"
	"rerank/internal/pkg/response"
	"rerank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const resumeFormField = "resume"

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

// RegisterRoutes mounts the upload routes behind limit.
func (h *ResumeHandler) RegisterRoutes(r fiber.Router, limit fiber.Handler) {
	if r == nil {
		return
	}
	if limit == nil {
		limit = func(c fiber.Ctx) error { return c.Next() }
	}

	r.Post("/rate", limit, h.Rate)
	r.Post("/upload", limit, h.Upload)
}

func (h *ResumeHandler) Rate(c fiber.Ctx) error {
	file, err := readResumeFile(c)
	if err != nil {
		return err
	}

	out, err := h.uc.Rate(c.Context(), file)
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	file, err := readResumeFile(c)
	if err != nil {
		return err
	}

	out, err := h.uc.Upload(c.Context(), usecase.UploadInput{
		File:     file,
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Location: c.FormValue("location"),
		Title:    c.FormValue("title"),
		Bio:      c.FormValue("bio"),
	})
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, out)
}

// readResumeFile loads the multipart resume. Oversized files are rejected
// from the part header before any byte is read.
func readResumeFile(c fiber.Ctx) (usecase.ResumeFile, error) {
	fh, err := c.FormFile(resumeFormField)
	if err != nil || fh == nil {
		return usecase.ResumeFile{}, mapResumeUsecaseError(usecase.ErrMissingResume)
	}
	if fh.Size > usecase.MaxResumeBytes {
		return usecase.ResumeFile{}, mapResumeUsecaseError(usecase.ErrFileTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return usecase.ResumeFile{}, middleware.NewAppError(fiber.StatusBadRequest, "Unreadable resume file", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, usecase.MaxResumeBytes+1))
	if err != nil {
		return usecase.ResumeFile{}, middleware.NewAppError(fiber.StatusBadRequest, "Unreadable resume file", err)
	}

	return usecase.ResumeFile{Filename: fh.Filename, Size: fh.Size, Content: content}, nil
}

func mapResumeUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrMissingResume):
		return middleware.NewAppError(fiber.StatusBadRequest, "No resume file uploaded", err)
	case errors.Is(err, usecase.ErrMissingIdentity):
		return middleware.NewAppError(fiber.StatusBadRequest, "Name and email are required", err)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "Resume file exceeds the 10MB limit", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to process resume", err)
	}
}
