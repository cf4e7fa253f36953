package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"wordwatch/internal/db"
	"wordwatch/internal/models"
	"wordwatch/internal/validation"
)

// WordStore manages the banned word and exception lists.
type WordStore interface {
	GetWords(ctx context.Context) ([]models.Word, error)
	AddWord(ctx context.Context, word string) error
	DeleteWord(ctx context.Context, word string) error
	GetExceptions(ctx context.Context) ([]models.Word, error)
	AddException(ctx context.Context, word string) error
	DeleteException(ctx context.Context, word string) error
}

// WordHandler handles word list operations via JSON API.
type WordHandler struct {
	store WordStore
}

// NewWordHandler creates a new API word handler.
func NewWordHandler(store WordStore) *WordHandler {
	return &WordHandler{store: store}
}

// wordList binds one list to its store operations and error mapping.
type wordList struct {
	name        string
	get         func(ctx context.Context) ([]models.Word, error)
	add         func(ctx context.Context, word string) error
	remove      func(ctx context.Context, word string) error
	errExists   error
	errNotFound error
}

func (h *WordHandler) words() wordList {
	return wordList{
		name:        models.ListWords,
		get:         h.store.GetWords,
		add:         h.store.AddWord,
		remove:      h.store.DeleteWord,
		errExists:   db.ErrDuplicateWord,
		errNotFound: db.ErrWordNotFound,
	}
}

func (h *WordHandler) exceptions() wordList {
	return wordList{
		name:        models.ListExceptions,
		get:         h.store.GetExceptions,
		add:         h.store.AddException,
		remove:      h.store.DeleteException,
		errExists:   db.ErrDuplicateException,
		errNotFound: db.ErrExceptionNotFound,
	}
}

// ListWords returns the banned words.
func (h *WordHandler) ListWords(c fiber.Ctx) error {
	return h.list(c, h.words())
}

// AddWord adds a banned word.
func (h *WordHandler) AddWord(c fiber.Ctx) error {
	return h.add(c, h.words())
}

// DeleteWord removes a banned word.
func (h *WordHandler) DeleteWord(c fiber.Ctx) error {
	return h.remove(c, h.words())
}

// ListExceptions returns the exceptions.
func (h *WordHandler) ListExceptions(c fiber.Ctx) error {
	return h.list(c, h.exceptions())
}

// AddException adds an exception.
func (h *WordHandler) AddException(c fiber.Ctx) error {
	return h.add(c, h.exceptions())
}

// DeleteException removes an exception.
func (h *WordHandler) DeleteException(c fiber.Ctx) error {
	return h.remove(c, h.exceptions())
}

func (h *WordHandler) list(c fiber.Ctx, l wordList) error {
	words, err := l.get(c.Context())
	if err != nil {
		slog.Error("failed to fetch word list", "list", l.name, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch "+l.name)
	}
	if words == nil {
		words = []models.Word{}
	}

	return jsonSuccess(c, models.WordListResponse{
		Total: len(words),
		Words: words,
	})
}

func (h *WordHandler) add(c fiber.Ctx, l wordList) error {
	var body struct {
		Word string `json:"word"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	word := validation.NormalizeNewWord(body.Word)
	if ok, msg := validation.ValidateWord(word); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if err := l.add(c.Context(), word); err != nil {
		if errors.Is(err, l.errExists) {
			return jsonError(c, fiber.StatusConflict, word+" is already in "+l.name)
		}
		slog.Error("failed to add word", "list", l.name, "word", word, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to add to "+l.name)
	}

	slog.Info("word list updated", "list", l.name, "added", word)
	return jsonCreated(c, fiber.Map{"word": word})
}

func (h *WordHandler) remove(c fiber.Ctx, l wordList) error {
	word := validation.NormalizeWordKey(c.Params("word"))
	if word == "" {
		return jsonError(c, fiber.StatusBadRequest, "word is required")
	}

	if err := l.remove(c.Context(), word); err != nil {
		if errors.Is(err, l.errNotFound) {
			return jsonError(c, fiber.StatusNotFound, word+" is not in "+l.name)
		}
		slog.Error("failed to delete word", "list", l.name, "word", word, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete from "+l.name)
	}

	slog.Info("word list updated", "list", l.name, "removed", word)
	return jsonSuccess(c, fiber.Map{"word": word})
}
