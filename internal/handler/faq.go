package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/repository"
)

// FAQHandler covers visitor questions and the manager answer flow.
type FAQHandler struct {
	FAQs *repository.FAQRepo
}

func NewFAQHandler(faqs *repository.FAQRepo) *FAQHandler {
	return &FAQHandler{FAQs: faqs}
}

// Create handles POST /api/faq. Anonymous questions are accepted:
// user_id is optional.
func (h *FAQHandler) Create(c echo.Context) error {
	var req struct {
		Theme    string  `json:"theme"`
		Question string  `json:"question"`
		UserID   *uint64 `json:"user_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Theme == "" || req.Question == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theme and question are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	faq, err := h.FAQs.Create(ctx, req.Theme, req.Question, req.UserID)
	if err != nil {
		c.Logger().Errorf("create faq: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create question"})
	}
	return c.JSON(http.StatusCreated, faq)
}

// List handles GET /api/faq. Pending questions come first.
func (h *FAQHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	faqs, err := h.FAQs.List(ctx)
	if err != nil {
		c.Logger().Errorf("list faq: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load questions"})
	}
	return c.JSON(http.StatusOK, faqs)
}

// ListByUser handles GET /api/faq/user/:user_id.
func (h *FAQHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	faqs, err := h.FAQs.ListByUser(ctx, userID)
	if err != nil {
		c.Logger().Errorf("list faq for user %d: %v", userID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load questions"})
	}
	return c.JSON(http.StatusOK, faqs)
}

// Answer handles PATCH /api/faq/:id. The status defaults to
// 'answered' when the body omits it.
func (h *FAQHandler) Answer(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req struct {
		Answer string `json:"answer"`
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Answer == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "answer is required"})
	}
	if req.Status == "" {
		req.Status = "answered"
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	faq, err := h.FAQs.Answer(ctx, id, req.Answer, req.Status)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "question not found"})
	}
	if err != nil {
		c.Logger().Errorf("answer faq %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save answer"})
	}
	return c.JSON(http.StatusOK, faq)
}
