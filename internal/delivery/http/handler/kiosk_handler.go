package handler

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"airport-transfer-board/internal/converter"
	"airport-transfer-board/internal/delivery/http/middleware"
	"airport-transfer-board/internal/render"
	"airport-transfer-board/internal/usecase"
	"airport-transfer-board/pkg/response"

	"github.com/sirupsen/logrus"
)

type PageRenderer interface {
	RenderPage(w io.Writer, v render.PageView) error
}

// KioskHandler serves the HTML screens and the form posts that drive the FSM
type KioskHandler struct {
	boardUsecase    usecase.BoardUsecase
	renderer        PageRenderer
	refreshInterval time.Duration
	log             *logrus.Logger
}

func NewKioskHandler(boardUsecase usecase.BoardUsecase, renderer PageRenderer, refreshInterval time.Duration, log *logrus.Logger) *KioskHandler {
	return &KioskHandler{
		boardUsecase:    boardUsecase,
		renderer:        renderer,
		refreshInterval: refreshInterval,
		log:             log,
	}
}

func (h *KioskHandler) Page(w http.ResponseWriter, r *http.Request) {
	state := h.boardUsecase.State(r.Context())

	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, converter.BoardStateToPageView(state, h.refreshInterval)); err != nil {
		h.requestLog(r).Errorf("Failed to render kiosk page: %+v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	response.HTML(w, http.StatusOK, buf.Bytes())
}

// Table returns the bare table area, i.e. what the original container held
func (h *KioskHandler) Table(w http.ResponseWriter, r *http.Request) {
	state := h.boardUsecase.State(r.Context())
	response.HTML(w, http.StatusOK, []byte(state.Container))
}

func (h *KioskHandler) StartSearch(w http.ResponseWriter, r *http.Request) {
	h.boardUsecase.EnterSearch(r.Context())
	response.SeeOther(w, r, "/")
}

func (h *KioskHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	h.boardUsecase.Search(r.Context(), r.PostFormValue("query"))
	response.SeeOther(w, r, "/")
}

func (h *KioskHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.boardUsecase.ExitSearch(r.Context())
	response.SeeOther(w, r, "/")
}

func (h *KioskHandler) Adventure(w http.ResponseWriter, r *http.Request) {
	h.boardUsecase.Adventure(r.Context())
	response.SeeOther(w, r, "/")
}

// requestLog tags entries with the id assigned by the request logger middleware
func (h *KioskHandler) requestLog(r *http.Request) *logrus.Entry {
	entry := logrus.NewEntry(h.log)
	if id, ok := middleware.GetRequestIDFromContext(r.Context()); ok {
		entry = entry.WithField("request_id", id.String())
	}
	return entry
}
