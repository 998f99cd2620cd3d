package handler

import (
	"errors"
	"net/http"
	"strconv"

	"airport-transfer-board/internal/delivery/dto"
	"airport-transfer-board/internal/domain/entity"
	"airport-transfer-board/internal/usecase"
	"airport-transfer-board/pkg/response"
	"airport-transfer-board/pkg/validator"

	"github.com/gorilla/mux"
)

type BoardHandler struct {
	boardUsecase usecase.BoardUsecase
	validator    *validator.CustomValidator
}

func NewBoardHandler(boardUsecase usecase.BoardUsecase, validator *validator.CustomValidator) *BoardHandler {
	return &BoardHandler{
		boardUsecase: boardUsecase,
		validator:    validator,
	}
}

func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	state := h.boardUsecase.State(r.Context())
	response.Success(w, http.StatusOK, "Board state retrieved successfully", state)
}

func (h *BoardHandler) GetDatasetPage(w http.ResponseWriter, r *http.Request) {
	req := dto.DatasetPageRequest{
		Dataset: mux.Vars(r)["dataset"],
		Page:    1,
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid page", nil)
			return
		}
		req.Page = page
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	page, err := h.boardUsecase.GetDatasetPage(r.Context(), entity.Dataset(req.Dataset), req.Page)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBoardNotReady):
			response.ServiceUnavailable(w, "Bookings are not loaded")
		case errors.Is(err, usecase.ErrUnknownDataset), errors.Is(err, usecase.ErrInvalidPage):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to get bookings")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Bookings retrieved successfully", page.Bookings, &response.Meta{
		Page:       page.Page,
		Limit:      page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}

func (h *BoardHandler) LookupBooking(w http.ResponseWriter, r *http.Request) {
	req := dto.LookupBookingRequest{ID: mux.Vars(r)["id"]}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.boardUsecase.LookupBooking(r.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, usecase.ErrBoardNotReady):
			response.ServiceUnavailable(w, "Bookings are not loaded")
		default:
			response.InternalServerError(w, "Failed to find booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}
