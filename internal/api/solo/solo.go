package solo

import (
	"errors"
	"net/http"
	"strconv"

	dto "game_backend/internal/api/dto/solo"
	"game_backend/internal/converter"
	"game_backend/internal/model"
	"game_backend/internal/service"
	"game_backend/pkg/req"
	"game_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SoloService
}

type Handler struct {
	serv service.SoloService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Play выполняет одиночную игру
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "validation_error", "invalid request")
		return
	}

	result, err := h.serv.Play(r.Context(), converter.ToSoloPlay(payload))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayResponse(*result))
}

// History возвращает постраничную историю игр пользователя
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	records, total, err := h.serv.History(r.Context(), page, limit)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to load history")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records, total, page, limit))
}

// Stats возвращает агрегированную статистику игр пользователя
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to load stats")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}

// CheckData возвращает текущий баланс пользователя
func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CheckData(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

// writeServiceError классифицирует ошибку сервиса для клиента.
// Внутренние детали расчёта наружу не отдаются
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidStake),
		errors.Is(err, model.ErrStakeTooSmall),
		errors.Is(err, model.ErrStakeTooLarge):
		resp.WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, model.ErrInsufficientFunds):
		resp.WriteError(w, http.StatusBadRequest, "insufficient_funds", err.Error())
	case errors.Is(err, model.ErrAccountNotPlayable):
		resp.WriteError(w, http.StatusForbidden, "account_state_error", err.Error())
	case errors.Is(err, model.ErrUserNotFound):
		resp.WriteError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		resp.WriteError(w, http.StatusInternalServerError, "settlement_failure", "play failed")
	}
}
