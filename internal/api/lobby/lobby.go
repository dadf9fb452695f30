package lobby

import (
	"net/http"

	dto "game_backend/internal/api/dto/lobby"
	"game_backend/internal/converter"
	"game_backend/internal/model"
	"game_backend/internal/service"
	"game_backend/pkg/req"
	"game_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LobbyService
}

type Handler struct {
	serv service.LobbyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// PlaceBet принимает ставку в текущий раунд
func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlaceBetRequest](r.Body)
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.PlaceBetResponse{
			Success: false,
			Message: "invalid request",
		})
		return
	}

	err = h.serv.PlaceBet(r.Context(), payload.Stake, model.Side(payload.Side))
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.PlaceBetResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.PlaceBetResponse{Success: true})
}

// State возвращает снимок текущего раунда
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	snapshot := h.serv.Snapshot(r.Context())
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSnapshotResponse(snapshot))
}

// Override устанавливает ручное решение раунда
func (h *Handler) Override(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.OverrideRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.serv.SetOverride(model.Side(payload.Decision)); err != nil {
		resp.WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}
