package lobby

import (
	"context"

	"game_backend/internal/middleware"
	"game_backend/internal/model"
)

// Snapshot Снимок текущего раунда.
// Авторизованный вызывающий попадает в окно активных игроков
func (s *serv) Snapshot(ctx context.Context) model.RoundSnapshot {
	callerID, _ := middleware.UserIDFromContext(ctx)
	return s.roundRepo.Snapshot(callerID)
}
