package lobby

import (
	"log"

	"game_backend/internal/model"
)

// SetOverride Ручное решение текущего раунда.
// Действует только в фазе вращения, в остальных фазах
// молча игнорируется (с записью в лог)
func (s *serv) SetOverride(side model.Side) error {
	if side != model.SideWin && side != model.SideLoss {
		return model.ErrInvalidSide
	}

	if !s.roundRepo.SetOverride(side) {
		log.Printf("admin override %q ignored: round is not in spinning phase", side)
	}
	return nil
}
