package session

import "fmt"

func (gss GameSessionState) Name() string {
	switch gss {
	case GS_PLAY:
		return "GS_PLAY"
	case GS_OVER:
		return "GS_OVER"
	case GS_VICTORY:
		return "GS_VICTORY"
	default:
		return fmt.Sprintf("n/a:%d", gss)
	}
}

func (gss GameSessionState) Terminal() bool {
	return gss == GS_OVER || gss == GS_VICTORY
}

func (k OutcomeKind) Name() string {
	switch k {
	case OUTCOME_CONTINUE:
		return "CONTINUE"
	case OUTCOME_GAME_OVER:
		return "GAME_OVER"
	case OUTCOME_VICTORY:
		return "VICTORY"
	default:
		return "N/A"
	}
}

func (pr PlantResult) Name() string {
	switch pr {
	case PLANT_OK:
		return "OK"
	case PLANT_AT_CAPACITY:
		return "AT_CAPACITY"
	case PLANT_COOLDOWN:
		return "COOLDOWN"
	case PLANT_BLOCKED:
		return "BLOCKED"
	case PLANT_OCCUPIED:
		return "OCCUPIED"
	case PLANT_FINISHED:
		return "FINISHED"
	default:
		return fmt.Sprintf("n/a:%d", pr)
	}
}

func (pr PlantResult) Ok() bool {
	return pr == PLANT_OK
}

func (k EventKind) Name() string {
	switch k {
	case EV_PLANT:
		return "PLANT"
	case EV_DETONATE:
		return "DETONATE"
	case EV_WALL_DESTROYED:
		return "WALL_DESTROYED"
	case EV_PICKUP_DROPPED:
		return "PICKUP_DROPPED"
	case EV_PICKUP_TAKEN:
		return "PICKUP_TAKEN"
	case EV_PLAYER_HIT:
		return "PLAYER_HIT"
	case EV_ENEMY_DOWN:
		return "ENEMY_DOWN"
	case EV_GAME_OVER:
		return "GAME_OVER"
	case EV_VICTORY:
		return "VICTORY"
	default:
		return fmt.Sprintf("n/a:%d", k)
	}
}
