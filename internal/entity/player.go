package entity

// BotID is the synthetic identity the heuristic opponent plays under.
const BotID int64 = 0

type Player struct {
	ID   int64
	Name string
	Mark Mark
}

func (that *Player) IsBot() bool {
	return that.ID == BotID
}
