package components

import (
	"github.com/nhawngkun/Chirpy-Winged/assets"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Layout *assets.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
