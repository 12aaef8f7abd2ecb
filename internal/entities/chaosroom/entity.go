package chaosroom

import "github.com/KirkDiggler/rpg-toolkit/core"

var (
	_ core.Entity = (*Player)(nil)
	_ core.Entity = (*Monster)(nil)
)
