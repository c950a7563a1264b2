package components

import "github.com/yohamta/donburi/ecs"

// LayerDefault is the only render layer; draw order follows AddRenderer order.
const LayerDefault ecs.LayerID = iota
