package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMotion    = 10
	PriorityObstacle  = 20 // After motion, before spawn (advance + prune)
	PrioritySpawn     = 30
	PriorityCollision = 40
	PriorityScore     = 50
)
