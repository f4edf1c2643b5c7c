package engine

// System is one stage of the Running frame pass
type System interface {
	// Update advances the system by dt seconds
	Update(w *World, dt float64)
	Priority() int // Lower values run first
}
