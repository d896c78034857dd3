package component

// Input stores per-frame polled input state for an entity.
type Input struct {
	MoveX         float64
	MoveY         float64
	AttackPressed bool
	RollPressed   bool
}

var InputComponent = NewComponent[Input]()
