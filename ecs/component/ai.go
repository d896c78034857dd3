package component

// AIState tracks the current scripted FSM state for an enemy.
type AIState struct {
	Current string
	Script  string
}

var AIStateComponent = NewComponent[AIState]()
