package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type BatTag struct{}

var BatTagComponent = NewComponent[BatTag]()
