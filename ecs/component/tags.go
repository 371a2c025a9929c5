package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type TurretTag struct{}

var TurretTagComponent = NewComponent[TurretTag]()
