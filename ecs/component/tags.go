package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type AITag struct{}

var AITagComponent = NewComponent[AITag]()

// Name is a human readable label used in logs and reports.
type Name string

var NameComponent = NewComponent[Name]()
