package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data for an actor. Ragdoll is set
// once physics has taken over the body's motion.
type PhysicsBody struct {
	Body    *cp.Body
	Shape   *cp.Shape
	Radius  float64
	Ragdoll bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
