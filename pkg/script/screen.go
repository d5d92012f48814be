package script

// ScreenDefinition is one recorded screen: a code-safe identifier plus
// the ordered action sequence. Immutable once handed to the emitter.
type ScreenDefinition struct {
	Name    string
	Actions []Action
}
