package input

import "sort"

// actionRegistry maps canonical action names to actions
// Used by the key config loader to resolve action strings to bindings
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		actionRegistry[name] = Action(a)
	}
}

// ActionByName resolves a canonical action name; "none" is the unbind sentinel
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// IsActionName returns true if name is a registered action
func IsActionName(name string) bool {
	_, ok := actionRegistry[name]
	return ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
