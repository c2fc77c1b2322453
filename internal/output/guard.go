package output

import (
	"jsonpolish/internal/errors"
	"jsonpolish/internal/jsonvalue"
)

// ancestry tracks the containers on the current path from the root. A
// container that shows up again while it is still on the path is a cycle.
// Containers leave the path on return, so a value shared by two siblings
// is not a cycle.
type ancestry struct {
	onPath map[jsonvalue.Value]struct{}
}

func newAncestry() *ancestry {
	return &ancestry{onPath: make(map[jsonvalue.Value]struct{})}
}

// enter pushes a container and fails if it is already an ancestor.
func (a *ancestry) enter(v jsonvalue.Value) error {
	if _, ok := a.onPath[v]; ok {
		return errors.NewPolishError(errors.CircularStructure, errors.ErrCircular.Message, nil)
	}
	a.onPath[v] = struct{}{}
	return nil
}

func (a *ancestry) leave(v jsonvalue.Value) {
	delete(a.onPath, v)
}
