package model_test

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/specimens/model"
	"github.com/katalvlaran/specimens/numeric"
	"github.com/katalvlaran/specimens/specimens"
)

// A todo list driven by actions. The reducer enters a failure state on
// duplicate or unknown ids and stays there.

type todoKind string

const (
	addTodo    todoKind = "add"
	deleteTodo todoKind = "delete"
	toggleTodo todoKind = "toggle"
	moveTodo   todoKind = "move"
)

type todoAction struct {
	Kind    todoKind
	ID      string
	ToIndex int
}

type todoItem struct {
	Text    string
	Checked bool
}

type todoState struct {
	Failure string // empty while the list is consistent
	Order   []string
	ByID    map[string]todoItem
	Created int
}

var initialTodos = todoState{ByID: map[string]todoItem{}}

func (s todoState) failWith(reason string) todoState {
	s.Failure = reason
	return s
}

func reduceTodos(s todoState, a todoAction) todoState {
	if s.Failure != "" {
		return s
	}
	exists := slices.Contains(s.Order, a.ID)

	switch a.Kind {
	case addTodo:
		if exists {
			return s.failWith("duplicate id")
		}
		byID := cloneItems(s.ByID)
		byID[a.ID] = todoItem{}
		return todoState{Order: append(slices.Clone(s.Order), a.ID), ByID: byID, Created: s.Created + 1}
	case deleteTodo:
		if !exists {
			return s.failWith("non-existent id")
		}
		byID := cloneItems(s.ByID)
		delete(byID, a.ID)
		order := slices.DeleteFunc(slices.Clone(s.Order), func(id string) bool { return id == a.ID })
		return todoState{Order: order, ByID: byID, Created: s.Created}
	case toggleTodo:
		if !exists {
			return s.failWith("non-existent id")
		}
		byID := cloneItems(s.ByID)
		it := byID[a.ID]
		it.Checked = !it.Checked
		byID[a.ID] = it
		return todoState{Order: s.Order, ByID: byID, Created: s.Created}
	case moveTodo:
		if !exists {
			return s.failWith("non-existent id")
		}
		order := slices.DeleteFunc(slices.Clone(s.Order), func(id string) bool { return id == a.ID })
		order = slices.Insert(order, min(a.ToIndex, len(order)), a.ID)
		return todoState{Order: order, ByID: s.ByID, Created: s.Created}
	}
	return s.failWith("unknown action")
}

func cloneItems(m map[string]todoItem) map[string]todoItem {
	out := make(map[string]todoItem, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// terminateIfFailedOr stops the trajectory once the reducer has failed.
func terminateIfFailedOr(next func(todoState) model.Transition[todoAction]) func(todoState) model.Transition[todoAction] {
	return func(s todoState) model.Transition[todoAction] {
		if s.Failure != "" {
			return model.Terminate[todoAction]()
		}
		return next(s)
	}
}

// existing offers an action on one of the current ids.
func existing(kind todoKind) func(todoState) model.Transition[todoAction] {
	return terminateIfFailedOr(func(s todoState) model.Transition[todoAction] {
		if len(s.Order) == 0 {
			return model.NotApplicable[todoAction]()
		}
		ids := specimens.Map(specimens.Item(s.Order), func(id string) todoAction {
			return todoAction{Kind: kind, ID: id}
		})
		return model.Applicable(1, ids)
	})
}

var todoDefinitions = []model.Definition[todoState, todoAction]{
	{Name: "add", Fn: terminateIfFailedOr(func(s todoState) model.Transition[todoAction] {
		// fresh ids: every add gets its own block of ten
		suffix := specimens.Integer(numeric.Constant(numeric.Int, 0, 9))
		return model.Applicable(5, specimens.Map(suffix, func(k int) todoAction {
			return todoAction{Kind: addTodo, ID: strconv.Itoa(s.Created*10 + k)}
		}))
	})},
	{Name: "delete", Fn: existing(deleteTodo)},
	{Name: "toggle", Fn: existing(toggleTodo)},
	{Name: "move", Fn: terminateIfFailedOr(func(s todoState) model.Transition[todoAction] {
		if len(s.Order) == 0 {
			return model.NotApplicable[todoAction]()
		}
		moves := specimens.Map2(
			specimens.Item(s.Order),
			specimens.Integer(numeric.Constant(numeric.Int, 0, len(s.Order)-1)),
			func(id string, to int) todoAction { return todoAction{Kind: moveTodo, ID: id, ToIndex: to} },
		)
		return model.Applicable(1, moves)
	})},
}

func todoTrajectories() specimens.Generator[model.Step[todoState, todoAction]] {
	return model.FromReducer(initialTodos, reduceTodos, todoDefinitions)
}
