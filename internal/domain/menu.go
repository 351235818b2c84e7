package domain

import "fmt"

// MenuButton кнопка меню: подпись и идентификатор целевого узла
type MenuButton struct {
	Label  string
	Target string
}

// MenuLeaf лист меню - запускает сбор заявки на инспекцию
type MenuLeaf struct {
	InspectionType string // значение для поля inspection_type заявки
	Instructions   string // чек-лист требований + приглашение ввести примечания
}

// MenuNode узел дерева меню. Либо содержит кнопки переходов,
// либо является листом (Leaf != nil) и запускает форму.
type MenuNode struct {
	ID      string
	Title   string
	Buttons []MenuButton
	Leaf    *MenuLeaf
}

// IsLeaf true если узел запускает сбор заявки
func (n *MenuNode) IsLeaf() bool {
	return n.Leaf != nil
}

// MenuTree статичное дерево меню. Все переходы объявлены явно и
// проверяются при построении: опечатка в идентификаторе кнопки -
// ошибка старта приложения, а не мёртвая кнопка в проде.
type MenuTree struct {
	rootID  string
	nodes   map[string]*MenuNode
	actions map[string]struct{}
}

// NewMenuTree строит дерево и валидирует переходы.
// actions - идентификаторы кнопок-действий (списки, отчёты): они не ведут
// в узлы дерева, их обрабатывает usecase напрямую.
func NewMenuTree(rootID string, nodes []*MenuNode, actions []string) (*MenuTree, error) {
	index := make(map[string]*MenuNode, len(nodes))
	for _, node := range nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("menu node without id")
		}
		if _, exists := index[node.ID]; exists {
			return nil, fmt.Errorf("duplicate menu node id: %s", node.ID)
		}
		if node.IsLeaf() && len(node.Buttons) > 0 {
			return nil, fmt.Errorf("menu leaf %s must not have buttons", node.ID)
		}
		index[node.ID] = node
	}

	if _, ok := index[rootID]; !ok {
		return nil, fmt.Errorf("root menu node %s is not defined", rootID)
	}

	actionIndex := make(map[string]struct{}, len(actions))
	for _, action := range actions {
		if _, exists := index[action]; exists {
			return nil, fmt.Errorf("action %s conflicts with a menu node id", action)
		}
		actionIndex[action] = struct{}{}
	}

	// Проверяем, что каждая кнопка ведёт в существующий узел или действие
	for _, node := range nodes {
		for _, button := range node.Buttons {
			if _, ok := index[button.Target]; ok {
				continue
			}
			if _, ok := actionIndex[button.Target]; ok {
				continue
			}
			return nil, fmt.Errorf("menu node %s: button %q targets unknown node %s",
				node.ID, button.Label, button.Target)
		}
	}

	return &MenuTree{
		rootID:  rootID,
		nodes:   index,
		actions: actionIndex,
	}, nil
}

// IsAction true если идентификатор объявлен как кнопка-действие
func (t *MenuTree) IsAction(id string) bool {
	_, ok := t.actions[id]
	return ok
}

// Root возвращает корневой узел
func (t *MenuTree) Root() *MenuNode {
	return t.nodes[t.rootID]
}

// RootID возвращает идентификатор корневого узла
func (t *MenuTree) RootID() string {
	return t.rootID
}

// Resolve возвращает узел по идентификатору выбора.
// ok == false означает "неизвестный выбор" - вызывающий слой его игнорирует.
func (t *MenuTree) Resolve(id string) (*MenuNode, bool) {
	node, ok := t.nodes[id]
	return node, ok
}
