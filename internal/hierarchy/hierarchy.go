// Package hierarchy строит дерево подразделений из плоского списка,
// выдаёт порядок отображения (родитель перед детьми) и сопоставляет
// каждое подразделение с его корневым предком.
//
// Идентификаторы приводятся к строкам до вызова пакета. Пакет не выполняет
// ввода-вывода и не хранит состояние, поэтому безопасен для параллельного
// использования.
package hierarchy

import "fmt"

// Department - снимок подразделения. Пустой ParentID означает отсутствие родителя.
type Department struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// Entry - элемент плоского списка с глубиной (0 - корень)
type Entry struct {
	Department Department `json:"department"`
	Level      int        `json:"level"`
}

// Node - узел построенного дерева
type Node struct {
	Department Department `json:"department"`
	Level      int        `json:"level"`
	Children   []*Node    `json:"children,omitempty"`
}

// Warning - нарушение целостности, обнаруженное при построении
type Warning struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Message        string `json:"message"`
}

// Result - результат построения иерархии
type Result struct {
	Flattened                []Entry           `json:"flattened"`
	Roots                    []*Node           `json:"roots"`
	RootNameByDepartmentName map[string]string `json:"root_name_by_department_name"`
	Warnings                 []Warning         `json:"warnings,omitempty"`
}

// RootOf возвращает имя корня для подразделения. Неизвестное имя
// считается собственным корнем.
func (r Result) RootOf(name string) string {
	if root, ok := r.RootNameByDepartmentName[name]; ok {
		return root
	}
	return name
}

type node struct {
	dept     Department
	children []*node
}

// Build строит иерархию.
//
// Родитель, отсутствующий в списке, трактуется как отсутствие родителя.
// Цикл в цепочке родителей разрывается: член цикла, стоящий первым во
// входном списке, становится корнем, а в Warnings добавляется запись.
// Подразделения, лежащие под циклом, остаются у своих родителей.
func Build(departments []Department) Result {
	nodes := make([]*node, 0, len(departments))
	byID := make(map[string]*node, len(departments))
	for _, d := range departments {
		n := &node{dept: d}
		nodes = append(nodes, n)
		if _, dup := byID[d.ID]; !dup {
			byID[d.ID] = n
		}
	}

	res := Result{
		Flattened:                make([]Entry, 0, len(nodes)),
		Roots:                    []*Node{},
		RootNameByDepartmentName: make(map[string]string, len(nodes)),
	}

	var roots []*node
	for _, n := range nodes {
		parent, ok := byID[n.dept.ParentID]
		switch {
		case n.dept.ParentID == "" || !ok:
			roots = append(roots, n)
		case parent == n:
			// ссылка на самого себя - цикл длины 1
			roots = append(roots, n)
			res.Warnings = append(res.Warnings, cycleWarning(n.dept))
		default:
			parent.children = append(parent.children, n)
		}
	}

	visited := make(map[*node]bool, len(nodes))
	for _, r := range roots {
		res.Roots = append(res.Roots, res.walk(r, 0, r.dept.Name, visited))
	}

	// Всё непосещённое лежит в цикле или под ним. Корнем становится член
	// цикла, а подразделения под циклом остаются у своих родителей.
	index := make(map[*node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	for _, n := range nodes {
		if visited[n] {
			continue
		}
		root := cycleEntry(n, byID, index)
		res.Warnings = append(res.Warnings, cycleWarning(root.dept))
		res.Roots = append(res.Roots, res.walk(root, 0, root.dept.Name, visited))
	}

	return res
}

// cycleEntry поднимается по родителям от n до первого повтора и возвращает
// член найденного цикла, стоящий раньше всех во входном списке
func cycleEntry(n *node, byID map[string]*node, index map[*node]int) *node {
	seen := make(map[*node]bool)
	cur := n
	for !seen[cur] {
		seen[cur] = true
		cur = byID[cur.dept.ParentID]
	}

	first := cur
	for m := byID[cur.dept.ParentID]; m != cur; m = byID[m.dept.ParentID] {
		if index[m] < index[first] {
			first = m
		}
	}
	return first
}

func (res *Result) walk(n *node, level int, rootName string, visited map[*node]bool) *Node {
	visited[n] = true

	res.Flattened = append(res.Flattened, Entry{Department: n.dept, Level: level})
	if _, seen := res.RootNameByDepartmentName[n.dept.Name]; !seen {
		res.RootNameByDepartmentName[n.dept.Name] = rootName
	}

	out := &Node{Department: n.dept, Level: level}
	for _, child := range n.children {
		if visited[child] {
			continue
		}
		out.Children = append(out.Children, res.walk(child, level+1, rootName, visited))
	}
	return out
}

func cycleWarning(d Department) Warning {
	return Warning{
		DepartmentID:   d.ID,
		DepartmentName: d.Name,
		Message:        fmt.Sprintf("parent chain of department %q forms a cycle; treated as root", d.Name),
	}
}

// BuildRootNameMap возвращает соответствие имя подразделения -> имя корня
func BuildRootNameMap(departments []Department) map[string]string {
	return Build(departments).RootNameByDepartmentName
}

// ResolveRootName находит корень для одного имени с тождественным
// значением по умолчанию
func ResolveRootName(departmentName string, departments []Department) string {
	return Build(departments).RootOf(departmentName)
}
