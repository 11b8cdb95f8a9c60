package typegen

// Cycles maps every declaration that can reach itself to the index of
// its strongly connected component.
type Cycles map[string]int

// Joins reports whether from and to lie on a common cycle, so a
// reference between them must be held indirectly.
func (c Cycles) Joins(from, to string) bool {
	a, ok := c[from]
	if !ok {
		return false
	}
	b, ok := c[to]
	return ok && a == b
}

// Cycles finds the declarations that reference themselves through the
// types edges returns. Only named references are followed; sequence and
// map elements are left to the caller to include or not.
func (r *Registry) Cycles(edges func(Decl) []TypeRef) Cycles {
	graph := make(map[string][]string, len(r.decls))
	var order []string
	for _, d := range r.Decls() {
		name := d.DeclName().Name
		order = append(order, name)
		for _, t := range edges(d) {
			if t.Kind == TypeNamed {
				if _, ok := r.decls[t.Name]; ok {
					graph[name] = append(graph[name], t.Name)
				}
			}
		}
	}

	s := &sccState{
		graph: graph,
		index: make(map[string]int),
		low:   make(map[string]int),
		on:    make(map[string]bool),
		out:   make(Cycles),
	}
	for _, name := range order {
		if _, seen := s.index[name]; !seen {
			s.visit(name)
		}
	}
	return s.out
}

// Tarjan's strongly connected components.
type sccState struct {
	graph map[string][]string
	index map[string]int
	low   map[string]int
	on    map[string]bool
	stack []string
	next  int
	comps int
	out   Cycles
}

func (s *sccState) visit(v string) {
	s.index[v] = s.next
	s.low[v] = s.next
	s.next++
	s.stack = append(s.stack, v)
	s.on[v] = true

	selfLoop := false
	for _, w := range s.graph[v] {
		if w == v {
			selfLoop = true
		}
		if _, seen := s.index[w]; !seen {
			s.visit(w)
			s.low[v] = min(s.low[v], s.low[w])
		} else if s.on[w] {
			s.low[v] = min(s.low[v], s.index[w])
		}
	}

	if s.low[v] != s.index[v] {
		return
	}
	var comp []string
	for {
		w := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.on[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	if len(comp) > 1 || selfLoop {
		for _, w := range comp {
			s.out[w] = s.comps
		}
		s.comps++
	}
}
