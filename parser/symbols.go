package parser

// Variable is a named input of an expression. Index is assigned in order of
// first appearance, starting at 0.
type Variable struct {
	Name  string
	Index int
}

// SymbolTable assigns stable indexes to variable names for one parse.
type SymbolTable struct {
	vars  []Variable
	index map[string]int
}

// NewSymbolTable creates an empty SymbolTable
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// Declare returns the index of name, assigning the next free index on first use.
func (s *SymbolTable) Declare(name string) int {
	if idx, ok := s.index[name]; ok {
		return idx
	}

	idx := len(s.vars)
	s.vars = append(s.vars, Variable{Name: name, Index: idx})
	s.index[name] = idx

	return idx
}

// Lookup returns the index of a declared name.
func (s *SymbolTable) Lookup(name string) (int, bool) {
	idx, ok := s.index[name]
	return idx, ok
}

// Len returns the number of declared variables.
func (s *SymbolTable) Len() int {
	return len(s.vars)
}

// Variables returns a copy of the declared variables in index order.
func (s *SymbolTable) Variables() []Variable {
	return append([]Variable(nil), s.vars...)
}
