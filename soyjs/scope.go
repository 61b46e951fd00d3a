package soyjs

// scope provides a lookup from template variable name to the JS name.
// it is pushed and popped upon entering and leaving loop scopes.
type scope struct {
	stack []map[string]string
}

func (s *scope) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

// pushForEach opens a loop scope binding loopVar to the iteration callback's
// parameter of the same name, and returns that name.
func (s *scope) pushForEach(loopVar string) string {
	s.stack = append(s.stack, map[string]string{loopVar: loopVar})
	return loopVar
}

// lookup returns the JS name of the innermost loop variable called varname,
// or the empty string if none is in scope.
func (s *scope) lookup(varname string) string {
	for i := range s.stack {
		val, ok := s.stack[len(s.stack)-i-1][varname]
		if ok {
			return val
		}
	}
	return ""
}
