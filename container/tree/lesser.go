package tree

// Lesser compares two values
type Lesser interface {
	// Less returns
	//  -1 if a < b
	//   0 if a == b
	//   1 if a > b
	Less(a, b int) int
}

// IntLesser implementation of the Lesser interface for
// the natural order of integers
type IntLesser struct{}

// Less returns
//  -1 if a < b
//   0 if a == b
//   1 if a > b
func (IntLesser) Less(a, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	} else {
		return 0
	}
}

// LesserFunc allows a function to act as a Lesser
type LesserFunc func(a, b int) int

// Less is the implementation of Lesser for LesserFunc
func (f LesserFunc) Less(a, b int) int {
	return f(a, b)
}
