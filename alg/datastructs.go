package alg

// StackArray is an int stack backed by a slice; the top is the last element.
type StackArray struct {
	Array []int
}

func (s *StackArray) Push(val int) {
	s.Array = append(s.Array, val)
}

func (s *StackArray) Pop() (int, bool) {
	if s.Size() == 0 {
		return 0, false
	}
	retval := s.Array[len(s.Array)-1]
	s.Array = s.Array[:len(s.Array)-1]
	return retval, true
}

func (s *StackArray) Peek() (int, bool) {
	if s.Size() == 0 {
		return 0, false
	}
	return s.Array[len(s.Array)-1], true
}

func (s *StackArray) Size() int {
	return len(s.Array)
}

func NewStackArray(size int) *StackArray {
	return &StackArray{make([]int, 0, size)}
}
