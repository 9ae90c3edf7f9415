package core

// ScreenStack is the navigator: the top screen is the only one receiving
// input and rendering; everything below it stays allocated with its cursor
// state intact until it is popped back into view.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// Replace swaps the top screen for another, so sibling sub-pages share the
// same owner instead of stacking on each other.
func (s *ScreenStack) Replace(screen Screen) {
	if screen == nil {
		return
	}
	if len(s.items) == 0 {
		s.items = []Screen{screen}
		return
	}
	s.items[len(s.items)-1] = screen
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Under returns the screen directly beneath the top, the owner a popup
// renders over.
func (s ScreenStack) Under() Screen {
	if len(s.items) < 2 {
		return nil
	}
	return s.items[len(s.items)-2]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

// Path returns the live root-to-top chain of screen titles.
func (s ScreenStack) Path() []string {
	out := make([]string, 0, len(s.items))
	for _, sc := range s.items {
		out = append(out, sc.Title())
	}
	return out
}
