package stabilizer

// Bot plays by pressing random keys. It drives headless runs and soak
// tests; it makes no attempt to play well.
type Bot struct {
	rng Randomizer
}

// NewBot creates a bot that draws its moves from rng.
func NewBot(rng Randomizer) *Bot {
	return &Bot{rng: rng}
}

// Act performs at most one random input on s and reports whether the
// session changed. Half of the calls do nothing so gravity gets a turn.
func (b *Bot) Act(s *Session) bool {
	switch b.rng.Intn(8) {
	case 0:
		return s.MoveLeft()
	case 1:
		return s.MoveRight()
	case 2:
		return s.Rotate()
	case 3:
		res := s.SoftDrop()
		return res.Moved || res.Locked
	}
	return false
}
