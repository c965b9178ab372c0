// Package game runs a single provably fair round of generalized
// rock-paper-scissors.
//
// The main type is Game, which is built once from a validated move set and
// hands out Rounds. A Round commits to the computer's move before any input is
// read and only reveals its key once the human has played.
//
// # Basic Usage
//
//	moves, _ := moveset.New([]string{"Rock", "Paper", "Scissors"})
//	g, _ := game.New(moves)
//	round, _ := g.NewRound()
//	fmt.Println("HMAC:", round.Commitment())
//	res, _ := round.Play(1) // human picked Paper
//	fmt.Println(res.Outcome, res.Key)
//
// # Deterministic Testing
//
// Inject a seeded picker and a fixed key reader:
//
//	g, _ := game.New(moves,
//	    game.WithPicker(randutil.New(42)),
//	    game.WithKeyReader(bytes.NewReader(fixedKey)))
//
// # Interactive Sessions
//
// Session drives the menu loop over a LineReader and an io.Writer. Outcomes
// are always reported from the human's side.
package game
