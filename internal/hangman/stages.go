// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hangman

// stages holds the gallows figure for 0 through MaxWrong wrong guesses.
var stages = [MaxWrong + 1]string{
	`
   _______
  |       |
  |
  |
  |
  |
__|__
`,
	`
   _______
  |       |
  |       O
  |
  |
  |
__|__
`,
	`
   _______
  |       |
  |       O
  |       |
  |
  |
__|__
`,
	`
   _______
  |       |
  |       O
  |      /|
  |
  |
__|__
`,
	`
   _______
  |       |
  |       O
  |      /|\
  |
  |
__|__
`,
	`
   _______
  |       |
  |       O
  |      /|\
  |      /
  |
__|__
`,
	`
   _______
  |       |
  |       O
  |      /|\
  |      / \
  |
__|__
`,
}

// Stage returns the figure for the given number of wrong guesses, clamped
// to the available range.
func Stage(wrong int) string {
	if wrong < 0 {
		wrong = 0
	}
	if wrong > MaxWrong {
		wrong = MaxWrong
	}
	return stages[wrong]
}
