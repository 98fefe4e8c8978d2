// Package reactions picks the flavor-text one-liner appended to a
// scored submission reply.
//
// themes.go holds the canned phrase pools, keyed by the attempts token.
package reactions

// Themes maps an attempts token ("1".."6", "X") to its phrase pool.
var Themes = map[string][]string{
	"1": {
		"Mind = blown. 🚀🧠",
		"Wordle speedrun world record. ⏱️",
		"You guessed it faster than I open the app. 🫡",
		"That was surgical. 🔪🟩",
		"We're not worthy! 🙇",
	},
	"2": {
		"Two tries? You're on fire. 🔥",
		"This is your Wordle era. 👑",
		"Smooth like butter. 🧈🟩",
		"You guessed that like you *knew*. 🕵️",
		"That was unreasonably efficient. 💼",
	},
	"3": {
		"Triple threat Wordler. 🧠🧠🧠",
		"This is the sweet spot. 🎯",
		"Textbook Wordle form. 📘",
		"Your guessing instincts are elite. 🧭",
		"That was a clinic. 🧑‍🏫",
	},
	"4": {
		"Solid as a rock. 🪨",
		"Respectable mid-game win. 🤝",
		"Clean. Controlled. Clever. 🧠",
		"Classic Wordle finish. 🟨🟩🟨",
		"That was chess, not checkers. ♟️",
	},
	"5": {
		"You were flirting with danger. 😬",
		"Wordle wanted to win, but you didn't let it. ✊",
		"That was a rescue mission. 🚁",
		"5 tries but you got there. 🧗",
		"Held on like a pro. 🧤",
	},
	"6": {
		"Clutch save! 🧤🟩",
		"That was close. Real close. 🫠",
		"Survived with 1 guess to spare. 😅",
		"That was a Wordle thriller. 🎬",
		"You walked the line and didn't fall. 🤹",
	},
	"X": {
		"Brutal. But we still believe in you. 🥀",
		"Not your day, huh? It happens. 🍵",
		"We've all been there. 🫂",
		"Take a breath and Wordle on. 🌬️",
		"Next time: vengeance. 🗡️",
	},
}

// Fallback is used when a pool is missing or exhausted.
const Fallback = "Nice Wordle!"
