// texts.go holds the static command replies.
package bot

const rulesText = `📜 *Wordle Workers Official Rules:*

✅ Share your daily Wordle results — no lurking! 👀
✅ Points: a base score by attempts plus bonus points for 🟩 and 🟨
✅ Double Points every Friday! 🎉
✅ Daily winner crowned every morning 👑
✅ Weekly champion announced every Monday 🏆
✅ Monthly champion announced on the 1st 🗓️

Brag loudly — lose gracefully — Wordle fiercely! 🎯`

const scoringText = `🧮 *How scoring works:*

Base score by attempts: 1/6 → 60, 2/6 → 50, 3/6 → 40, 4/6 → 30, 5/6 → 20, 6/6 → 10, X/6 → 0.

Then the grid earns extra, row by row:
🟩 first green at a column scores its row value (earlier rows are worth more)
🟨 first yellow at a column scores a smaller value
🟨→🟩 upgrading a yellow to green gets a transition bonus
🟩🟩🟩🟩🟩 before the last guess earns a full-row bonus
⬛⬛⬛⬛⬛ rows cost you a small penalty

Repeated info scores nothing — only first reveals count.
Fail (X/6) scores 0 flat, grid or no grid.

🎉 Everything doubles on double-points day.
Final score is a *decimal*, shown like 46.6 pts, to reduce ties.`

const helpText = `🤖 *Wordle Workers Bot*

Just paste your Wordle share to submit your score.
Add the word "archive" if it's a backfilled past puzzle (scored, not logged).

/leaderboard — today's board 📈
/weeklyleaderboard — this week so far 📅
/monthlyleaderboard — this month so far 🗓️
/lastmonthleaderboard — last month's final board 🗓️
/lastweekchamp — last week's champion 👑
/top10 — all-time top ten 🏅
/streakleaderboard — current streaks 🔥
/myrank — see your current rank 🏅
/rules — group rules 📜
/scoring — how scoring works 🧮
/about — about this bot
/ping — check I'm alive 🏓`

const aboutText = `🤖 I keep score for the Wordle Workers group: parsing grids, counting streaks and crowning champions.

Submit by pasting your share text. I handle the rest — including judging you on a 1-day streak. 💩`
