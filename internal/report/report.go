// Package report renders games, stored results and catalogs as styled
// terminal tables.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/core"
	"github.com/vovakirdan/casino/internal/match"
	"github.com/vovakirdan/casino/internal/registry"
	"github.com/vovakirdan/casino/internal/rules"
	"github.com/vovakirdan/casino/internal/storage"
)

// DefaultWidth is used when the terminal size is unknown.
const DefaultWidth = 80

// Renderer turns results into strings no wider than its width.
type Renderer struct {
	width int
	theme Theme
}

// New creates a renderer. A width below 20 falls back to DefaultWidth.
func New(width int, theme Theme) *Renderer {
	if width < 20 {
		width = DefaultWidth
	}
	return &Renderer{width: width, theme: theme}
}

// ForTerminal picks the theme and width for f: colors and the terminal
// width on a TTY, the plain theme at DefaultWidth otherwise.
func ForTerminal(f *os.File) *Renderer {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return New(DefaultWidth, PlainTheme())
	}
	width := DefaultWidth
	if w, _, err := term.GetSize(fd); err == nil {
		width = w
	}
	return New(width, DefaultTheme())
}

// Width returns the maximum line width.
func (r *Renderer) Width() int { return r.width }

// table renders headers and rows. highlight selects cells drawn with the
// winner style.
func (r *Renderer) table(headers []string, rows [][]string, highlight func(row, col int) bool) string {
	t := table.New().
		Border(r.theme.TableBorder).
		BorderStyle(r.theme.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.theme.Header
			case highlight != nil && highlight(row, col):
				return r.theme.Winner
			default:
				return r.theme.Cell
			}
		})

	out := t.String()
	if lipgloss.Width(out) > r.width {
		out = t.Width(r.width).String()
	}
	return out
}

func (r *Renderer) title(s string) string {
	return r.theme.Title.Render(s)
}

// Game renders the outcome of one match and the per-category breakdown of
// both players.
func (r *Renderer) Game(res match.Result) string {
	var sb strings.Builder

	sb.WriteString(r.title(fmt.Sprintf("%s game %s", res.Variant, shortID(res.ID.String()))))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %d - %d %s", res.Names[0], res.Scores[0], res.Scores[1], res.Names[1]))
	if w := res.WinnerName(); w != "" {
		sb.WriteString(fmt.Sprintf(", %s wins", w))
	} else {
		sb.WriteString(fmt.Sprintf(", %s", res.Reason))
	}
	sb.WriteString("\n")
	sb.WriteString(r.theme.Dim.Render(fmt.Sprintf("seed %d, %d hands, %d turns, %s",
		res.Seed, res.Hands, res.Turns, res.Duration.Round(time.Millisecond))))
	sb.WriteString("\n")
	sb.WriteString(r.Breakdown(res.Names, res.Breakdowns, res.Winner))
	return sb.String()
}

// Breakdown renders category points side by side. Categories where neither
// player scored are omitted.
func (r *Renderer) Breakdown(names [2]string, bd [2]rules.Breakdown, winner casino.PlayerID) string {
	var rows [][]string
	for _, cat := range rules.CategoryOrder() {
		a, b := bd[0][cat], bd[1][cat]
		if a == 0 && b == 0 {
			continue
		}
		rows = append(rows, []string{string(cat), fmt.Sprint(a), fmt.Sprint(b)})
	}
	rows = append(rows, []string{"Total", fmt.Sprint(bd[0].Total()), fmt.Sprint(bd[1].Total())})

	last := len(rows) - 1
	return r.table([]string{"Category", names[0], names[1]}, rows, func(row, col int) bool {
		return row == last && winner.Valid() && col == int(winner)+1
	})
}

// Hands renders the score progression of a match hand by hand.
func (r *Renderer) Hands(res match.Result) string {
	rows := make([][]string, 0, len(res.HandResults))
	for _, hr := range res.HandResults {
		rows = append(rows, []string{
			fmt.Sprint(hr.Hand),
			res.Names[hr.Dealer],
			fmt.Sprintf("+%d", hr.Awards[0].Points),
			fmt.Sprintf("+%d", hr.Awards[1].Points),
			fmt.Sprintf("%d - %d", hr.Scores[0], hr.Scores[1]),
			fmt.Sprintf("%d/%d", hr.Sweeps[0], hr.Sweeps[1]),
		})
	}
	return r.table([]string{"Hand", "Dealer", res.Names[0], res.Names[1], "Score", "Sweeps"}, rows, nil)
}

// Summary renders wins per seat over a batch of matches.
func (r *Renderer) Summary(results []match.Result) string {
	type seatTotals struct {
		strategy string
		wins     int
		points   int
	}
	var seats [2]seatTotals
	unfinished := 0
	for _, res := range results {
		for i := range seats {
			seats[i].strategy = res.Strategies[i]
			seats[i].points += res.Scores[i]
		}
		if res.Winner.Valid() {
			seats[res.Winner].wins++
		} else {
			unfinished++
		}
	}

	n := len(results)
	rows := make([][]string, 0, 2)
	for i, s := range seats {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.strategy,
			fmt.Sprint(s.wins),
			percent(s.wins, n),
			fmt.Sprintf("%.1f", ratio(s.points, n)),
		})
	}
	best := 0
	if seats[1].wins > seats[0].wins {
		best = 1
	}

	var sb strings.Builder
	sb.WriteString(r.title(fmt.Sprintf("%d games", n)))
	if unfinished > 0 {
		sb.WriteString(r.theme.Dim.Render(fmt.Sprintf(" (%d unfinished)", unfinished)))
	}
	sb.WriteString("\n")
	sb.WriteString(r.table([]string{"Seat", "Strategy", "Wins", "Win %", "Avg score"}, rows, func(row, _ int) bool {
		return n > 0 && row == best && seats[0].wins != seats[1].wins
	}))
	return sb.String()
}

// Games renders stored games, newest first.
func (r *Renderer) Games(games []storage.GameRecord) string {
	if len(games) == 0 {
		return r.theme.Dim.Render("No games recorded yet.")
	}
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		winner := g.WinnerName()
		if winner == "" {
			winner = g.EndReason
		}
		rows = append(rows, []string{
			shortID(g.ID),
			g.CreatedAt.Format("2006-01-02 15:04"),
			g.Variant,
			g.Names[0] + " vs " + g.Names[1],
			fmt.Sprintf("%d - %d", g.Scores[0], g.Scores[1]),
			winner,
		})
	}
	return r.table([]string{"ID", "Date", "Variant", "Players", "Score", "Winner"}, rows, nil)
}

// Stats renders per-strategy aggregates.
func (r *Renderer) Stats(stats []storage.StrategyStats) string {
	if len(stats) == 0 {
		return r.theme.Dim.Render("No strategy statistics yet.")
	}
	best := 0
	for i, s := range stats {
		if s.WinRate() > stats[best].WinRate() {
			best = i
		}
	}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Strategy,
			fmt.Sprint(s.Games),
			fmt.Sprint(s.Wins),
			percent(s.Wins, s.Games),
			fmt.Sprintf("%.1f", s.AvgScore),
		})
	}
	return r.table([]string{"Strategy", "Games", "Wins", "Win %", "Avg score"}, rows, func(row, _ int) bool {
		return row == best && len(stats) > 1
	})
}

// Variants renders the scoring variants of a catalog. The default is
// marked with an asterisk.
func (r *Renderer) Variants(cat config.Catalog) string {
	rows := make([][]string, 0, len(cat.Variants))
	for _, v := range cat.Variants {
		name := v.Variant
		if strings.EqualFold(name, cat.Default) {
			name += " *"
		}
		rows = append(rows, []string{
			name,
			fmt.Sprint(v.MostCards),
			fmt.Sprint(v.MostSpades),
			fmt.Sprintf("%s=%d", v.BigCasino.Card.Short(), v.BigCasino.Points),
			fmt.Sprintf("%s=%d", v.LittleCasino.Card.Short(), v.LittleCasino.Points),
			rankPoints(v),
			fmt.Sprint(v.PointsPerSweep),
			fmt.Sprint(v.WinScore),
			string(v.TableCardTiming),
		})
	}
	return r.table([]string{"Variant", "Cards", "Spades", "Big", "Little", "Ranks", "Sweep", "Win", "Leftovers"}, rows, nil)
}

// Strategies renders the registered strategies.
func (r *Renderer) Strategies(infos []registry.StrategyInfo) string {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{info.ID, info.Title})
	}
	return r.table([]string{"ID", "Title"}, rows, nil)
}

func rankPoints(v config.ScoringConfig) string {
	var parts []string
	for _, rank := range core.Ranks {
		if pts := v.PointsPerRank(rank); pts != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", rank.Short(), pts))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

func percent(a, b int) string {
	return fmt.Sprintf("%.0f%%", 100*ratio(a, b))
}
