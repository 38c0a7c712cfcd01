package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/dimfu/bracketeer/bracket"
	"github.com/dimfu/bracketeer/models"
)

// Discord rejects embeds past these limits.
const (
	maxFields     = 25
	maxFieldValue = 1024
)

var segmentTitles = map[bracket.Segment]string{
	bracket.Top:      "Winners Bracket",
	bracket.Bottom:   "Losers Bracket",
	bracket.Champion: "Grand Final",
}

var author = &discordgo.MessageEmbedAuthor{
	Name: "bracketeer",
	URL:  "https://www.github.com/dimfu/bracketeer",
}

// BracketEmbeds renders one embed per segment with a field per round. A round
// too long for one field continues in the next.
func BracketEmbeds(t *models.Tournament, matches []bracket.Match) []*discordgo.MessageEmbed {
	type roundKey struct {
		seg   bracket.Segment
		round int
	}
	lines := map[roundKey][]string{}
	rounds := map[bracket.Segment][]int{}

	for _, m := range matches {
		k := roundKey{m.Segment, m.Round}
		if _, ok := lines[k]; !ok {
			rounds[m.Segment] = append(rounds[m.Segment], m.Round)
		}
		lines[k] = append(lines[k], MatchLine(m))
	}

	embeds := []*discordgo.MessageEmbed{}
	for _, seg := range bracket.Segments {
		if len(rounds[seg]) == 0 {
			continue
		}

		fields := []*discordgo.MessageEmbedField{}
		for _, r := range rounds[seg] {
			for i, value := range chunkLines(lines[roundKey{seg, r}], maxFieldValue) {
				name := roundName(seg, r)
				if i > 0 {
					name += " (cont.)"
				}
				fields = append(fields, &discordgo.MessageEmbedField{Name: name, Value: value})
			}
		}
		if len(fields) > maxFields {
			fields = fields[:maxFields]
		}

		embeds = append(embeds, &discordgo.MessageEmbed{
			Author: author,
			Title:  fmt.Sprintf("%s · %s", t.Name, segmentTitles[seg]),
			Fields: fields,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("%d slots · %s", t.Slots, t.ID),
			},
		})
	}
	return embeds
}

// MatchLine is the one-line summary of a match and where its players go.
func MatchLine(m bracket.Match) string {
	return fmt.Sprintf("`#%d` winner → %s, loser → %s", m.ID, describe(m.WinnerTo), describe(m.LoserTo))
}

func describe(d bracket.Destination) string {
	switch d.Kind {
	case bracket.Advance:
		return fmt.Sprintf("#%d", d.Match)
	case bracket.Terminal:
		return "🏆"
	default:
		return "out"
	}
}

func roundName(seg bracket.Segment, round int) string {
	if seg == bracket.Champion {
		if round == 1 {
			return "Grand Final"
		}
		return "Reset"
	}
	return fmt.Sprintf("Round %d", round)
}

// chunkLines joins lines with newlines into values of at most n runes,
// never splitting a line.
func chunkLines(lines []string, n int) []string {
	var (
		chunks []string
		b      strings.Builder
		size   int
	)
	for _, line := range lines {
		l := utf8.RuneCountInString(line)
		if size > 0 && size+1+l > n {
			chunks = append(chunks, b.String())
			b.Reset()
			size = 0
		}
		if size > 0 {
			b.WriteByte('\n')
			size++
		}
		b.WriteString(line)
		size += l
	}
	if size > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}
