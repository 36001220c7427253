package main

// Sample text for an empty demo, in the manner of https://github.com/riesinger/golorem.

import (
	"math/rand"
	"strings"
)

var wordsList = []string{
	"ipsum", "semper", "habeo", "duo", "ut", "vis", "aliquyam", "eu", "splendide", "mei", "nec",
	"antiopam", "corpora", "kasd", "pretium", "cetero", "qui", "arcu", "assentior", "ei", "his",
	"invidunt", "justo", "ne", "eleifend", "per", "eam", "graeci", "tincidunt", "impedit",
	"temporibus", "et", "facilisis", "insolens", "consequat", "cursus", "partiendo", "ullamcorper",
	"vulputate", "donec", "aliquam", "labore", "inimicus", "voluptua", "penatibus", "sea", "vel",
	"amet", "ius", "audire", "in", "mea", "nullam", "sed", "takimata", "eos", "at", "odio",
}

// loremText returns count paragraphs of about length words each. Each
// paragraph is one long line, some with a bracketed or quoted phrase
// and an indented tab-separated table line, so that wrapping, tabs and
// double-clicking all have something to work on.
func loremText(rnd *rand.Rand, count, length int) string {
	var b strings.Builder
	word := func() string { return wordsList[rnd.Intn(len(wordsList))] }
	for i := 0; i < count; i++ {
		b.WriteString("Lorem")
		for j := 1; j < length; j++ {
			b.WriteByte(' ')
			switch rnd.Intn(12) {
			case 0:
				b.WriteString("(" + word() + " " + word() + ")")
			case 1:
				b.WriteString(`"` + word() + `"`)
			default:
				b.WriteString(word())
			}
		}
		b.WriteString(".\n")
		if i%3 == 2 {
			b.WriteString("\t" + word() + "\t" + word() + "\t" + word() + "\n")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
