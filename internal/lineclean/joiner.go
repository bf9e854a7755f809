package lineclean

import "regexp"

var (
	// UPC (10-14 digits) + item number (5-10 digits) opens a new item line
	reNewItem = regexp.MustCompile(`^\d{10,14}\s+\d{5,10}\s+`)
	// price-shaped token at end of line, including the misread colon form
	rePriceEnd = regexp.MustCompile(`\d+[.,:]\d{1,2}\s*$`)
)

// Joiner accumulates cleaned candidate lines and merges OCR line-wrap
// artifacts so exactly one line is emitted per logical item. State is a
// single buffered line; a Joiner belongs to one receipt and must not be
// shared.
type Joiner struct {
	buf string
	out []string
}

// Feed decides whether line starts a new item, completes the buffered one,
// or is a wrapped continuation, and updates the buffer accordingly.
func (j *Joiner) Feed(line string) {
	if line == "" {
		return
	}
	switch {
	case reNewItem.MatchString(line):
		// new UPC+item line closes whatever came before
		j.flush()
		j.buf = line
	case j.buf == "":
		j.buf = line
	case rePriceEnd.MatchString(line):
		if rePriceEnd.MatchString(j.buf) {
			// buffer is already a complete item; this line stands alone
			j.flush()
			j.buf = line
		} else {
			// trailing half of a wrapped item line: join and close it out
			j.buf += " " + line
			j.flush()
		}
	default:
		// no UPC start, no trailing price: wrapped description continuation
		j.buf += " " + line
	}
}

// Finish flushes the buffered line and returns the joined sequence.
func (j *Joiner) Finish() []string {
	j.flush()
	return j.out
}

func (j *Joiner) flush() {
	if j.buf != "" {
		j.out = append(j.out, j.buf)
		j.buf = ""
	}
}
