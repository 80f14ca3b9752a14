package domain

// Format is how a slide's body is rendered
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Slide is one pane of the deck
type Slide struct {
	Title  string
	Body   string
	Source string // file the slide was read from ("" for inline slides)
	Format Format
}

// Deck is the ordered set of slides the carousel cycles through
type Deck struct {
	Name   string
	Slides []Slide
}

// Len returns the number of slides
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// At returns the slide at index i, or false when i is out of range
func (d *Deck) At(i int) (Slide, bool) {
	if d == nil || i < 0 || i >= len(d.Slides) {
		return Slide{}, false
	}
	return d.Slides[i], true
}
