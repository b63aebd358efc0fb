package ui

// Option is one selectable value of a generation filter.
type Option struct {
	Value string
	Label string
}

// The fixed option sets for the three generation filters. Values are
// what the backend expects; labels are what the user sees.
var (
	ContentOptions = []Option{
		{Value: "politics", Label: "Politics"},
		{Value: "technology", Label: "Technology"},
		{Value: "sports", Label: "Sports"},
		{Value: "entertainment", Label: "Entertainment"},
		{Value: "health", Label: "Health"},
		{Value: "science", Label: "Science"},
		{Value: "environment", Label: "Environment"},
	}

	StyleOptions = []Option{
		{Value: "neutral", Label: "Neutral"},
		{Value: "sensational", Label: "Sensational"},
		{Value: "clickbait", Label: "Clickbait"},
		{Value: "misleading", Label: "Misleading"},
		{Value: "investigative", Label: "Investigative"},
		{Value: "satirical", Label: "Satirical"},
		{Value: "humorous", Label: "Humorous"},
	}

	LengthOptions = []Option{
		{Value: "short", Label: "Short (50 words)"},
		{Value: "medium", Label: "Medium (100 words)"},
		{Value: "long", Label: "Long (200 words)"},
	}
)

// picker cycles through one option set. index -1 means nothing chosen
// yet, which keeps the generate action disabled.
type picker struct {
	title   string
	options []Option
	index   int
}

func newPicker(title string, options []Option) picker {
	return picker{title: title, options: options, index: -1}
}

func (p *picker) next() {
	p.index = (p.index + 1) % len(p.options)
}

func (p *picker) prev() {
	if p.index <= 0 {
		p.index = len(p.options) - 1
		return
	}
	p.index--
}

func (p *picker) reset() {
	p.index = -1
}

// Value returns the backend value of the chosen option, or "".
func (p picker) Value() string {
	if p.index < 0 {
		return ""
	}
	return p.options[p.index].Value
}

// Label returns the display label of the chosen option.
func (p picker) Label() string {
	if p.index < 0 {
		return "— select —"
	}
	return p.options[p.index].Label
}

// ValidValue reports whether v is one of the option values; used by the
// CLI to validate --content/--style/--length flags.
func ValidValue(options []Option, v string) bool {
	for _, o := range options {
		if o.Value == v {
			return true
		}
	}
	return false
}
