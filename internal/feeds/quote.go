package feeds

import (
	"context"
	"fmt"
	"strings"
)

type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

func (q Quote) String() string {
	return fmt.Sprintf("%q (%s)", q.Content, q.Author)
}

// FallbackQuotes are shown when the quote service cannot be reached.
var FallbackQuotes = []Quote{
	{Content: "The best way to predict the future is to invent it.", Author: "Alan Kay"},
	{Content: "Talk is cheap. Show me the code.", Author: "Linus Torvalds"},
	{Content: "Programs must be written for people to read.", Author: "Harold Abelson"},
	{Content: "Simplicity is the soul of efficiency.", Author: "Austin Freeman"},
	{Content: "Make it work, make it right, make it fast.", Author: "Kent Beck"},
	{Content: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
}

// FallbackQuote picks a built-in quote; n is any non-negative number, usually
// random.
func FallbackQuote(n int) Quote {
	if n < 0 {
		n = -n
	}
	return FallbackQuotes[n%len(FallbackQuotes)]
}

// RandomQuote fetches one quote from the quote service.
func (c *Client) RandomQuote(ctx context.Context) (Quote, error) {
	var q Quote
	if err := c.getJSON(ctx, "quote", c.quoteURL, &q); err != nil {
		return Quote{}, err
	}
	q.Content = strings.TrimSpace(q.Content)
	q.Author = strings.TrimSpace(q.Author)
	if q.Content == "" || q.Author == "" {
		return Quote{}, c.fail("quote", fmt.Errorf("%w: invalid quote data", ErrUnavailable))
	}
	return q, nil
}
