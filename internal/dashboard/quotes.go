package dashboard

import (
	"iter"
	"slices"
	"strings"

	"github.com/faizmokh/productify/internal/storage"
)

// QuoteBook keeps quotes the user chose to save.
type QuoteBook struct {
	adapter *storage.Adapter
	quotes  []SavedQuote
}

func NewQuoteBook(adapter *storage.Adapter) *QuoteBook {
	return &QuoteBook{adapter: adapter}
}

// Add appends q after trimming. Text, author and category are all required.
func (b *QuoteBook) Add(q SavedQuote) (SavedQuote, error) {
	q.Text = strings.TrimSpace(q.Text)
	q.Author = strings.TrimSpace(q.Author)
	q.Category = strings.TrimSpace(q.Category)
	if q.Text == "" || q.Author == "" || q.Category == "" {
		return SavedQuote{}, invalid(q.Text, ErrEmptyInput)
	}
	b.quotes = append(b.quotes, q)
	return q, b.save()
}

// Delete removes the quote at index (0-based).
func (b *QuoteBook) Delete(index int) (SavedQuote, error) {
	if index < 0 || index >= len(b.quotes) {
		return SavedQuote{}, ErrIndexOutOfRange
	}
	q := b.quotes[index]
	b.quotes = slices.Delete(b.quotes, index, index+1)
	return q, b.save()
}

func (b *QuoteBook) All() []SavedQuote {
	return slices.Clone(b.quotes)
}

// Search yields quotes whose text, author or category contains term, ignoring
// case. An empty term matches everything.
func (b *QuoteBook) Search(term string) iter.Seq2[int, SavedQuote] {
	needle := strings.ToLower(strings.TrimSpace(term))
	return func(yield func(int, SavedQuote) bool) {
		for i, q := range b.quotes {
			if needle != "" &&
				!strings.Contains(strings.ToLower(q.Text), needle) &&
				!strings.Contains(strings.ToLower(q.Author), needle) &&
				!strings.Contains(strings.ToLower(q.Category), needle) {
				continue
			}
			if !yield(i, q) {
				return
			}
		}
	}
}

func (b *QuoteBook) Load() error {
	quotes, ok, err := storage.Load[[]SavedQuote](b.adapter, QuotesKey)
	if err != nil {
		return err
	}
	b.quotes = nil
	if ok {
		b.quotes = quotes
	}
	return nil
}

func (b *QuoteBook) save() error {
	quotes := b.quotes
	if quotes == nil {
		quotes = []SavedQuote{}
	}
	return b.adapter.Save(QuotesKey, quotes)
}
