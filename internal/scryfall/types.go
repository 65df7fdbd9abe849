package scryfall

// Outcome is the result of resolving one card reference. It is a closed union:
// the only implementations are Card, CardFaces and NotFound, so a renderer
// switching on the concrete type covers every case.
type Outcome interface {
	outcome()
}

// Card is a single matched card with at most one image.
// ImageURL is empty when the record carries no image representation at all.
type Card struct {
	Name     string
	ImageURL string
	URL      string
}

// CardFaces is a single matched card whose printing spans multiple faces,
// each with its own image. ImageURLs is never empty.
type CardFaces struct {
	Name      string
	ImageURLs []string
	URL       string
}

// NotFound means no exact match existed. Suggestions holds up to 10 candidate
// names in the API's ranking order; Total is the API's full candidate count,
// which may exceed len(Suggestions).
type NotFound struct {
	Name        string
	Suggestions []string
	Total       int
}

func (Card) outcome()      {}
func (CardFaces) outcome() {}
func (NotFound) outcome()  {}
