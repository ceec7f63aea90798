package mint

const (
	DefaultCopies = 1
	DefaultPrice  = 0.1
)

// Metadata holds the user-entered fields for one mint submission.
type Metadata struct {
	ArtistName  string
	Title       string
	Description string
	Copies      int
	Price       float64
}

// DefaultMetadata is the state of a fresh form and the state the form returns
// to after a successful mint.
func DefaultMetadata() Metadata {
	return Metadata{Copies: DefaultCopies, Price: DefaultPrice}
}

func (m *Metadata) Reset() {
	*m = DefaultMetadata()
}
