package directory

import (
	"slices"

	"github.com/samber/lo"

	"github.com/advochat/advochat-server/internal/core"
)

// Advocate is one listed service provider.
type Advocate struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
	Bio       string  `json:"bio"`
}

// Directory is a read-only, in-memory advocate listing.
type Directory struct {
	advocates []Advocate
}

// Seeded returns the demo directory.
func Seeded() *Directory {
	return &Directory{advocates: []Advocate{
		{ID: "adv1", Name: "Advocate A", Specialty: "Family Law", Rating: 4.7, Bio: "10 years experience in family disputes"},
		{ID: "adv2", Name: "Advocate B", Specialty: "Criminal Law", Rating: 4.5, Bio: "Expert in criminal defense"},
		{ID: "adv3", Name: "Advocate C", Specialty: "Corporate Law", Rating: 4.8, Bio: "Corporate contracts & compliance"},
	}}
}

// List returns all advocates.
func (d *Directory) List() []Advocate {
	return slices.Clone(d.advocates)
}

// Get returns the advocate with the given id, or a not_found error.
func (d *Directory) Get(id string) (Advocate, error) {
	adv, ok := lo.Find(d.advocates, func(a Advocate) bool { return a.ID == id })
	if !ok {
		return Advocate{}, core.NotFound("advocate not found: " + id)
	}
	return adv, nil
}
