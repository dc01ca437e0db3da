package advocates

import (
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/advocates/pkg/query"
	"github.com/JaimeStill/advocates/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "advocates", "a").
	Project("id", "id").
	Project("first_name", "firstName").
	Project("last_name", "lastName").
	Project("city", "city").
	Project("degree", "degree").
	Project("specialties", "specialties").
	Project("years_of_experience", "yearsOfExperience").
	Project("phone_number", "phoneNumber").
	Project("created_at", "createdAt")

var defaultSort = query.SortField{Field: "id"}

var searchFields = []string{
	"firstName",
	"lastName",
	"city",
	"degree",
	projection.Cast("specialties", "text"),
	projection.Cast("yearsOfExperience", "text"),
}

// Apply adds the search predicate to a query builder. Match-all adds nothing.
func (f Filter) Apply(b *query.Builder) *query.Builder {
	if f.MatchAll() {
		return b
	}
	return b.WhereSearch(&f.term, searchFields...)
}

func scanAdvocate(s repository.Scanner) (Advocate, error) {
	var (
		a           Advocate
		specialties []byte
	)

	err := s.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.City,
		&a.Degree,
		&specialties,
		&a.YearsOfExperience,
		&a.PhoneNumber,
		&a.CreatedAt,
	)
	if err != nil {
		return a, err
	}

	if len(specialties) > 0 {
		if err := json.Unmarshal(specialties, &a.Specialties); err != nil {
			return a, fmt.Errorf("decode specialties for advocate %d: %w", a.ID, err)
		}
	}
	if a.Specialties == nil {
		a.Specialties = []string{}
	}

	return a, nil
}
