package models

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Measurements maps garment type -> measurement field -> inches.
// Quarter-inch fractions are common, hence float64.
type Measurements map[string]map[string]float64

// User is an admin or a customer. PhoneNumber is the business key used to
// join customers to their orders; it is not enforced unique in storage, so
// duplicate customer records are possible and lookups take the first match.
type User struct {
	UID          string       `json:"uid"`
	PhoneNumber  string       `json:"phone_number"`
	Role         string       `json:"role"`
	Name         string       `json:"name"`
	Gender       string       `json:"gender,omitempty"` // "male", "female" or empty
	CreatedAt    int64        `json:"created_at"`       // unix milliseconds
	QueryCount   int          `json:"query_count"`
	LastQueryAt  int64        `json:"last_query_at"` // unix milliseconds, 0 = never
	Measurements Measurements `json:"measurements"`
}

// UserUpdate is a partial user edit with merge semantics.
type UserUpdate struct {
	PhoneNumber  *string      `json:"phone_number,omitempty"`
	Name         *string      `json:"name,omitempty"`
	Gender       *string      `json:"gender,omitempty"`
	Measurements Measurements `json:"measurements,omitempty"`
}

func (u UserUpdate) Apply(target *User) {
	if u.PhoneNumber != nil {
		target.PhoneNumber = *u.PhoneNumber
	}
	if u.Name != nil {
		target.Name = *u.Name
	}
	if u.Gender != nil {
		target.Gender = *u.Gender
	}
	if u.Measurements != nil {
		target.Measurements = u.Measurements
	}
}
