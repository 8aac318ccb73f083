package model

// Person is a registered dog owner. It corresponds to a row in the
// `persons` table. The image reference is optional and stays null until
// the owner uploads a profile picture.
//
// Fields:
//  ID        – primary key identifier.
//  FirstName – given name.
//  LastName  – family name.
//  Email     – contact email address.
//  Phone     – contact phone number.
//  Image     – optional image reference (nullable).
type Person struct {
	ID        uint64  `json:"id"`        // persons.id
	FirstName string  `json:"firstName"` // persons.first_name
	LastName  string  `json:"lastName"`  // persons.last_name
	Email     string  `json:"email"`     // persons.email
	Phone     string  `json:"phone"`     // persons.phone
	Image     *string `json:"image"`     // persons.image (nullable)
}
