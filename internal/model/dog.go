package model

// Dog belongs to exactly one person and can join meet-up events. It
// corresponds to a row in the `dogs` table. Birthdate is kept as the
// DATE string the store returns; the service never does date math on it.
//
// Fields:
//  ID          – primary key identifier.
//  PersonID    – owner reference (persons.id, enforced by the store).
//  Name        – the dog's name.
//  Birthdate   – date of birth (YYYY-MM-DD).
//  Personality – free-text temperament description.
//  Gender      – free-text gender label.
//  Neutered    – whether the dog is neutered.
//  Size        – free-text size class (e.g. "small", "large").
//  Image       – optional image reference (nullable).
type Dog struct {
	ID          uint64  `json:"id"`          // dogs.id
	PersonID    uint64  `json:"personID"`    // dogs.person_id
	Name        string  `json:"name"`        // dogs.name
	Birthdate   string  `json:"birthdate"`   // dogs.birthdate
	Personality string  `json:"personality"` // dogs.personality
	Gender      string  `json:"gender"`      // dogs.gender
	Neutered    bool    `json:"neutered"`    // dogs.neutered
	Size        string  `json:"size"`        // dogs.size
	Image       *string `json:"image"`       // dogs.image (nullable)
}
