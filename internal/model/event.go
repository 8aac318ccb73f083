package model

// Event is a physical meet-up at a location. It corresponds to a row in
// the `events` table. Attendees is a counter maintained exclusively by
// the join protocol; it starts at zero and never exceeds the configured
// capacity.
//
// Fields:
//  ID        – primary key identifier.
//  Location  – where the meet-up takes place.
//  Attendees – number of dogs that have joined so far.
type Event struct {
	ID        uint64 `json:"id"`        // events.id
	Location  string `json:"location"`  // events.location
	Attendees int    `json:"attendees"` // events.attendees
}

// EventRef is the projection returned by the joinable-events listing.
// Only the identifier is exposed, matching the public browse contract.
type EventRef struct {
	ID uint64 `json:"id"` // events.id
}
