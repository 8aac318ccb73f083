package handler_test

// In-memory store fakes for handler tests. They implement the handler
// store interfaces with the same sentinel errors the real repositories
// return, including the capacity and duplicate rules of the join
// protocol, so the handlers can be exercised without a database.

import (
	"context"
	"sync"

	"github.com/caninesocial/canine-convention/internal/model"
	"github.com/caninesocial/canine-convention/internal/repository"
)

type memPersonStore struct {
	mu      sync.Mutex
	nextID  uint64
	persons map[uint64]*model.Person
}

func newMemPersonStore() *memPersonStore {
	return &memPersonStore{persons: map[uint64]*model.Person{}}
}

func (s *memPersonStore) Create(_ context.Context, p *model.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	cp := *p
	s.persons[p.ID] = &cp
	return nil
}

func (s *memPersonStore) GetByID(_ context.Context, id uint64) (*model.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.persons[id]
	if !ok {
		return nil, repository.ErrPersonNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memPersonStore) ListAll(_ context.Context) ([]*model.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Person, 0, len(s.persons))
	for id := uint64(1); id <= s.nextID; id++ {
		if p, ok := s.persons[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memPersonStore) UpdateField(_ context.Context, field string, id uint64, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.persons[id]
	if !ok {
		return repository.ErrPersonNotFound
	}
	str, _ := value.(string)
	switch field {
	case "name":
		p.FirstName = str
	case "surname":
		p.LastName = str
	case "email":
		p.Email = str
	case "phone":
		p.Phone = str
	case "image":
		if value == nil {
			p.Image = nil
		} else {
			p.Image = &str
		}
	default:
		return repository.ErrUnknownField
	}
	return nil
}

type memDogStore struct {
	mu      sync.Mutex
	nextID  uint64
	dogs    map[uint64]*model.Dog
	persons *memPersonStore
}

func newMemDogStore(persons *memPersonStore) *memDogStore {
	return &memDogStore{dogs: map[uint64]*model.Dog{}, persons: persons}
}

func (s *memDogStore) Create(_ context.Context, d *model.Dog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.persons != nil {
		if _, ok := s.persons.persons[d.PersonID]; !ok {
			return repository.ErrPersonNotFound
		}
	}
	s.nextID++
	d.ID = s.nextID
	cp := *d
	s.dogs[d.ID] = &cp
	return nil
}

func (s *memDogStore) GetByID(_ context.Context, id uint64) (*model.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dogs[id]
	if !ok {
		return nil, repository.ErrDogNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *memDogStore) ListByOwner(_ context.Context, personID uint64) ([]*model.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*model.Dog{}
	for id := uint64(1); id <= s.nextID; id++ {
		if d, ok := s.dogs[id]; ok && d.PersonID == personID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memDogStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dogs[id]; !ok {
		return repository.ErrDogNotFound
	}
	delete(s.dogs, id)
	return nil
}

func (s *memDogStore) UpdateField(_ context.Context, field string, id uint64, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dogs[id]
	if !ok {
		return repository.ErrDogNotFound
	}
	switch field {
	case "name":
		d.Name, _ = value.(string)
	case "birthdate":
		d.Birthdate, _ = value.(string)
	case "personality":
		d.Personality, _ = value.(string)
	case "gender":
		d.Gender, _ = value.(string)
	case "neutered":
		d.Neutered, _ = value.(bool)
	case "size":
		d.Size, _ = value.(string)
	case "image":
		if value == nil {
			d.Image = nil
		} else {
			str, _ := value.(string)
			d.Image = &str
		}
	default:
		return repository.ErrUnknownField
	}
	return nil
}

type memEventStore struct {
	mu       sync.Mutex
	nextID   uint64
	capacity int
	events   map[uint64]*model.Event
	joined   map[uint64]map[uint64]bool // eventID -> dogID set
}

func newMemEventStore(capacity int) *memEventStore {
	return &memEventStore{
		capacity: capacity,
		events:   map[uint64]*model.Event{},
		joined:   map[uint64]map[uint64]bool{},
	}
}

func (s *memEventStore) Create(_ context.Context, e *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	e.ID = s.nextID
	cp := *e
	s.events[e.ID] = &cp
	s.joined[e.ID] = map[uint64]bool{}
	return nil
}

func (s *memEventStore) GetByID(_ context.Context, id uint64) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *memEventStore) ListJoinable(_ context.Context) ([]model.EventRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.EventRef{}
	for id := uint64(1); id <= s.nextID; id++ {
		if e, ok := s.events[id]; ok && e.Attendees < s.capacity {
			out = append(out, model.EventRef{ID: id})
		}
	}
	return out, nil
}

func (s *memEventStore) Join(_ context.Context, eventID, dogID uint64) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[eventID]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	if e.Attendees >= s.capacity {
		return nil, repository.ErrEventFull
	}
	if s.joined[eventID][dogID] {
		return nil, repository.ErrAlreadyJoined
	}
	s.joined[eventID][dogID] = true
	e.Attendees++
	cp := *e
	return &cp, nil
}
