package user

import (
	"context"
	"fmt"
	"sort"
)

type StubUserRepository struct {
	nextId int
	data   map[int]User
}

func NewStubUserRepository() *StubUserRepository {
	return &StubUserRepository{nextId: 0, data: map[int]User{}}
}

func (s *StubUserRepository) CreateUser(_ context.Context, user User) (int, error) {
	for _, existing := range s.data {
		if existing.Username == user.Username {
			return 0, ErrUsernameTaken
		}
	}
	s.nextId++
	user.Id = s.nextId
	user.Settings = user.Settings.withDefaults()
	s.data[s.nextId] = user
	return s.nextId, nil
}

func (s *StubUserRepository) GetUser(_ context.Context, id int) (User, error) {
	user, ok := s.data[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *StubUserRepository) find(match func(User) bool) (User, error) {
	for _, user := range s.data {
		if match(user) {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepository) GetUserByUid(_ context.Context, uid string) (User, error) {
	return s.find(func(u User) bool { return u.Uid == uid })
}

func (s *StubUserRepository) GetUserByUsername(_ context.Context, username string) (User, error) {
	return s.find(func(u User) bool { return u.Username == username })
}

func (s *StubUserRepository) UpdateUser(_ context.Context, userId int, user User) (User, error) {
	existing, ok := s.data[userId]
	if !ok {
		return User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, userId)
	}
	existing.DisplayName = user.DisplayName
	existing.Email = user.Email
	existing.Settings = user.Settings.withDefaults()
	s.data[userId] = existing
	return existing, nil
}

func (s *StubUserRepository) DeleteUser(_ context.Context, id int) error {
	if _, ok := s.data[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	delete(s.data, id)
	return nil
}

func (s *StubUserRepository) GetAllUsers(_ context.Context) ([]User, error) {
	users := make([]User, 0, len(s.data))
	for _, user := range s.data {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Id < users[j].Id })
	return users, nil
}

func (s *StubUserRepository) IsUsernameAvailable(_ context.Context, username string) (bool, error) {
	_, err := s.find(func(u User) bool { return u.Username == username })
	return err != nil, nil
}
